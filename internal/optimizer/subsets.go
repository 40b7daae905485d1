package optimizer

// UnitSubsets groups unit_config parameters by the phase of play they
// influence, so each phase can be fit separately with fewer dimensions.
// UnitSubsetOrder is the order phases are fit in; earlier fits feed the
// starting config of later ones.
var UnitSubsetOrder = []string{"pass", "rush", "st"}

var UnitSubsets = map[string][]string{
	"pass": {
		"unit_config.pass_hfa_share",
		"unit_config.pass_off_sf",
		"unit_config.pass_def_sf",
		"unit_config.pass_off_reversion",
		"unit_config.pass_def_reversion",
		"unit_config.league_pass_sf",
		"unit_config.league_pass_reversion",
		"unit_config.pass_wind_disc_height",
		"unit_config.pass_temp_disc_height",
		"unit_config.pass_off_qb_reversion",
		"unit_config.league_qb_sf",
	},
	"rush": {
		"unit_config.rush_hfa_share",
		"unit_config.rush_off_sf",
		"unit_config.rush_def_sf",
		"unit_config.rush_off_reversion",
		"unit_config.rush_def_reversion",
		"unit_config.league_rush_sf",
		"unit_config.league_rush_reversion",
		"unit_config.rush_wind_disc_height",
		"unit_config.rush_temp_disc_height",
	},
	"st": {
		"unit_config.st_hfa_share",
		"unit_config.st_off_sf",
		"unit_config.st_def_sf",
		"unit_config.st_off_reversion",
		"unit_config.st_def_reversion",
		"unit_config.league_st_sf",
		"unit_config.league_st_reversion",
		"unit_config.st_wind_disc_height",
		"unit_config.st_temp_disc_height",
	},
}
