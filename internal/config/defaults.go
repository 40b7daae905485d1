package config

// DefaultModelConfig returns the built-in parameter set so the engine can
// run without a config file. Values are fitted coefficients; bounds are the
// box the optimizer is allowed to search.
func DefaultModelConfig() *ModelConfig {
	params := map[string]ModelParam{
		// smoothing factors
		"unit_config.pass_off_sf": {Value: 0.140, Description: "EWMA smoothing factor for pass offense", OptiMin: 0.01, OptiMax: 0.40},
		"unit_config.pass_def_sf": {Value: 0.115, Description: "EWMA smoothing factor for pass defense", OptiMin: 0.01, OptiMax: 0.40},
		"unit_config.rush_off_sf": {Value: 0.120, Description: "EWMA smoothing factor for rush offense", OptiMin: 0.01, OptiMax: 0.40},
		"unit_config.rush_def_sf": {Value: 0.100, Description: "EWMA smoothing factor for rush defense", OptiMin: 0.01, OptiMax: 0.40},
		"unit_config.st_off_sf":   {Value: 0.085, Description: "EWMA smoothing factor for special teams offense", OptiMin: 0.01, OptiMax: 0.40},
		"unit_config.st_def_sf":   {Value: 0.070, Description: "EWMA smoothing factor for special teams defense", OptiMin: 0.01, OptiMax: 0.40},

		// offseason reversion rates
		"unit_config.pass_off_reversion": {Value: 0.250, Description: "Offseason reversion toward zero for pass offense", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.pass_def_reversion": {Value: 0.330, Description: "Offseason reversion toward zero for pass defense", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.rush_off_reversion": {Value: 0.300, Description: "Offseason reversion toward zero for rush offense", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.rush_def_reversion": {Value: 0.350, Description: "Offseason reversion toward zero for rush defense", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.st_off_reversion":   {Value: 0.400, Description: "Offseason reversion toward zero for special teams offense", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.st_def_reversion":   {Value: 0.450, Description: "Offseason reversion toward zero for special teams defense", OptiMin: 0.0, OptiMax: 1.0},

		// qb-aware pass offense regression
		"unit_config.pass_off_qb_reversion": {Value: 0.150, Description: "Offseason blend of pass offense toward the Week 1 starter's value", OptiMin: 0.0, OptiMax: 1.0},

		// hfa shares
		"unit_config.pass_hfa_share": {Value: 0.500, Description: "Share of game HFA attributed to the pass units", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.rush_hfa_share": {Value: 0.300, Description: "Share of game HFA attributed to the rush units", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.st_hfa_share":   {Value: 0.200, Description: "Share of game HFA attributed to the special teams units", OptiMin: 0.0, OptiMax: 1.0},

		// weather discount curve heights
		"unit_config.pass_wind_disc_height": {Value: 1.600, Description: "Max EPA discount for wind on pass units", OptiMin: 0.0, OptiMax: 6.0},
		"unit_config.rush_wind_disc_height": {Value: 0.250, Description: "Max EPA discount for wind on rush units", OptiMin: 0.0, OptiMax: 6.0},
		"unit_config.st_wind_disc_height":   {Value: 0.900, Description: "Max EPA discount for wind on special teams units", OptiMin: 0.0, OptiMax: 6.0},
		"unit_config.pass_temp_disc_height": {Value: 0.800, Description: "Max EPA discount for cold on pass units", OptiMin: 0.0, OptiMax: 6.0},
		"unit_config.rush_temp_disc_height": {Value: 0.200, Description: "Max EPA discount for cold on rush units", OptiMin: 0.0, OptiMax: 6.0},
		"unit_config.st_temp_disc_height":   {Value: 0.400, Description: "Max EPA discount for cold on special teams units", OptiMin: 0.0, OptiMax: 6.0},

		// league baseline tracking
		"unit_config.league_pass_sf":        {Value: 0.020, Description: "EWMA smoothing factor for the league pass baseline", OptiMin: 0.001, OptiMax: 0.20},
		"unit_config.league_rush_sf":        {Value: 0.015, Description: "EWMA smoothing factor for the league rush baseline", OptiMin: 0.001, OptiMax: 0.20},
		"unit_config.league_st_sf":          {Value: 0.012, Description: "EWMA smoothing factor for the league special teams baseline", OptiMin: 0.001, OptiMax: 0.20},
		"unit_config.league_pass_reversion": {Value: 0.500, Description: "Offseason reversion of the league pass baseline toward its long-term average", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.league_rush_reversion": {Value: 0.500, Description: "Offseason reversion of the league rush baseline toward its long-term average", OptiMin: 0.0, OptiMax: 1.0},
		"unit_config.league_st_reversion":   {Value: 0.500, Description: "Offseason reversion of the league special teams baseline toward its long-term average", OptiMin: 0.0, OptiMax: 1.0},

		// league qb tracking
		"unit_config.league_qb_sf": {Value: 0.020, Description: "EWMA smoothing factor for the league-average QB value", OptiMin: 0.001, OptiMax: 0.20},

		// elo translation coefficients
		"elo_config.pass_off_coef": {Value: 16.0, Description: "Elo points per EPA point of pass offense value", OptiMin: 0.0, OptiMax: 50.0},
		"elo_config.rush_off_coef": {Value: 9.0, Description: "Elo points per EPA point of rush offense value", OptiMin: 0.0, OptiMax: 50.0},
		"elo_config.st_off_coef":   {Value: 7.0, Description: "Elo points per EPA point of special teams offense value", OptiMin: 0.0, OptiMax: 50.0},
		"elo_config.pass_def_coef": {Value: 13.0, Description: "Elo points per EPA point of pass defense value", OptiMin: 0.0, OptiMax: 50.0},
		"elo_config.rush_def_coef": {Value: 7.5, Description: "Elo points per EPA point of rush defense value", OptiMin: 0.0, OptiMax: 50.0},
		"elo_config.st_def_coef":   {Value: 6.0, Description: "Elo points per EPA point of special teams defense value", OptiMin: 0.0, OptiMax: 50.0},
	}
	return &ModelConfig{Params: params}
}
