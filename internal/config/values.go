package config

import (
	"fmt"

	"github.com/greerreNFL/nfelounits/internal/types"
)

// UnitConfig is the typed view of the unit_config section.
type UnitConfig struct {
	PassOffSF float64
	PassDefSF float64
	RushOffSF float64
	RushDefSF float64
	STOffSF   float64
	STDefSF   float64

	PassOffReversion float64
	PassDefReversion float64
	RushOffReversion float64
	RushDefReversion float64
	STOffReversion   float64
	STDefReversion   float64

	// PassOffQBReversion blends pass offense toward a QB-derived target
	// during offseason regression.
	PassOffQBReversion float64

	PassHFAShare float64
	RushHFAShare float64
	STHFAShare   float64

	PassWindDiscHeight float64
	RushWindDiscHeight float64
	STWindDiscHeight   float64
	PassTempDiscHeight float64
	RushTempDiscHeight float64
	STTempDiscHeight   float64

	LeaguePassSF        float64
	LeagueRushSF        float64
	LeagueSTSF          float64
	LeaguePassReversion float64
	LeagueRushReversion float64
	LeagueSTReversion   float64

	LeagueQBSF float64
}

// EloConfig is the typed view of the elo_config section.
type EloConfig struct {
	PassOffCoef float64
	RushOffCoef float64
	STOffCoef   float64
	PassDefCoef float64
	RushDefCoef float64
	STDefCoef   float64
}

// Values bundles the typed sections handed to the rating engine.
type Values struct {
	Unit UnitConfig
	Elo  EloConfig
}

// Values builds the typed config bundle. A missing parameter is a
// precondition violation and fails immediately.
func (c *ModelConfig) Values() (Values, error) {
	var v Values
	var err error

	get := func(key string) float64 {
		if err != nil {
			return 0
		}
		p, ok := c.Params[key]
		if !ok {
			err = fmt.Errorf("missing config parameter: %q", key)
			return 0
		}
		return p.Value
	}

	v.Unit = UnitConfig{
		PassOffSF: get("unit_config.pass_off_sf"),
		PassDefSF: get("unit_config.pass_def_sf"),
		RushOffSF: get("unit_config.rush_off_sf"),
		RushDefSF: get("unit_config.rush_def_sf"),
		STOffSF:   get("unit_config.st_off_sf"),
		STDefSF:   get("unit_config.st_def_sf"),

		PassOffReversion: get("unit_config.pass_off_reversion"),
		PassDefReversion: get("unit_config.pass_def_reversion"),
		RushOffReversion: get("unit_config.rush_off_reversion"),
		RushDefReversion: get("unit_config.rush_def_reversion"),
		STOffReversion:   get("unit_config.st_off_reversion"),
		STDefReversion:   get("unit_config.st_def_reversion"),

		PassOffQBReversion: get("unit_config.pass_off_qb_reversion"),

		PassHFAShare: get("unit_config.pass_hfa_share"),
		RushHFAShare: get("unit_config.rush_hfa_share"),
		STHFAShare:   get("unit_config.st_hfa_share"),

		PassWindDiscHeight: get("unit_config.pass_wind_disc_height"),
		RushWindDiscHeight: get("unit_config.rush_wind_disc_height"),
		STWindDiscHeight:   get("unit_config.st_wind_disc_height"),
		PassTempDiscHeight: get("unit_config.pass_temp_disc_height"),
		RushTempDiscHeight: get("unit_config.rush_temp_disc_height"),
		STTempDiscHeight:   get("unit_config.st_temp_disc_height"),

		LeaguePassSF:        get("unit_config.league_pass_sf"),
		LeagueRushSF:        get("unit_config.league_rush_sf"),
		LeagueSTSF:          get("unit_config.league_st_sf"),
		LeaguePassReversion: get("unit_config.league_pass_reversion"),
		LeagueRushReversion: get("unit_config.league_rush_reversion"),
		LeagueSTReversion:   get("unit_config.league_st_reversion"),

		LeagueQBSF: get("unit_config.league_qb_sf"),
	}

	v.Elo = EloConfig{
		PassOffCoef: get("elo_config.pass_off_coef"),
		RushOffCoef: get("elo_config.rush_off_coef"),
		STOffCoef:   get("elo_config.st_off_coef"),
		PassDefCoef: get("elo_config.pass_def_coef"),
		RushDefCoef: get("elo_config.rush_def_coef"),
		STDefCoef:   get("elo_config.st_def_coef"),
	}

	if err != nil {
		return Values{}, err
	}
	return v, nil
}

// SmoothingFactor returns the EWMA smoothing factor for one unit.
func (u *UnitConfig) SmoothingFactor(ut types.UnitType, side types.Side) float64 {
	switch {
	case ut == types.UnitPass && side == types.SideOffense:
		return u.PassOffSF
	case ut == types.UnitPass && side == types.SideDefense:
		return u.PassDefSF
	case ut == types.UnitRush && side == types.SideOffense:
		return u.RushOffSF
	case ut == types.UnitRush && side == types.SideDefense:
		return u.RushDefSF
	case ut == types.UnitST && side == types.SideOffense:
		return u.STOffSF
	case ut == types.UnitST && side == types.SideDefense:
		return u.STDefSF
	}
	panic(fmt.Sprintf("unknown unit %q %q", ut, side))
}

// ReversionRate returns the offseason reversion rate for one unit.
func (u *UnitConfig) ReversionRate(ut types.UnitType, side types.Side) float64 {
	switch {
	case ut == types.UnitPass && side == types.SideOffense:
		return u.PassOffReversion
	case ut == types.UnitPass && side == types.SideDefense:
		return u.PassDefReversion
	case ut == types.UnitRush && side == types.SideOffense:
		return u.RushOffReversion
	case ut == types.UnitRush && side == types.SideDefense:
		return u.RushDefReversion
	case ut == types.UnitST && side == types.SideOffense:
		return u.STOffReversion
	case ut == types.UnitST && side == types.SideDefense:
		return u.STDefReversion
	}
	panic(fmt.Sprintf("unknown unit %q %q", ut, side))
}

// HFAShare returns the unit type's share of the game HFA base.
func (u *UnitConfig) HFAShare(ut types.UnitType) float64 {
	switch ut {
	case types.UnitPass:
		return u.PassHFAShare
	case types.UnitRush:
		return u.RushHFAShare
	case types.UnitST:
		return u.STHFAShare
	}
	panic(fmt.Sprintf("unknown unit type %q", ut))
}

// WindDiscHeight returns the wind discount curve height for one unit type.
func (u *UnitConfig) WindDiscHeight(ut types.UnitType) float64 {
	switch ut {
	case types.UnitPass:
		return u.PassWindDiscHeight
	case types.UnitRush:
		return u.RushWindDiscHeight
	case types.UnitST:
		return u.STWindDiscHeight
	}
	panic(fmt.Sprintf("unknown unit type %q", ut))
}

// TempDiscHeight returns the temperature discount curve height for one
// unit type.
func (u *UnitConfig) TempDiscHeight(ut types.UnitType) float64 {
	switch ut {
	case types.UnitPass:
		return u.PassTempDiscHeight
	case types.UnitRush:
		return u.RushTempDiscHeight
	case types.UnitST:
		return u.STTempDiscHeight
	}
	panic(fmt.Sprintf("unknown unit type %q", ut))
}

// LeagueSF returns the league baseline smoothing factor for one unit type.
func (u *UnitConfig) LeagueSF(ut types.UnitType) float64 {
	switch ut {
	case types.UnitPass:
		return u.LeaguePassSF
	case types.UnitRush:
		return u.LeagueRushSF
	case types.UnitST:
		return u.LeagueSTSF
	}
	panic(fmt.Sprintf("unknown unit type %q", ut))
}

// LeagueReversion returns the league baseline reversion rate for one
// unit type.
func (u *UnitConfig) LeagueReversion(ut types.UnitType) float64 {
	switch ut {
	case types.UnitPass:
		return u.LeaguePassReversion
	case types.UnitRush:
		return u.LeagueRushReversion
	case types.UnitST:
		return u.LeagueSTReversion
	}
	panic(fmt.Sprintf("unknown unit type %q", ut))
}

// Coef returns the Elo translation coefficient for one unit.
func (e *EloConfig) Coef(ut types.UnitType, side types.Side) float64 {
	switch {
	case ut == types.UnitPass && side == types.SideOffense:
		return e.PassOffCoef
	case ut == types.UnitRush && side == types.SideOffense:
		return e.RushOffCoef
	case ut == types.UnitST && side == types.SideOffense:
		return e.STOffCoef
	case ut == types.UnitPass && side == types.SideDefense:
		return e.PassDefCoef
	case ut == types.UnitRush && side == types.SideDefense:
		return e.RushDefCoef
	case ut == types.UnitST && side == types.SideDefense:
		return e.STDefCoef
	}
	panic(fmt.Sprintf("unknown unit %q %q", ut, side))
}
