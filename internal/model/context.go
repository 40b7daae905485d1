package model

import (
	"math"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// Weather curve midpoints and input handling constants.
const (
	windMidpoint = 18.0
	tempMidpoint = 32.0
	windOffset   = 5.0
	windMax      = 30.0
	defaultTemp  = 70.0
)

// GameContext holds one game's conditions and computes contextual
// adjustments on demand. It is ephemeral and never persisted.
type GameContext struct {
	GameID  string
	Temp    *float64
	Wind    *float64
	HFABase float64

	cfg *config.UnitConfig
}

// NewGameContext builds the context for one game row.
func NewGameContext(row *types.GameRow, cfg *config.UnitConfig) *GameContext {
	return &GameContext{
		GameID:  row.GameID,
		Temp:    row.Temp,
		Wind:    row.Wind,
		HFABase: row.HFABase,
		cfg:     cfg,
	}
}

// sCurve evaluates a saturating logistic adjustment curve. The value runs
// from 0 to height with its half-height at the midpoint. Direction up grows
// with x (wind); direction down grows as x falls below the midpoint (cold).
func sCurve(height, midpoint, x float64, up bool) float64 {
	if height == 0 || midpoint == 0 {
		return 0
	}
	s := height / (1 + math.Exp(-(10/midpoint)*(x-midpoint)))
	if up {
		return s
	}
	return height - s
}

// WeatherAdj returns the non-negative EPA discount for the game's wind and
// temperature on one unit type. Missing readings default to league-neutral
// conditions (70F, no wind).
func (g *GameContext) WeatherAdj(ut types.UnitType) float64 {
	wind := 0.0
	if g.Wind != nil {
		wind = math.Max(0, math.Min(windMax, *g.Wind-windOffset))
	}
	temp := defaultTemp
	if g.Temp != nil {
		temp = math.Max(0, *g.Temp)
	}

	windAdj := sCurve(g.cfg.WindDiscHeight(ut), windMidpoint, wind, true)
	tempAdj := sCurve(g.cfg.TempDiscHeight(ut), tempMidpoint, temp, false)
	return windAdj + tempAdj
}

// HFAAdj returns the signed EPA home-field adjustment for one unit type.
// The base is halved because the adjustment is applied once on each side of
// the same game.
func (g *GameContext) HFAAdj(ut types.UnitType, isHome bool) float64 {
	adj := (g.HFABase / 2) * g.cfg.HFAShare(ut)
	if !isHome {
		return -adj
	}
	return adj
}
