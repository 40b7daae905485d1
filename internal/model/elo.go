package model

import (
	"math"

	"github.com/greerreNFL/nfelounits/internal/config"
)

// EloBase is the league-average absolute Elo rating.
const EloBase = 1505.0

// hfaEloScale converts the game HFA base from the EPA scale to Elo points
// for win probability.
const hfaEloScale = 25.0

// EloTranslator maps a team's six unit values onto the absolute Elo scale.
type EloTranslator struct {
	cfg config.EloConfig
}

// NewEloTranslator creates a translator from the elo_config coefficients.
func NewEloTranslator(cfg config.EloConfig) *EloTranslator {
	return &EloTranslator{cfg: cfg}
}

// TranslateToElo converts current unit values to an Elo rating:
// EloBase + sum of value * coefficient over all six units.
func (e *EloTranslator) TranslateToElo(t *Team) float64 {
	return EloBase +
		t.PassOff.Value*e.cfg.PassOffCoef +
		t.RushOff.Value*e.cfg.RushOffCoef +
		t.STOff.Value*e.cfg.STOffCoef +
		t.PassDef.Value*e.cfg.PassDefCoef +
		t.RushDef.Value*e.cfg.RushDefCoef +
		t.STDef.Value*e.cfg.STDefCoef
}

// ContextAdj isolates the Elo delta attributable to weather alone: the Elo
// recomputed with weather-discounted offensive values minus the unadjusted
// Elo. Defensive values are unaffected by the discount. The result is
// combined later with QB and HFA terms in win probability.
func (e *EloTranslator) ContextAdj(t *Team, gc *GameContext) float64 {
	passW := gc.WeatherAdj(t.PassOff.Type)
	rushW := gc.WeatherAdj(t.RushOff.Type)
	stW := gc.WeatherAdj(t.STOff.Type)

	adjusted := EloBase +
		(t.PassOff.Value-passW)*e.cfg.PassOffCoef +
		(t.RushOff.Value-rushW)*e.cfg.RushOffCoef +
		(t.STOff.Value-stW)*e.cfg.STOffCoef +
		t.PassDef.Value*e.cfg.PassDefCoef +
		t.RushDef.Value*e.cfg.RushDefCoef +
		t.STDef.Value*e.cfg.STDefCoef

	return adjusted - e.TranslateToElo(t)
}

// WinProbability maps an Elo difference to a win probability with the
// standard logistic Elo formula.
func WinProbability(eloDiff float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, -eloDiff/400))
}

// MatchupWinProbability computes the home team's win probability from both
// teams' Elo, context and QB adjustments plus the game's HFA base.
func MatchupWinProbability(homeElo, homeCtxAdj, homeQBAdj, awayElo, awayCtxAdj, awayQBAdj, hfaBase float64) float64 {
	homeSide := homeElo + homeCtxAdj + homeQBAdj + hfaBase*hfaEloScale
	awaySide := awayElo + awayCtxAdj + awayQBAdj
	return WinProbability(homeSide - awaySide)
}
