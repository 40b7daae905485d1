package model

import (
	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// qbEloToEPA converts QB adjustments from the Elo scale to the EPA scale.
const qbEloToEPA = 25.0

// Unit is one of a team's six rating components. Value is an EPA-scale
// rating centered near zero. Value only changes through Update (in-season)
// and Regress (between seasons).
type Unit struct {
	Team  string
	Type  types.UnitType
	Side  types.Side
	Value float64

	// LastGameSeason is zero until the unit's first game and drives the
	// once-per-boundary offseason regression.
	LastGameSeason int
	Coach          string

	cfg *config.UnitConfig
}

// NewUnit creates a fresh, zero-valued unit.
func NewUnit(team string, ut types.UnitType, side types.Side, cfg *config.UnitConfig) *Unit {
	return &Unit{Team: team, Type: ut, Side: side, cfg: cfg}
}

// GameSituation carries the contextual adjustments for one unit in one game.
// QB adjustments are on the Elo scale; HFAAdj and WeatherAdj are on the EPA
// scale. WeatherAdj is a non-negative discount that lowers expected EPA.
type GameSituation struct {
	HFAAdj     float64
	QBAdj      float64
	OppQBAdj   float64
	WeatherAdj float64
	LeagueAvg  float64
	IsHome     bool
	Season     int
	Coach      string
}

// qbAdjustments returns the EPA-scale QB terms. Only pass units are
// QB-sensitive.
func (u *Unit) qbAdjustments(sit GameSituation) (own, opp float64) {
	if u.Type != types.UnitPass {
		return 0, 0
	}
	return sit.QBAdj / qbEloToEPA, sit.OppQBAdj / qbEloToEPA
}

// observedPerformance computes the opponent- and context-adjusted performance
// figure the EWMA blends toward.
//
// Offense: strip the unit's own advantages (QB, HFA) from observed EPA, give
// back the weather discount, credit opponent difficulty, and center on the
// league average. Defense: the sign flips so that allowing less EPA than the
// opponent's context-adjusted expectation raises the rating. The weather term
// rides inside the opponent adjustment group on defense, matching the offense
// sign convention.
func (u *Unit) observedPerformance(observedEPA, opponentValue float64, sit GameSituation) float64 {
	qbAdj, oppQBAdj := u.qbAdjustments(sit)
	if u.Side == types.SideOffense {
		return observedEPA - (qbAdj + sit.HFAAdj - sit.WeatherAdj) +
			opponentValue -
			sit.LeagueAvg
	}
	return opponentValue + sit.LeagueAvg + (oppQBAdj - sit.HFAAdj - sit.WeatherAdj) -
		observedEPA
}

// Update blends the unit value toward this game's observed performance.
// opponentValue must be the opposing unit's pre-game value; the caller is
// responsible for snapshotting it before any of the game's updates run.
func (u *Unit) Update(observedEPA, opponentValue float64, sit GameSituation) {
	sf := u.cfg.SmoothingFactor(u.Type, u.Side)
	performance := u.observedPerformance(observedEPA, opponentValue, sit)
	u.Value = sf*performance + (1-sf)*u.Value
	u.LastGameSeason = sit.Season
	u.Coach = sit.Coach
}

// ExpectedEPA is the read-only inverse of Update's performance formula: it is
// the observed EPA that would leave Value unchanged. Offense is the unit's own
// expected production; defense is the opponent offense's expected production
// against this defense.
func (u *Unit) ExpectedEPA(opponentValue float64, sit GameSituation) float64 {
	qbAdj, oppQBAdj := u.qbAdjustments(sit)
	if u.Side == types.SideOffense {
		return u.Value + (qbAdj + sit.HFAAdj - sit.WeatherAdj) -
			opponentValue +
			sit.LeagueAvg
	}
	return opponentValue + (oppQBAdj - sit.HFAAdj - sit.WeatherAdj) +
		sit.LeagueAvg -
		u.Value
}

// Regress applies offseason regression. Pass offense blends toward a target
// derived from the Week 1 starter's QB value; every other unit shrinks toward
// zero by its reversion rate.
func (u *Unit) Regress(coach string, starterQBValue, leagueQBAvg float64) {
	reversion := u.cfg.ReversionRate(u.Type, u.Side)

	if u.Type == types.UnitPass && u.Side == types.SideOffense {
		qbReversion := u.cfg.PassOffQBReversion
		qbTarget := (starterQBValue - leagueQBAvg) / qbEloToEPA

		// Normalize the three weights so they sum to 1.
		currentWeight := 1 - reversion - qbReversion
		if currentWeight < 0 {
			currentWeight = 0
		}
		total := currentWeight + reversion + qbReversion
		u.Value = (currentWeight/total)*u.Value + (qbReversion/total)*qbTarget
	} else {
		u.Value = (1 - reversion) * u.Value
	}

	u.LastGameSeason = 0
	u.Coach = coach
}

// AdvanceToSeason applies the unit's offseason regression exactly once when
// the season moves past the unit's last recorded game. Fresh units and units
// already in the given season are untouched.
func (u *Unit) AdvanceToSeason(season int, coach string, starterQBValue, leagueQBAvg float64) {
	if u.LastGameSeason != 0 && u.LastGameSeason < season {
		u.Regress(coach, starterQBValue, leagueQBAvg)
	}
}
