package model

import (
	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// TeamQb tracks a team's designated Week 1 starter for each season. The
// adjustment is zero while the starter plays and the Elo-scale gap between
// the current QB and the locked starter otherwise.
type TeamQb struct {
	Team          string
	StarterName   string
	StarterValue  float64
	StarterSeason int
}

// Adjustment returns the QB adjustment for a game, locking the starter on
// the first game processed in each season.
func (q *TeamQb) Adjustment(qbName string, qbValue float64, season int) float64 {
	if q.StarterSeason == 0 || season > q.StarterSeason {
		q.StarterName = qbName
		q.StarterValue = qbValue
		q.StarterSeason = season
		return 0
	}
	if qbName == q.StarterName {
		// Track the starter's evolving value so backup gaps stay current.
		q.StarterValue = qbValue
		return 0
	}
	return qbValue - q.StarterValue
}

// Team aggregates the six rated units plus QB tracking for one team code.
type Team struct {
	Abbr    string
	PassOff *Unit
	RushOff *Unit
	STOff   *Unit
	PassDef *Unit
	RushDef *Unit
	STDef   *Unit
	QB      *TeamQb
}

// NewTeam creates a team with fresh zero-valued units.
func NewTeam(abbr string, cfg *config.UnitConfig) *Team {
	return &Team{
		Abbr:    abbr,
		PassOff: NewUnit(abbr, types.UnitPass, types.SideOffense, cfg),
		RushOff: NewUnit(abbr, types.UnitRush, types.SideOffense, cfg),
		STOff:   NewUnit(abbr, types.UnitST, types.SideOffense, cfg),
		PassDef: NewUnit(abbr, types.UnitPass, types.SideDefense, cfg),
		RushDef: NewUnit(abbr, types.UnitRush, types.SideDefense, cfg),
		STDef:   NewUnit(abbr, types.UnitST, types.SideDefense, cfg),
		QB:      &TeamQb{Team: abbr},
	}
}

// Unit returns the team's unit for a type and side.
func (t *Team) Unit(ut types.UnitType, side types.Side) *Unit {
	if side == types.SideOffense {
		switch ut {
		case types.UnitPass:
			return t.PassOff
		case types.UnitRush:
			return t.RushOff
		case types.UnitST:
			return t.STOff
		}
	}
	switch ut {
	case types.UnitPass:
		return t.PassDef
	case types.UnitRush:
		return t.RushDef
	case types.UnitST:
		return t.STDef
	}
	return nil
}

// Units returns all six units in a stable order.
func (t *Team) Units() []*Unit {
	return []*Unit{t.PassOff, t.RushOff, t.STOff, t.PassDef, t.RushDef, t.STDef}
}

// AdvanceToSeason regresses every unit that has not yet played in the given
// season. Pass offense uses the locked starter and league QB average as its
// regression target, so the caller must lock the season's starter first.
func (t *Team) AdvanceToSeason(season int, coach string, leagueQBAvg float64) {
	for _, u := range t.Units() {
		u.AdvanceToSeason(season, coach, t.QB.StarterValue, leagueQBAvg)
	}
}

// TotalOffValue sums the three offensive unit values.
func (t *Team) TotalOffValue() float64 {
	return t.PassOff.Value + t.RushOff.Value + t.STOff.Value
}

// TotalDefValue sums the three defensive unit values.
func (t *Team) TotalDefValue() float64 {
	return t.PassDef.Value + t.RushDef.Value + t.STDef.Value
}
