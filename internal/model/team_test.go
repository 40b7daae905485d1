package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greerreNFL/nfelounits/internal/types"
)

func TestTeamQbLocksWeekOneStarter(t *testing.T) {
	qb := &TeamQb{Team: "CIN"}

	// First game of the tracked history locks the starter with no adjustment.
	assert.Zero(t, qb.Adjustment("Burrow", 90.0, 2022))
	assert.Equal(t, "Burrow", qb.StarterName)
	assert.Equal(t, 90.0, qb.StarterValue)

	// The starter keeps a zero adjustment while their value is tracked.
	assert.Zero(t, qb.Adjustment("Burrow", 95.0, 2022))
	assert.Equal(t, 95.0, qb.StarterValue)

	// A backup is measured against the starter's latest value.
	assert.InDelta(t, 60.0-95.0, qb.Adjustment("Browning", 60.0, 2022), 1e-12)
	assert.Equal(t, "Burrow", qb.StarterName, "a backup start must not unseat the starter")

	// A new season relocks whoever starts first, even the old backup.
	assert.Zero(t, qb.Adjustment("Browning", 65.0, 2023))
	assert.Equal(t, "Browning", qb.StarterName)
}

func TestNewTeamStartsFresh(t *testing.T) {
	team := NewTeam("PHI", testUnitConfig())

	units := team.Units()
	require.Len(t, units, 6)
	for _, u := range units {
		assert.Equal(t, "PHI", u.Team)
		assert.Zero(t, u.Value)
		assert.Zero(t, u.LastGameSeason)
	}
	assert.Zero(t, team.TotalOffValue())
	assert.Zero(t, team.TotalDefValue())
}

func TestTeamUnitLookup(t *testing.T) {
	team := NewTeam("NYJ", testUnitConfig())

	for _, side := range types.Sides {
		for _, ut := range types.UnitTypes {
			u := team.Unit(ut, side)
			require.NotNil(t, u)
			assert.Equal(t, ut, u.Type)
			assert.Equal(t, side, u.Side)
		}
	}
}

func TestTeamAdvanceToSeasonUsesLockedStarter(t *testing.T) {
	cfg := testUnitConfig()
	team := NewTeam("GB", cfg)

	// Play a 2020 game so every unit has history to regress.
	sit := GameSituation{LeagueAvg: 0.0, Season: 2020, Coach: "LaFleur"}
	for _, u := range team.Units() {
		u.Value = 1.0
		u.Update(u.ExpectedEPA(0, sit), 0, sit)
	}
	team.QB.Adjustment("Rodgers", 100.0, 2020)

	team.AdvanceToSeason(2021, "LaFleur", 75.0)

	// Pass offense blends its value with the starter-derived target of 1.0:
	// 0.50 current + 0.30 QB target, with 0.20 shrinking toward zero.
	assert.InDelta(t, 0.50*1.0+0.30*1.0, team.PassOff.Value, 1e-12)
	// Everything else shrinks by its reversion rate.
	assert.InDelta(t, 1-0.25, team.PassDef.Value, 1e-12)
	assert.InDelta(t, 1-0.30, team.RushOff.Value, 1e-12)
	assert.InDelta(t, 1-0.45, team.STDef.Value, 1e-12)
}

func TestTeamTotals(t *testing.T) {
	team := NewTeam("DET", testUnitConfig())
	team.PassOff.Value = 1.0
	team.RushOff.Value = 0.5
	team.STOff.Value = -0.2
	team.PassDef.Value = 0.3
	team.RushDef.Value = -0.1
	team.STDef.Value = 0.4

	assert.InDelta(t, 1.3, team.TotalOffValue(), 1e-12)
	assert.InDelta(t, 0.6, team.TotalDefValue(), 1e-12)
}
