package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

func testEloConfig() config.EloConfig {
	return config.EloConfig{
		PassOffCoef: 16.0, RushOffCoef: 8.0, STOffCoef: 4.0,
		PassDefCoef: 12.0, RushDefCoef: 6.0, STDefCoef: 3.0,
	}
}

func TestTranslateToEloBaseline(t *testing.T) {
	tr := NewEloTranslator(testEloConfig())
	team := NewTeam("JAX", testUnitConfig())

	// A fresh team sits exactly at the league-average rating.
	assert.Equal(t, 1505.0, tr.TranslateToElo(team))
}

func TestTranslateToEloWeightsAllSixUnits(t *testing.T) {
	tr := NewEloTranslator(testEloConfig())
	team := NewTeam("BAL", testUnitConfig())
	team.PassOff.Value = 1.0
	team.RushOff.Value = 0.5
	team.STOff.Value = -0.5
	team.PassDef.Value = 0.25
	team.RushDef.Value = -1.0
	team.STDef.Value = 2.0

	want := 1505.0 + 1.0*16 + 0.5*8 + -0.5*4 + 0.25*12 + -1.0*6 + 2.0*3
	assert.InDelta(t, want, tr.TranslateToElo(team), 1e-9)
}

func TestContextAdjIsolatesWeather(t *testing.T) {
	cfg := testUnitConfig()
	tr := NewEloTranslator(testEloConfig())
	team := NewTeam("CHI", cfg)
	team.PassOff.Value = 1.0
	team.PassDef.Value = 1.0

	// Neutral conditions: no meaningful delta.
	calm := &GameContext{cfg: cfg}
	assert.InDelta(t, 0, tr.ContextAdj(team, calm), 1e-2)

	// Harsh conditions discount offensive value only, so the delta is the
	// negated weather discounts weighted by the offensive coefficients.
	harsh := &GameContext{cfg: cfg, Wind: floatPtr(28), Temp: floatPtr(5)}
	want := -(harsh.WeatherAdj(types.UnitPass)*16 +
		harsh.WeatherAdj(types.UnitRush)*8 +
		harsh.WeatherAdj(types.UnitST)*4)
	assert.InDelta(t, want, tr.ContextAdj(team, harsh), 1e-9)
	assert.Negative(t, tr.ContextAdj(team, harsh))
}

func TestWinProbability(t *testing.T) {
	assert.InDelta(t, 0.5, WinProbability(0), 1e-12)
	assert.InDelta(t, 1.0/11.0, WinProbability(-400), 1e-12)
	assert.InDelta(t, 10.0/11.0, WinProbability(400), 1e-12)

	// Complementary by construction.
	for _, diff := range []float64{-250, -25, 0, 80, 333} {
		assert.InDelta(t, 1.0, WinProbability(diff)+WinProbability(-diff), 1e-12)
	}

	// Strictly increasing in the rating gap.
	prev := WinProbability(-600)
	for diff := -500.0; diff <= 600; diff += 100 {
		p := WinProbability(diff)
		assert.Greater(t, p, prev)
		prev = p
	}
}

func TestMatchupWinProbability(t *testing.T) {
	// Even ratings on a neutral field: a coin flip.
	assert.InDelta(t, 0.5, MatchupWinProbability(1505, 0, 0, 1505, 0, 0, 0), 1e-12)

	// Home field worth 2 EPA adds 50 Elo points to the home side.
	withHFA := MatchupWinProbability(1505, 0, 0, 1505, 0, 0, 2.0)
	assert.InDelta(t, WinProbability(50), withHFA, 1e-12)
	assert.Greater(t, withHFA, 0.5)

	// QB and context adjustments shift their own side.
	better := MatchupWinProbability(1505, 0, 25, 1505, 0, 0, 0)
	assert.Greater(t, better, 0.5)
	worse := MatchupWinProbability(1505, -30, 0, 1505, 0, 0, 0)
	assert.Less(t, worse, 0.5)
}
