package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greerreNFL/nfelounits/internal/types"
)

func TestLeagueBaselineSeeds(t *testing.T) {
	b := NewLeagueBaseline(testUnitConfig())

	assert.Equal(t, 0.721, b.Avg(types.UnitPass, 1999))
	assert.Equal(t, -3.911, b.Avg(types.UnitRush, 1999))
	assert.Equal(t, 2.249, b.Avg(types.UnitST, 1999))
}

func TestLeagueBaselineSequentialUpdates(t *testing.T) {
	b := NewLeagueBaseline(testUnitConfig())

	// Two same-game updates chain: the second sees the first's output.
	b.Update(types.UnitPass, 2.0, 2000)
	afterFirst := 0.05*2.0 + 0.95*0.721
	assert.InDelta(t, afterFirst, b.Avg(types.UnitPass, 2000), 1e-12)

	b.Update(types.UnitPass, -1.0, 2000)
	assert.InDelta(t, 0.05*-1.0+0.95*afterFirst, b.Avg(types.UnitPass, 2000), 1e-12)

	// Other unit types are untouched.
	assert.Equal(t, -3.911, b.Avg(types.UnitRush, 2000))
}

func TestLeagueBaselineLazyOffseasonRegression(t *testing.T) {
	b := NewLeagueBaseline(testUnitConfig())

	b.Update(types.UnitPass, 5.0, 2000)
	current := b.Avg(types.UnitPass, 2000)

	// First read in the next season regresses toward the long-term average
	// exactly once; repeated reads are stable.
	want := (1-0.10)*current + 0.10*0.721
	assert.InDelta(t, want, b.Avg(types.UnitPass, 2001), 1e-12)
	assert.InDelta(t, want, b.Avg(types.UnitPass, 2001), 1e-12)
	assert.InDelta(t, want, b.Avg(types.UnitPass, 2002), 1e-12,
		"no games since the last regression means nothing new to regress")
}

func TestLeagueBaselineRegressionLocksNewLongTerm(t *testing.T) {
	b := NewLeagueBaseline(testUnitConfig())

	b.Update(types.UnitPass, 5.0, 2000)
	firstRegressed := b.Avg(types.UnitPass, 2001)

	// A game in 2001 then a 2002 read regresses toward the updated
	// long-term average, not the original seed.
	b.Update(types.UnitPass, firstRegressed, 2001)
	want := (1-0.10)*firstRegressed + 0.10*firstRegressed
	assert.InDelta(t, want, b.Avg(types.UnitPass, 2002), 1e-12)
}

func TestLeagueQbTracksWithoutRegression(t *testing.T) {
	q := NewLeagueQb(testUnitConfig())
	assert.Equal(t, 75.0, q.Avg())

	q.Update(100.0)
	assert.InDelta(t, 0.02*100.0+0.98*75.0, q.Avg(), 1e-12)

	// No season argument anywhere: QB quality never regresses.
	after := q.Avg()
	q.Update(after)
	assert.InDelta(t, after, q.Avg(), 1e-12)
}
