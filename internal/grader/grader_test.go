package grader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greerreNFL/nfelounits/internal/types"
)

func recordWithPassOff(expected, observed float64) types.TeamGameRecord {
	return types.TeamGameRecord{
		PassOff: types.UnitValues{Expected: expected, Observed: observed},
	}
}

func TestGradeKnownErrors(t *testing.T) {
	// Errors of +1 and -3 around observations 2 and 6.
	records := []types.TeamGameRecord{
		recordWithPassOff(3.0, 2.0),
		recordWithPassOff(3.0, 6.0),
	}

	grades := Grade(records)
	m, ok := grades.Units["pass_off"]
	require.True(t, ok)

	assert.InDelta(t, 2.0, m.MAE, 1e-12)                 // (1 + 3) / 2
	assert.InDelta(t, math.Sqrt(5.0), m.RMSE, 1e-12)     // sqrt((1 + 9) / 2)
	assert.InDelta(t, 1.0-10.0/8.0, m.RSquared, 1e-12)   // ssRes 10 over ssTot 8
}

func TestGradePerfectPredictions(t *testing.T) {
	records := []types.TeamGameRecord{
		recordWithPassOff(2.0, 2.0),
		recordWithPassOff(-1.0, -1.0),
	}

	m := Grade(records).Units["pass_off"]
	assert.Zero(t, m.MAE)
	assert.Zero(t, m.RMSE)
	assert.InDelta(t, 1.0, m.RSquared, 1e-12)
}

func TestGradeZeroVarianceObservations(t *testing.T) {
	// Constant observations make ssTot zero; R-squared is defined as 0
	// instead of NaN so optimizer objectives stay finite.
	records := []types.TeamGameRecord{
		recordWithPassOff(1.0, 2.0),
		recordWithPassOff(3.0, 2.0),
	}

	m := Grade(records).Units["pass_off"]
	assert.Zero(t, m.RSquared)
	assert.False(t, math.IsNaN(m.RSquared))
}

func TestGradeCoversAllSixUnits(t *testing.T) {
	records := []types.TeamGameRecord{
		recordWithPassOff(3.0, 2.0),
		recordWithPassOff(3.0, 6.0),
	}

	grades := Grade(records)
	require.Len(t, grades.Units, 6)
	for _, ut := range types.UnitTypes {
		for _, side := range types.Sides {
			_, ok := grades.Units[string(ut)+"_"+string(side)]
			assert.True(t, ok)
		}
	}

	// Overall averages the six unit metrics; five of them are all-zero
	// errors here, so overall MAE is a sixth of the pass offense MAE.
	assert.InDelta(t, grades.Units["pass_off"].MAE/6.0, grades.Overall.MAE, 1e-12)
}

func TestGradeEmptyRecords(t *testing.T) {
	grades := Grade(nil)
	require.Len(t, grades.Units, 6)
	for key, m := range grades.Units {
		assert.Zero(t, m.MAE, key)
		assert.Zero(t, m.RMSE, key)
		assert.Zero(t, m.RSquared, key)
	}
}
