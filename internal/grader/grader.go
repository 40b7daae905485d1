package grader

import (
	"math"

	"github.com/greerreNFL/nfelounits/internal/types"
	"gonum.org/v1/gonum/stat"
)

// UnitMetrics holds prediction accuracy metrics for one unit.
type UnitMetrics struct {
	RMSE     float64 `json:"rmse"`
	MAE      float64 `json:"mae"`
	RSquared float64 `json:"r_squared"`
}

// Grades holds per-unit metrics plus overall averages.
type Grades struct {
	Units   map[string]UnitMetrics `json:"units"`
	Overall UnitMetrics            `json:"overall"`
}

// unitKey builds the flat metric key for a unit.
func unitKey(ut types.UnitType, side types.Side) string {
	return string(ut) + "_" + string(side)
}

// gradeUnit computes RMSE, MAE and R-squared for one unit's
// expected-vs-observed pairs. R-squared with zero total variance is
// defined as 0 rather than propagating NaN.
func gradeUnit(records []types.TeamGameRecord, ut types.UnitType, side types.Side) UnitMetrics {
	n := len(records)
	if n == 0 {
		return UnitMetrics{}
	}

	observed := make([]float64, n)
	var ssRes, sumAbs float64
	for i := range records {
		u := records[i].Unit(ut, side)
		diff := u.Expected - u.Observed
		ssRes += diff * diff
		sumAbs += math.Abs(diff)
		observed[i] = u.Observed
	}

	obsMean := stat.Mean(observed, nil)
	var ssTot float64
	for _, o := range observed {
		ssTot += (o - obsMean) * (o - obsMean)
	}

	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return UnitMetrics{
		RMSE:     math.Sqrt(ssRes / float64(n)),
		MAE:      sumAbs / float64(n),
		RSquared: rSquared,
	}
}

// Grade computes metrics for all six units and their overall averages.
func Grade(records []types.TeamGameRecord) Grades {
	grades := Grades{Units: make(map[string]UnitMetrics, 6)}

	var rmseSum, maeSum, r2Sum float64
	count := 0
	for _, ut := range types.UnitTypes {
		for _, side := range types.Sides {
			m := gradeUnit(records, ut, side)
			grades.Units[unitKey(ut, side)] = m
			rmseSum += m.RMSE
			maeSum += m.MAE
			r2Sum += m.RSquared
			count++
		}
	}

	grades.Overall = UnitMetrics{
		RMSE:     rmseSum / float64(count),
		MAE:      maeSum / float64(count),
		RSquared: r2Sum / float64(count),
	}
	return grades
}
