package optimizer

import (
	"math"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// trainRecords filters to the records the training objective scores. When
// the input carries no split labels, everything trains.
func trainRecords(records []types.TeamGameRecord) []types.TeamGameRecord {
	filtered := make([]types.TeamGameRecord, 0, len(records))
	for i := range records {
		if records[i].DataSet == types.DataSetTrain || records[i].DataSet == "" {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

// maeScorer scores a run by the mean absolute error between expected and
// observed EPA, averaged across the six units.
type maeScorer struct{}

func (maeScorer) metricName() string { return "avg_mae" }

func (maeScorer) score(records []types.TeamGameRecord) (float64, map[string]float64) {
	train := trainRecords(records)
	metrics := make(map[string]float64, 7)

	var total float64
	for _, ut := range types.UnitTypes {
		for _, side := range types.Sides {
			var sum float64
			for i := range train {
				u := train[i].Unit(ut, side)
				sum += math.Abs(u.Expected - u.Observed)
			}
			mae := math.NaN()
			if len(train) > 0 {
				mae = sum / float64(len(train))
			}
			metrics["mae_"+string(ut)+"_"+string(side)] = mae
			total += mae
		}
	}

	avg := total / 6
	metrics["avg_mae"] = avg
	return avg, metrics
}

// NewUnitOptimizer builds an optimizer over the unit_config section that
// minimizes average unit MAE.
func NewUnitOptimizer(data []types.GameRow, cfg *config.ModelConfig, opts Options) (*Optimizer, error) {
	return newOptimizer(data, cfg, config.SectionUnit, maeScorer{}, opts)
}
