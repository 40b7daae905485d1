package optimizer

import (
	"math"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// logLossEpsilon keeps probabilities away from exact 0 and 1 so a single
// confident miss cannot produce an infinite loss.
const logLossEpsilon = 1e-15

// logLoss computes binary cross-entropy of win probability against actual
// outcomes over one data set, restricted to home-team records so each game
// is counted once. Returns NaN for an empty set.
func logLoss(records []types.TeamGameRecord, dataSet string) float64 {
	var sum float64
	n := 0
	for i := range records {
		r := &records[i]
		if !r.IsHome {
			continue
		}
		if r.DataSet != dataSet && !(dataSet == types.DataSetTrain && r.DataSet == "") {
			continue
		}
		p := math.Min(1-logLossEpsilon, math.Max(logLossEpsilon, r.WinProb))
		if r.Result > 0 {
			sum += -math.Log(p)
		} else {
			sum += -math.Log(1 - p)
		}
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// logLossScorer scores a run by train-set log loss of the win probability
// predictions, carrying test-set log loss as a diagnostic.
type logLossScorer struct{}

func (logLossScorer) metricName() string { return "train_log_loss" }

func (logLossScorer) score(records []types.TeamGameRecord) (float64, map[string]float64) {
	train := logLoss(records, types.DataSetTrain)
	test := logLoss(records, types.DataSetTest)
	return train, map[string]float64{
		"train_log_loss": train,
		"test_log_loss":  test,
	}
}

// NewEloOptimizer builds an optimizer over the elo_config coefficients that
// minimizes win-probability log loss.
func NewEloOptimizer(data []types.GameRow, cfg *config.ModelConfig, opts Options) (*Optimizer, error) {
	return newOptimizer(data, cfg, config.SectionElo, logLossScorer{}, opts)
}
