package optimizer

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/optimize"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/model"
	"github.com/greerreNFL/nfelounits/internal/types"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

// boxPenaltyWeight scales the quadratic penalty for points the solver
// proposes outside the [0,1] box before they are clamped.
const boxPenaltyWeight = 1000.0

// Options configures a single optimization run.
type Options struct {
	// Tol is the absolute function convergence tolerance.
	Tol float64
	// Step seeds the initial simplex size of the search.
	Step float64
	// MaxEvaluations caps objective evaluations (0 = solver default).
	MaxEvaluations int
	// Subset restricts the run to specific flat parameter keys; empty
	// means every parameter in the optimizer's config section.
	Subset     []string
	SubsetName string
	// RandomizeStart draws the starting point uniformly from the box
	// instead of normalizing the config's current values.
	RandomizeStart bool
	RunID          string
	Seed           int64
}

func (o Options) withDefaults() Options {
	if o.Tol == 0 {
		o.Tol = 1e-6
	}
	if o.Step == 0 {
		o.Step = 0.02
	}
	if o.SubsetName == "" {
		o.SubsetName = "subset"
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	return o
}

// Record is one scored objective evaluation.
type Record struct {
	Round   int                `json:"round"`
	Loss    float64            `json:"loss"`
	Metrics map[string]float64 `json:"metrics"`
	Params  map[string]float64 `json:"params"`
}

// Result is the outcome of one optimization run. Params come from the best
// evaluated record, not the solver's final point, so a run that wanders
// never returns worse than its best visit.
type Result struct {
	RunID       string             `json:"run_id"`
	SubsetName  string             `json:"subset_name"`
	Metric      string             `json:"metric"`
	Loss        float64            `json:"loss"`
	Params      map[string]float64 `json:"params"`
	Evaluations int                `json:"evaluations"`
	Runtime     time.Duration      `json:"runtime"`
	Status      string             `json:"status"`
	Records     []Record           `json:"-"`
}

// scorer turns a full simulation's records into a scalar loss plus named
// diagnostic metrics.
type scorer interface {
	metricName() string
	score(records []types.TeamGameRecord) (loss float64, metrics map[string]float64)
}

// Optimizer fits a named subset of config parameters by minimizing a
// scorer's loss over repeated full-history simulations.
type Optimizer struct {
	data    []types.GameRow
	config  *config.ModelConfig
	section string
	opts    Options
	scorer  scorer

	features []string
	start    []float64

	round    int
	records  []Record
	bestLoss float64

	log *logrus.Entry
}

// newOptimizer validates the feature set and builds the normalized
// starting point.
func newOptimizer(data []types.GameRow, cfg *config.ModelConfig, section string, sc scorer, opts Options) (*Optimizer, error) {
	opts = opts.withDefaults()

	features := opts.Subset
	if len(features) == 0 {
		features = cfg.SectionKeys(section)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("no parameters to optimize in section %q", section)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	start := make([]float64, len(features))
	for i, key := range features {
		p, err := cfg.Param(key)
		if err != nil {
			return nil, err
		}
		if p.OptiMax <= p.OptiMin {
			return nil, fmt.Errorf("parameter %q has degenerate bounds [%v, %v]", key, p.OptiMin, p.OptiMax)
		}
		if opts.RandomizeStart {
			start[i] = rng.Float64()
		} else {
			start[i] = normalize(p.Value, p)
		}
	}

	return &Optimizer{
		data:     data,
		config:   cfg,
		section:  section,
		opts:     opts,
		scorer:   sc,
		features: features,
		start:    start,
		bestLoss: math.Inf(1),
		log:      logger.WithOptimizerContext(opts.RunID, sc.metricName(), opts.SubsetName),
	}, nil
}

func normalize(value float64, p config.ModelParam) float64 {
	return (value - p.OptiMin) / (p.OptiMax - p.OptiMin)
}

func denormalize(value float64, p config.ModelParam) float64 {
	return value*(p.OptiMax-p.OptiMin) + p.OptiMin
}

// denormalizedParams maps a normalized vector back to flat parameter values.
func (o *Optimizer) denormalizedParams(x []float64) map[string]float64 {
	params := make(map[string]float64, len(o.features))
	for i, key := range o.features {
		params[key] = denormalize(x[i], o.config.Params[key])
	}
	return params
}

// clampToBox clamps every coordinate into [0,1] and returns the quadratic
// penalty for the excursion.
func clampToBox(x []float64) ([]float64, float64) {
	clamped := make([]float64, len(x))
	penalty := 0.0
	for i, v := range x {
		c := math.Max(0, math.Min(1, v))
		d := v - c
		penalty += boxPenaltyWeight * d * d
		clamped[i] = c
	}
	return clamped, penalty
}

// objective runs one full simulation for a normalized parameter vector and
// scores it.
func (o *Optimizer) objective(x []float64) float64 {
	clamped, penalty := clampToBox(x)
	o.round++

	params := o.denormalizedParams(clamped)
	cfg := o.config.Clone()
	if err := cfg.ApplyUpdates(params); err != nil {
		// Keys were validated at construction; reaching this is a bug.
		o.log.WithError(err).Error("objective config update failed")
		return math.Inf(1)
	}
	vals, err := cfg.Values()
	if err != nil {
		o.log.WithError(err).Error("objective config incomplete")
		return math.Inf(1)
	}

	m := model.NewUnitModel(o.data, vals)
	m.Run()

	loss, metrics := o.scorer.score(m.Results())
	o.records = append(o.records, Record{
		Round:   o.round,
		Loss:    loss,
		Metrics: metrics,
		Params:  params,
	})

	if loss < o.bestLoss {
		o.bestLoss = loss
		o.log.WithFields(logrus.Fields{
			"round":               o.round,
			o.scorer.metricName(): loss,
		}).Info("new best objective")
	} else if o.round%100 == 0 {
		o.log.WithFields(logrus.Fields{
			"round": o.round,
			"best":  o.bestLoss,
		}).Info("optimization progress")
	}

	return loss + penalty
}

// Optimize runs the bounded local search from the configured start.
func (o *Optimizer) Optimize() (*Result, error) {
	start := time.Now()

	problem := optimize.Problem{Func: o.objective}
	method := &optimize.NelderMead{SimplexSize: o.opts.Step}
	settings := &optimize.Settings{
		FuncEvaluations: o.opts.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.opts.Tol,
			Iterations: 25,
		},
	}

	solution, solveErr := optimize.Minimize(problem, o.start, settings, method)
	status := "unknown"
	if solution != nil {
		status = solution.Status.String()
	}
	if solveErr != nil && len(o.records) == 0 {
		return nil, fmt.Errorf("optimization failed before any evaluation: %w", solveErr)
	}

	best, err := o.BestRecord()
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       o.opts.RunID,
		SubsetName:  o.opts.SubsetName,
		Metric:      o.scorer.metricName(),
		Loss:        best.Loss,
		Params:      best.Params,
		Evaluations: o.round,
		Runtime:     time.Since(start),
		Status:      status,
		Records:     o.records,
	}

	o.log.WithFields(logrus.Fields{
		"evaluations":         result.Evaluations,
		"status":              result.Status,
		o.scorer.metricName(): result.Loss,
		"runtime_ms":          result.Runtime.Milliseconds(),
	}).Info("optimization complete")

	return result, nil
}

// BestRecord returns the lowest-loss evaluation, ties broken by earliest
// round.
func (o *Optimizer) BestRecord() (Record, error) {
	if len(o.records) == 0 {
		return Record{}, fmt.Errorf("no optimization records")
	}
	sorted := make([]Record, len(o.records))
	copy(sorted, o.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Loss < sorted[j].Loss
	})
	return sorted[0], nil
}

// Features returns the flat parameter keys being optimized, in order.
func (o *Optimizer) Features() []string {
	return o.features
}

// Start returns the normalized starting point.
func (o *Optimizer) Start() []float64 {
	return o.start
}

// ApplyResult writes a result's parameters back into a config.
func ApplyResult(cfg *config.ModelConfig, res *Result) error {
	rounded := make(map[string]float64, len(res.Params))
	for k, v := range res.Params {
		rounded[k] = math.Round(v*1e6) / 1e6
	}
	return cfg.ApplyUpdates(rounded)
}
