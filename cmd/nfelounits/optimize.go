package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/data"
	"github.com/greerreNFL/nfelounits/internal/optimizer"
	"github.com/greerreNFL/nfelounits/internal/store"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

var (
	optTarget      string
	optRestarts    int
	optWorkers     int
	optEvals       int
	optTestSeasons int
	optSeed        int64
	optSavePath    string
	optPersist     bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Fit model parameters against historical games",
	Long: "Fit unit parameters phase by phase (pass, rush, st) against train-set EPA error, " +
		"then Elo coefficients against train-set log loss. Each phase runs parallel " +
		"random restarts and keeps the best-scoring fit.",
	RunE: runOptimize,
}

// fitSubset runs restarts for one parameter subset, applies the best result
// to cfg, and optionally persists the run.
func fitSubset(
	cfg *config.ModelConfig,
	db *store.Store,
	name string,
	build func(c *config.ModelConfig, opts optimizer.Options) (*optimizer.Optimizer, error),
) error {
	start := time.Now()
	log := logger.WithComponent("optimize").WithField("subset", name)
	log.WithFields(logrus.Fields{
		"restarts": optRestarts,
		"workers":  optWorkers,
	}).Info("Fitting subset")

	rc := optimizer.RestartConfig{
		Restarts: optRestarts,
		Workers:  optWorkers,
		BaseSeed: optSeed,
	}
	res, err := optimizer.RunRestarts(rc, func(restart int, seed int64) (*optimizer.Optimizer, error) {
		return build(cfg.Clone(), optimizer.Options{
			MaxEvaluations: optEvals,
			SubsetName:     name,
			RandomizeStart: restart > 0,
			Seed:           seed,
		})
	})
	if err != nil {
		return fmt.Errorf("fit %s: %w", name, err)
	}

	if err := optimizer.ApplyResult(cfg, res); err != nil {
		return fmt.Errorf("apply %s result: %w", name, err)
	}
	if db != nil {
		if err := db.SaveOptimization(res); err != nil {
			log.WithError(err).Warn("Failed to persist optimization run")
		}
	}

	log.WithFields(logrus.Fields{
		"metric":      res.Metric,
		"loss":        fmt.Sprintf("%.6f", res.Loss),
		"evaluations": res.Evaluations,
		"runtime":     time.Since(start).String(),
	}).Info("Subset fit complete")
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if optTarget != "unit" && optTarget != "elo" && optTarget != "all" {
		return fmt.Errorf("invalid --target %q (want unit, elo or all)", optTarget)
	}
	if optTestSeasons == 0 {
		optTestSeasons = settings.TestSeasons
	}
	if optRestarts == 0 {
		optRestarts = settings.OptimizerRestarts
	}
	if optWorkers == 0 {
		optWorkers = settings.OptimizerWorkers
	}

	games, err := data.LoadGames(settings.DataPath)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	games, err = data.LabelTrainTest(games, optTestSeasons, true)
	if err != nil {
		return fmt.Errorf("label train/test: %w", err)
	}
	cfg, err := loadModelConfig()
	if err != nil {
		return err
	}

	var db *store.Store
	if optPersist {
		db, err = store.Open(settings.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
	}

	if optTarget == "unit" || optTarget == "all" {
		for _, name := range optimizer.UnitSubsetOrder {
			subset := optimizer.UnitSubsets[name]
			err := fitSubset(cfg, db, name,
				func(c *config.ModelConfig, opts optimizer.Options) (*optimizer.Optimizer, error) {
					opts.Subset = subset
					return optimizer.NewUnitOptimizer(games, c, opts)
				})
			if err != nil {
				return err
			}
		}
	}
	if optTarget == "elo" || optTarget == "all" {
		err := fitSubset(cfg, db, "elo",
			func(c *config.ModelConfig, opts optimizer.Options) (*optimizer.Optimizer, error) {
				return optimizer.NewEloOptimizer(games, c, opts)
			})
		if err != nil {
			return err
		}
	}

	savePath := optSavePath
	if savePath == "" {
		savePath = settings.ParamPath
	}
	if savePath == "" {
		savePath = "data/params.json"
	}
	if err := cfg.Save(savePath); err != nil {
		return fmt.Errorf("save params: %w", err)
	}
	logger.WithComponent("optimize").WithField("path", savePath).Info("Fitted parameters saved")
	return nil
}

func init() {
	optimizeCmd.Flags().StringVar(&optTarget, "target", "all", "what to fit: unit, elo or all")
	optimizeCmd.Flags().IntVar(&optRestarts, "restarts", 0, "random restarts per subset (default OPTIMIZER_RESTARTS)")
	optimizeCmd.Flags().IntVar(&optWorkers, "workers", 0, "parallel restart workers (default OPTIMIZER_WORKERS)")
	optimizeCmd.Flags().IntVar(&optEvals, "evals", 0, "objective evaluation cap per restart (0 = solver default)")
	optimizeCmd.Flags().IntVar(&optTestSeasons, "test-seasons", 0, "trailing seasons held out of training (default TEST_SEASONS)")
	optimizeCmd.Flags().Int64Var(&optSeed, "seed", time.Now().UnixNano(), "base seed for randomized restarts")
	optimizeCmd.Flags().StringVar(&optSavePath, "save", "", "path to write fitted params JSON (default PARAM_PATH)")
	optimizeCmd.Flags().BoolVar(&optPersist, "persist", false, "persist optimization runs to the sqlite store at DB_PATH")
}
