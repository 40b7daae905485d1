package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/greerreNFL/nfelounits/internal/data"
	"github.com/greerreNFL/nfelounits/internal/grader"
	"github.com/greerreNFL/nfelounits/internal/model"
	"github.com/greerreNFL/nfelounits/internal/store"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

var (
	runOutputPath string
	runPersist    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the unit model over the full game history",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	start := time.Now()
	runID := uuid.New().String()
	log := logger.WithRunID(runID)

	games, err := data.LoadGames(settings.DataPath)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	cfg, err := loadModelConfig()
	if err != nil {
		return err
	}
	values, err := cfg.Values()
	if err != nil {
		return fmt.Errorf("resolve params: %w", err)
	}

	um := model.NewUnitModel(games, values)
	um.Run()
	records := um.Results()

	if runOutputPath != "" {
		if err := data.WriteResultsCSV(runOutputPath, records); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		log.WithField("path", runOutputPath).Info("Results written")
	}
	if runPersist {
		db, err := store.Open(settings.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		if err := db.SaveResults(runID, records); err != nil {
			return fmt.Errorf("persist results: %w", err)
		}
		log.WithField("db", settings.DBPath).Info("Results persisted")
	}

	grades := grader.Grade(records)
	for key, m := range grades.Units {
		log.WithFields(logrus.Fields{
			"unit": key,
			"rmse": fmt.Sprintf("%.4f", m.RMSE),
			"mae":  fmt.Sprintf("%.4f", m.MAE),
			"r2":   fmt.Sprintf("%.4f", m.RSquared),
		}).Info("Unit grade")
	}
	log.WithFields(logrus.Fields{
		"games":   len(games),
		"records": len(records),
		"avg_mae": fmt.Sprintf("%.4f", grades.Overall.MAE),
		"runtime": time.Since(start).String(),
	}).Info("Model run completed")
	return nil
}

func init() {
	runCmd.Flags().StringVarP(&runOutputPath, "output", "o", "", "write team-game results to this CSV path")
	runCmd.Flags().BoolVar(&runPersist, "persist", false, "persist results to the sqlite store at DB_PATH")
}
