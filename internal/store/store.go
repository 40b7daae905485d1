package store

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/greerreNFL/nfelounits/internal/data"
	"github.com/greerreNFL/nfelounits/internal/optimizer"
	"github.com/greerreNFL/nfelounits/internal/types"
)

// TeamGameResult is one persisted team-game row, rounded to 4 decimals per
// the output contract.
type TeamGameResult struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"index"`
	GameID    string `gorm:"index"`
	Season    int    `gorm:"index"`
	Week      int
	Team      string `gorm:"index"`
	Opponent  string
	IsHome    bool
	Coach     string
	CreatedAt time.Time

	Elo        float64
	QBAdj      float64
	ContextAdj float64
	WinProb    float64

	PassOffValuePre  float64
	PassDefValuePre  float64
	RushOffValuePre  float64
	RushDefValuePre  float64
	STOffValuePre    float64
	STDefValuePre    float64
	PassOffValuePost float64
	PassDefValuePost float64
	RushOffValuePost float64
	RushDefValuePost float64
	STOffValuePost   float64
	STDefValuePost   float64

	PassOffExpected float64
	PassOffObserved float64
	PassDefExpected float64
	PassDefObserved float64
	RushOffExpected float64
	RushOffObserved float64
	RushDefExpected float64
	RushDefObserved float64
	STOffExpected   float64
	STOffObserved   float64
	STDefExpected   float64
	STDefObserved   float64
}

// OptimizationRun is one persisted optimization result with its best
// parameters encoded one row per parameter.
type OptimizationRun struct {
	ID          uint   `gorm:"primaryKey"`
	RunID       string `gorm:"index"`
	SubsetName  string
	Metric      string
	Loss        float64
	Evaluations int
	RuntimeMS   int64
	Status      string
	CreatedAt   time.Time
}

// OptimizationParam is one best-fit parameter value from a run.
type OptimizationParam struct {
	ID    uint   `gorm:"primaryKey"`
	RunID string `gorm:"index"`
	Key   string
	Value float64
}

// OptimizationRound is one persisted objective evaluation, kept for
// inspectability of the search path.
type OptimizationRound struct {
	ID    uint   `gorm:"primaryKey"`
	RunID string `gorm:"index"`
	Round int
	Loss  float64
}

// Store wraps the sqlite-backed results database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the results database and migrates its schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening results db: %w", err)
	}
	if err := db.AutoMigrate(
		&TeamGameResult{},
		&OptimizationRun{},
		&OptimizationParam{},
		&OptimizationRound{},
	); err != nil {
		return nil, fmt.Errorf("migrating results db: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveResults persists a model run's team-game records.
func (s *Store) SaveResults(runID string, records []types.TeamGameRecord) error {
	rows := make([]TeamGameResult, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, TeamGameResult{
			RunID:    runID,
			GameID:   r.GameID,
			Season:   r.Season,
			Week:     r.Week,
			Team:     r.Team,
			Opponent: r.Opponent,
			IsHome:   r.IsHome,
			Coach:    r.Coach,

			Elo:        data.Round4(r.Elo),
			QBAdj:      data.Round4(r.QBAdj),
			ContextAdj: data.Round4(r.ContextAdj),
			WinProb:    data.Round4(r.WinProb),

			PassOffValuePre:  data.Round4(r.PassOff.Pre),
			PassDefValuePre:  data.Round4(r.PassDef.Pre),
			RushOffValuePre:  data.Round4(r.RushOff.Pre),
			RushDefValuePre:  data.Round4(r.RushDef.Pre),
			STOffValuePre:    data.Round4(r.STOff.Pre),
			STDefValuePre:    data.Round4(r.STDef.Pre),
			PassOffValuePost: data.Round4(r.PassOff.Post),
			PassDefValuePost: data.Round4(r.PassDef.Post),
			RushOffValuePost: data.Round4(r.RushOff.Post),
			RushDefValuePost: data.Round4(r.RushDef.Post),
			STOffValuePost:   data.Round4(r.STOff.Post),
			STDefValuePost:   data.Round4(r.STDef.Post),

			PassOffExpected: data.Round4(r.PassOff.Expected),
			PassOffObserved: data.Round4(r.PassOff.Observed),
			PassDefExpected: data.Round4(r.PassDef.Expected),
			PassDefObserved: data.Round4(r.PassDef.Observed),
			RushOffExpected: data.Round4(r.RushOff.Expected),
			RushOffObserved: data.Round4(r.RushOff.Observed),
			RushDefExpected: data.Round4(r.RushDef.Expected),
			RushDefObserved: data.Round4(r.RushDef.Observed),
			STOffExpected:   data.Round4(r.STOff.Expected),
			STOffObserved:   data.Round4(r.STOff.Observed),
			STDefExpected:   data.Round4(r.STDef.Expected),
			STDefObserved:   data.Round4(r.STDef.Observed),
		})
	}
	if err := s.db.CreateInBatches(rows, 500).Error; err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	return nil
}

// SaveOptimization persists an optimization result, its best parameters and
// its evaluation history.
func (s *Store) SaveOptimization(res *optimizer.Result) error {
	run := OptimizationRun{
		RunID:       res.RunID,
		SubsetName:  res.SubsetName,
		Metric:      res.Metric,
		Loss:        res.Loss,
		Evaluations: res.Evaluations,
		RuntimeMS:   res.Runtime.Milliseconds(),
		Status:      res.Status,
	}
	if err := s.db.Create(&run).Error; err != nil {
		return fmt.Errorf("saving optimization run: %w", err)
	}

	params := make([]OptimizationParam, 0, len(res.Params))
	for k, v := range res.Params {
		params = append(params, OptimizationParam{RunID: res.RunID, Key: k, Value: v})
	}
	if len(params) > 0 {
		if err := s.db.Create(&params).Error; err != nil {
			return fmt.Errorf("saving optimization params: %w", err)
		}
	}

	rounds := make([]OptimizationRound, 0, len(res.Records))
	for _, rec := range res.Records {
		rounds = append(rounds, OptimizationRound{RunID: res.RunID, Round: rec.Round, Loss: rec.Loss})
	}
	if len(rounds) > 0 {
		if err := s.db.CreateInBatches(rounds, 500).Error; err != nil {
			return fmt.Errorf("saving optimization rounds: %w", err)
		}
	}
	return nil
}

// ResultsForRun loads the persisted rows for one model run.
func (s *Store) ResultsForRun(runID string) ([]TeamGameResult, error) {
	var rows []TeamGameResult
	if err := s.db.Where("run_id = ?", runID).
		Order("season, week, game_id, is_home desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading results: %w", err)
	}
	return rows, nil
}
