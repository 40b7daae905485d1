package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/grader"
	"github.com/greerreNFL/nfelounits/internal/model"
	"github.com/greerreNFL/nfelounits/internal/store"
	"github.com/greerreNFL/nfelounits/internal/types"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

// RatingsHandler serves unit ratings and win probabilities computed by the
// in-process model. The model reruns over the full game history on demand;
// results are cached until the next run.
type RatingsHandler struct {
	games  []types.GameRow
	cfg    *config.ModelConfig
	db     *store.Store
	logger *logrus.Logger

	mu     sync.RWMutex
	um     *model.UnitModel
	runID  string
	grades *grader.Grades
	ranAt  time.Time
}

// NewRatingsHandler creates a new ratings handler. db may be nil when
// persistence is disabled.
func NewRatingsHandler(
	games []types.GameRow,
	cfg *config.ModelConfig,
	db *store.Store,
	log *logrus.Logger,
) *RatingsHandler {
	return &RatingsHandler{games: games, cfg: cfg, db: db, logger: log}
}

// Ready reports whether at least one model run has completed.
func (h *RatingsHandler) Ready() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.um != nil
}

// Run executes a full model pass and caches the result. Exposed so the
// server can warm the cache on startup.
func (h *RatingsHandler) Run() error {
	values, err := h.cfg.Values()
	if err != nil {
		return err
	}
	um := model.NewUnitModel(h.games, values)
	um.Run()
	runID := uuid.New().String()

	if h.db != nil {
		if err := h.db.SaveResults(runID, um.Results()); err != nil {
			logger.WithComponent("api").WithError(err).Warn("Failed to persist model results")
		}
	}
	grades := grader.Grade(um.Results())

	h.mu.Lock()
	h.um = um
	h.runID = runID
	h.grades = &grades
	h.ranAt = time.Now()
	h.mu.Unlock()
	return nil
}

// RunModel reruns the model over the full game history.
func (h *RatingsHandler) RunModel(c *gin.Context) {
	start := time.Now()
	if err := h.Run(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	logger.WithRunID(h.runID).WithFields(logrus.Fields{
		"games":   len(h.games),
		"runtime": time.Since(start).String(),
	}).Info("Model run completed")

	c.JSON(http.StatusOK, gin.H{
		"run_id":  h.runID,
		"games":   len(h.games),
		"records": len(h.um.Results()),
		"runtime": time.Since(start).String(),
		"grades":  h.grades,
	})
}

type unitRating struct {
	Off float64 `json:"off"`
	Def float64 `json:"def"`
}

type teamRating struct {
	Team     string                `json:"team"`
	Units    map[string]unitRating `json:"units"`
	TotalOff float64               `json:"total_off"`
	TotalDef float64               `json:"total_def"`
	Elo      float64               `json:"elo"`
	QB       string                `json:"qb,omitempty"`
	QBValue  float64               `json:"qb_value"`
}

func (h *RatingsHandler) rating(t *model.Team) teamRating {
	units := make(map[string]unitRating, len(types.UnitTypes))
	for _, ut := range types.UnitTypes {
		units[string(ut)] = unitRating{
			Off: t.Unit(ut, types.SideOffense).Value,
			Def: t.Unit(ut, types.SideDefense).Value,
		}
	}
	return teamRating{
		Team:     t.Abbr,
		Units:    units,
		TotalOff: t.TotalOffValue(),
		TotalDef: t.TotalDefValue(),
		Elo:      h.um.Translator().TranslateToElo(t),
		QB:       t.QB.StarterName,
		QBValue:  t.QB.StarterValue,
	}
}

// GetRatings returns the current ratings for every team, sorted by Elo.
func (h *RatingsHandler) GetRatings(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.um == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model has not run yet"})
		return
	}

	teams := h.um.Teams()
	ratings := make([]teamRating, 0, len(teams))
	for _, t := range teams {
		ratings = append(ratings, h.rating(t))
	}
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].Elo != ratings[j].Elo {
			return ratings[i].Elo > ratings[j].Elo
		}
		return ratings[i].Team < ratings[j].Team
	})

	c.JSON(http.StatusOK, gin.H{
		"run_id":  h.runID,
		"ran_at":  h.ranAt,
		"ratings": ratings,
	})
}

// GetTeamRatings returns the current ratings for one team.
func (h *RatingsHandler) GetTeamRatings(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.um == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model has not run yet"})
		return
	}

	t, ok := h.um.Teams()[c.Param("team")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown team: " + c.Param("team")})
		return
	}
	c.JSON(http.StatusOK, h.rating(t))
}

// GetWinProbability returns the pregame home win probability for a
// hypothetical matchup between two teams at the current ratings. The hfa
// query parameter sets the home field base in EPA terms and defaults to 0
// (neutral field). QB and weather context are not applied.
func (h *RatingsHandler) GetWinProbability(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.um == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model has not run yet"})
		return
	}

	home, ok := h.um.Teams()[c.Query("home")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown home team: " + c.Query("home")})
		return
	}
	away, ok := h.um.Teams()[c.Query("away")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown away team: " + c.Query("away")})
		return
	}

	hfaBase := 0.0
	if raw := c.Query("hfa"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hfa: " + raw})
			return
		}
		hfaBase = v
	}

	tr := h.um.Translator()
	homeElo := tr.TranslateToElo(home)
	awayElo := tr.TranslateToElo(away)
	winProb := model.MatchupWinProbability(homeElo, 0, 0, awayElo, 0, 0, hfaBase)

	c.JSON(http.StatusOK, gin.H{
		"home":          home.Abbr,
		"away":          away.Abbr,
		"home_elo":      homeElo,
		"away_elo":      awayElo,
		"hfa_base":      hfaBase,
		"home_win_prob": winProb,
	})
}

// GetParams returns the active model parameters.
func (h *RatingsHandler) GetParams(c *gin.Context) {
	c.JSON(http.StatusOK, h.cfg)
}

// GetResults returns the persisted team-game rows for a run.
func (h *RatingsHandler) GetResults(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persistence is not configured"})
		return
	}
	runID := c.Query("run_id")
	if runID == "" {
		h.mu.RLock()
		runID = h.runID
		h.mu.RUnlock()
	}
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run_id is required before the first model run"})
		return
	}

	rows, err := h.db.ResultsForRun(runID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": runID, "count": len(rows), "results": rows})
}
