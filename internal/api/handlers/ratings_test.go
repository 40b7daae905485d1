package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

func testRouter(h *RatingsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/model/run", h.RunModel)
	r.GET("/ratings", h.GetRatings)
	r.GET("/ratings/:team", h.GetTeamRatings)
	r.GET("/winprob", h.GetWinProbability)
	r.GET("/params", h.GetParams)
	return r
}

func testHandler(t *testing.T) *RatingsHandler {
	t.Helper()
	games := []types.GameRow{
		{
			GameID: "2020_01_KC_LV", Season: 2020, Week: 1,
			HomeTeam: "KC", AwayTeam: "LV",
			HomeCoach: "Reid", AwayCoach: "Gruden",
			HFABase:     2.0,
			HomeQBName:  "Mahomes", HomeQBValue: 95,
			AwayQBName: "Carr", AwayQBValue: 80,
			Result:      10,
			HomePassEPA: 8, HomeRushEPA: -1, HomeSTEPA: 1,
			AwayPassEPA: 2, AwayRushEPA: -4, AwaySTEPA: 2,
		},
		{
			GameID: "2020_02_LV_KC", Season: 2020, Week: 2,
			HomeTeam: "LV", AwayTeam: "KC",
			HomeCoach: "Gruden", AwayCoach: "Reid",
			HFABase:     2.0,
			HomeQBName:  "Carr", HomeQBValue: 80,
			AwayQBName: "Mahomes", AwayQBValue: 96,
			Result:      -3,
			HomePassEPA: 3, HomeRushEPA: -3, HomeSTEPA: 1,
			AwayPassEPA: 7, AwayRushEPA: -2, AwaySTEPA: 2,
		},
	}
	return NewRatingsHandler(games, config.DefaultModelConfig(), nil, logger.GetLogger())
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestEndpointsUnavailableBeforeFirstRun(t *testing.T) {
	h := testHandler(t)
	r := testRouter(h)

	assert.False(t, h.Ready())
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(r, http.MethodGet, "/ratings").Code)
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(r, http.MethodGet, "/ratings/KC").Code)
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(r, http.MethodGet, "/winprob?home=KC&away=LV").Code)
}

func TestRunModelThenGetRatings(t *testing.T) {
	h := testHandler(t)
	r := testRouter(h)

	w := doRequest(r, http.MethodPost, "/model/run")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, h.Ready())

	var runResp struct {
		RunID   string `json:"run_id"`
		Games   int    `json:"games"`
		Records int    `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runResp))
	assert.NotEmpty(t, runResp.RunID)
	assert.Equal(t, 2, runResp.Games)
	assert.Equal(t, 4, runResp.Records)

	w = doRequest(r, http.MethodGet, "/ratings")
	require.Equal(t, http.StatusOK, w.Code)

	var ratingsResp struct {
		Ratings []teamRating `json:"ratings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ratingsResp))
	require.Len(t, ratingsResp.Ratings, 2)
	// Sorted by Elo descending; KC outplayed its expectations both weeks.
	assert.Equal(t, "KC", ratingsResp.Ratings[0].Team)
	assert.Greater(t, ratingsResp.Ratings[0].Elo, ratingsResp.Ratings[1].Elo)
	assert.Len(t, ratingsResp.Ratings[0].Units, 3)
}

func TestGetTeamRatings(t *testing.T) {
	h := testHandler(t)
	require.NoError(t, h.Run())
	r := testRouter(h)

	w := doRequest(r, http.MethodGet, "/ratings/KC")
	require.Equal(t, http.StatusOK, w.Code)

	var rating teamRating
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rating))
	assert.Equal(t, "KC", rating.Team)
	assert.Equal(t, "Mahomes", rating.QB)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/ratings/XX").Code)
}

func TestGetWinProbability(t *testing.T) {
	h := testHandler(t)
	require.NoError(t, h.Run())
	r := testRouter(h)

	w := doRequest(r, http.MethodGet, "/winprob?home=KC&away=LV")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		HomeElo     float64 `json:"home_elo"`
		AwayElo     float64 `json:"away_elo"`
		HomeWinProb float64 `json:"home_win_prob"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.HomeElo, resp.AwayElo)
	assert.Greater(t, resp.HomeWinProb, 0.5)

	// A home-field base shifts the matchup further toward the home side.
	w = doRequest(r, http.MethodGet, "/winprob?home=KC&away=LV&hfa=2.0")
	var withHFA struct {
		HomeWinProb float64 `json:"home_win_prob"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &withHFA))
	assert.Greater(t, withHFA.HomeWinProb, resp.HomeWinProb)

	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodGet, "/winprob?home=XX&away=LV").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodGet, "/winprob?home=KC&away=LV&hfa=abc").Code)
}

func TestGetParams(t *testing.T) {
	h := testHandler(t)
	r := testRouter(h)

	w := doRequest(r, http.MethodGet, "/params")
	require.Equal(t, http.StatusOK, w.Code)

	var cfg config.ModelConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.NotEmpty(t, cfg.Params)
}

func TestHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := testHandler(t)
	health := NewHealthHandler(logger.GetLogger(), h.Ready)

	r := gin.New()
	r.GET("/health", health.GetHealth)
	r.GET("/ready", health.GetReady)

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(r, http.MethodGet, "/ready").Code)

	require.NoError(t, h.Run())
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/ready").Code)
}
