package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greerreNFL/nfelounits/internal/api/handlers"
	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/types"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

func testRatingsHandler(t *testing.T) *handlers.RatingsHandler {
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
	}
	return handlers.NewRatingsHandler(games, config.DefaultModelConfig(), nil, logger.GetLogger())
}

func TestRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ratings := testRatingsHandler(t)
	router := NewRouter(ratings, logger.GetLogger())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Not ready until the first model run completes.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	require.NoError(t, ratings.Run())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ratings", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
