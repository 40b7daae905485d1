package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/greerreNFL/nfelounits/internal/api/handlers"
	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/internal/data"
	"github.com/greerreNFL/nfelounits/internal/store"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

// requestLogger logs each handled request with method, path, status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithHTTPContext(c.Request.Method, c.Request.URL.Path).WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("Request handled")
	}
}

// NewRouter builds the HTTP router over a ratings handler.
func NewRouter(ratings *handlers.RatingsHandler, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())

	health := handlers.NewHealthHandler(log, ratings.Ready)
	router.GET("/health", health.GetHealth)
	router.GET("/ready", health.GetReady)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/model/run", ratings.RunModel)
		apiV1.GET("/ratings", ratings.GetRatings)
		apiV1.GET("/ratings/:team", ratings.GetTeamRatings)
		apiV1.GET("/winprob", ratings.GetWinProbability)
		apiV1.GET("/params", ratings.GetParams)
		apiV1.GET("/results", ratings.GetResults)
	}
	return router
}

// Serve loads game data, runs the model once to warm the ratings cache, and
// serves the API until SIGINT/SIGTERM.
func Serve(settings *config.Settings, cfg *config.ModelConfig) error {
	log := logger.GetLogger()

	if settings.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	games, err := data.LoadGames(settings.DataPath)
	if err != nil {
		return fmt.Errorf("loading games: %w", err)
	}
	logger.WithComponent("api").WithField("games", len(games)).Info("Game data loaded")

	var db *store.Store
	if settings.DBPath != "" {
		db, err = store.Open(settings.DBPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
	}

	ratings := handlers.NewRatingsHandler(games, cfg, db, log)
	if err := ratings.Run(); err != nil {
		return fmt.Errorf("initial model run: %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", settings.Port),
		Handler: NewRouter(ratings, log),
	}

	go func() {
		logger.WithComponent("api").WithField("port", settings.Port).Info("Ratings service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithComponent("api").Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithComponent("api").Info("Shutting down ratings service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.WithComponent("api").Info("Ratings service exited")
	return nil
}
