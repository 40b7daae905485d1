package main

import (
	"github.com/sirupsen/logrus"

	"github.com/greerreNFL/nfelounits/internal/api"
	"github.com/greerreNFL/nfelounits/internal/config"
	"github.com/greerreNFL/nfelounits/pkg/logger"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		logrus.Fatalf("Failed to load settings: %v", err)
	}

	logger.InitLogger(settings.LogLevel, settings.IsDevelopment())
	logger.WithComponent("server").WithFields(logrus.Fields{
		"environment": settings.Env,
		"port":        settings.Port,
	}).Info("Starting nfelounits ratings service")

	cfg := config.DefaultModelConfig()
	if settings.ParamPath != "" {
		cfg, err = config.LoadModelConfig(settings.ParamPath)
		if err != nil {
			logger.WithComponent("server").Fatalf("Failed to load model params: %v", err)
		}
	}

	if err := api.Serve(settings, cfg); err != nil {
		logger.WithComponent("server").Fatalf("Server error: %v", err)
	}
}
