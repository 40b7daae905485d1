package main

import (
	"github.com/spf13/cobra"

	"github.com/greerreNFL/nfelounits/internal/api"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve ratings and win probabilities over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			settings.Port = servePort
		}
		cfg, err := loadModelConfig()
		if err != nil {
			return err
		}
		return api.Serve(settings, cfg)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (default PORT)")
}
