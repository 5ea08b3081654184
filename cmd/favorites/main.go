package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tair/favorites-service/pkg/config"
	"github.com/tair/favorites-service/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "favorites",
		Short:         "Clients, products and favorites API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newDBCmd())

	if err := root.Execute(); err != nil {
		logger.Logger.Error().Err(err).Msg("Command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and initializes the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{
		ServiceName: cfg.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})
	return cfg, nil
}
