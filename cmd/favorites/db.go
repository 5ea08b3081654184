package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/tair/favorites-service/internal/app"
	"github.com/tair/favorites-service/pkg/logger"
)

func newDBCmd() *cobra.Command {
	db := &cobra.Command{
		Use:   "db",
		Short: "Store maintenance",
	}

	var seed uint64
	populate := &cobra.Command{
		Use:   "populate",
		Short: "Insert sample clients, products and favorites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			backend, err := app.OpenBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			res, err := app.Populate(cmd.Context(), backend, rand.New(rand.NewPCG(seed, seed)))
			if err != nil {
				return err
			}
			logger.Logger.Info().
				Int("clients", res.Clients).
				Int("products", res.Products).
				Int("favorites", res.Favorites).
				Msg("Database populated")
			return nil
		},
	}
	populate.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete every favorite, product and client",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			backend, err := app.OpenBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			if err := backend.Reset(cmd.Context()); err != nil {
				return err
			}
			logger.Logger.Info().Msg("Database reset")
			return nil
		},
	}

	db.AddCommand(populate, reset)
	return db
}
