package cmd

import (
	"context"

	"serviceboard/config"
	"serviceboard/database"
	"serviceboard/utils"

	"github.com/spf13/cobra"
)

// serviceboard indexes: create the collection indexes and exit.
var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create MongoDB indexes and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		store, err := database.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close(context.Background()) //nolint:errcheck

		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}
		logger.Sugar().Infof("indexes: ensured on database %q", cfg.DatabaseName)
		return nil
	},
}
