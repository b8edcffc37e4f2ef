package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smartpet-backend/bootstrap"
	"smartpet-backend/database"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB, logger)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		for col, models := range bootstrap.Indexes() {
			logger.Info("indexes ensured", zap.String("collection", col), zap.Int("count", len(models)))
		}
		return nil
	},
}
