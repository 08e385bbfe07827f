package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TurfBooking/internal/config"
	"github.com/m04kA/SMC-TurfBooking/pkg/logger"
)

const migrateTimeout = 30 * time.Second

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the reservations schema if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			db, err := openDatabase(ctx, cfg, nil, nil, logger.Nop())
			if err != nil {
				return err
			}
			defer db.Unwrap().Close()

			fmt.Fprintf(os.Stdout, "schema is up to date (%s)\n", describeDatabase(cfg))
			return nil
		},
	}
}
