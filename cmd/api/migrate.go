package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/404skill/mood-journal/backend/internal/config"
	"github.com/404skill/mood-journal/backend/migrations"
)

func migrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: "Apply all pending goose migrations embedded in the binary " +
			"against DATABASE_URL. With --down, roll everything back instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("migrate: DATABASE_URL is not set")
			}

			// goose drives database/sql, not a pgx pool.
			db, err := sql.Open("pgx", cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("migrate: open: %w", err)
			}
			defer db.Close()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return fmt.Errorf("migrate: create provider: %w", err)
			}

			ctx := cmd.Context()
			if down {
				results, err := provider.DownTo(ctx, 0)
				if err != nil {
					return fmt.Errorf("migrate: down: %w", err)
				}
				slog.Info("migrations rolled back", "count", len(results))
				return nil
			}

			results, err := provider.Up(ctx)
			if err != nil {
				return fmt.Errorf("migrate: up: %w", err)
			}
			slog.Info("migrations applied", "count", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back all migrations")
	return cmd
}
