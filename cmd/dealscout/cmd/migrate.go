package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.Database.Enabled() {
		return fmt.Errorf("no database configured: set database.url or DATABASE_URL")
	}

	ctx := context.Background()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	fmt.Println("Migrations applied.")
	return nil
}
