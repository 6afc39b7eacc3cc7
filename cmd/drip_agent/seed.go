package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/drip-agent/internal/db"
)

var seedConfigPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load the archetype and product catalog",
	Long:  `Ensures the database schema exists and upserts the built-in fashion archetype and product seed data. Safe to run repeatedly.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(seedConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required for seed (set DATABASE_URL or database_url in config)")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	if err := database.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Printf("Seeded %d archetypes and %d products.\n", len(db.SeedArchetypes), len(db.SeedProducts))
	return nil
}
