package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/drip-agent/internal/config"
	"github.com/jonathan/drip-agent/internal/db"
	"github.com/jonathan/drip-agent/internal/fetch"
	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/matching"
	"github.com/jonathan/drip-agent/internal/orchestrator"
	"github.com/jonathan/drip-agent/internal/profile"
	"github.com/jonathan/drip-agent/internal/server"
	"github.com/jonathan/drip-agent/internal/style"
	"github.com/jonathan/drip-agent/internal/vibe"
	"github.com/jonathan/drip-agent/internal/weather"
)

var (
	serveConfigPath string
	servePort       int
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing analysis job creation, status polling, lookbook retrieval, and catalog listings.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveVerbose {
		cfg.Verbose = true
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required for serve (set DATABASE_URL or database_url in config)")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or gemini_api_key in config)")
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

	llmClient, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create inference client: %w", err)
	}
	defer llmClient.Close() //nolint:errcheck

	orch := buildOrchestrator(llmClient, database, database, cfg)
	defer orch.Shutdown()

	srv := server.New(server.Config{Port: cfg.Port}, orch, database)
	return srv.Start()
}

// buildOrchestrator wires the pipeline stages. The catalog is separate from
// the store so the analyze command can swap in the in-memory seed catalog.
func buildOrchestrator(llmClient llm.Client, store orchestrator.Store, catalog matching.Catalog, cfg config.Config) *orchestrator.Orchestrator {
	weatherSvc := weather.NewService(cfg.WeatherAPIKey)

	var fetcher *fetch.CachedFetcher
	if dbStore, ok := store.(*db.Store); ok {
		fetcher = fetch.NewCachedFetcher(dbStore, fetch.DefaultCachedFetcherConfig())
	}
	scraper := profile.NewScraper(cfg.ApifyToken, fetcher, cfg.Verbose)

	aggregator := vibe.NewAggregator(llmClient, weatherSvc)
	resolver := style.NewResolver(llmClient, cfg.Verbose)
	matcher := matching.NewMatcher(catalog, llmClient, cfg.Verbose)

	return orchestrator.New(store, scraper, aggregator, resolver, matcher, cfg.Verbose)
}
