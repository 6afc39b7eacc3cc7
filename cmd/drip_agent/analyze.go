package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/drip-agent/internal/colorseason"
	"github.com/jonathan/drip-agent/internal/db"
	"github.com/jonathan/drip-agent/internal/fetch"
	"github.com/jonathan/drip-agent/internal/llm"
	"github.com/jonathan/drip-agent/internal/matching"
	"github.com/jonathan/drip-agent/internal/observability"
	"github.com/jonathan/drip-agent/internal/profile"
	"github.com/jonathan/drip-agent/internal/style"
	"github.com/jonathan/drip-agent/internal/types"
	"github.com/jonathan/drip-agent/internal/vibe"
	"github.com/jonathan/drip-agent/internal/weather"
)

var (
	analyzeConfigPath string
	analyzeInputFile  string
	analyzeJSON       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <handle>",
	Short: "Run the analysis pipeline once for a handle and print the lookbook",
	Long: `Runs scrape -> vibe analysis -> style resolution -> product matching for a
single handle, without a job record. Uses the database catalog when
DATABASE_URL is set, otherwise the built-in seed catalog. A failed scrape
falls back to a demo profile so the command always produces a lookbook.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "input-file", "i", "", "Path to a text file of pasted profile content (skips scraping)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the lookbook as JSON instead of formatted output")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	handle := args[0]

	cfg, err := resolveConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or gemini_api_key in config)")
	}

	ctx := cmd.Context()
	printer := observability.NewPrinter(os.Stdout)

	llmClient, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create inference client: %w", err)
	}
	defer llmClient.Close() //nolint:errcheck

	// Prefer the database catalog; fall back to the seed data in memory.
	var catalog matching.Catalog
	var archetypes []types.Archetype
	var fetcher *fetch.CachedFetcher
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		catalog = database
		archetypes, _ = database.ListArchetypes(ctx)
		fetcher = fetch.NewCachedFetcher(database, fetch.DefaultCachedFetcherConfig())
	} else {
		mem := db.NewMemoryCatalog()
		catalog = mem
		archetypes = mem.Archetypes
	}

	// Stage 1: profile
	var profileData *types.Profile
	if analyzeInputFile != "" {
		raw, err := os.ReadFile(analyzeInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		profileData = profile.ParseManualInput(string(raw), handle)
	} else {
		scraper := profile.NewScraper(cfg.ApifyToken, fetcher, cfg.Verbose)
		profileData, err = scraper.Scrape(ctx, handle)
		if err != nil {
			fmt.Printf("Warning: scraping failed (%v), using demo profile\n", err)
			profileData = profile.DemoProfile(handle)
		}
	}
	if cfg.Verbose {
		printer.PrintProfile(profileData)
	}

	// Stage 2: vibe
	fmt.Println("Analyzing vibe...")
	aggregator := vibe.NewAggregator(llmClient, weather.NewService(cfg.WeatherAPIKey))
	vibeProfile, err := aggregator.Aggregate(ctx, profileData)
	if err != nil {
		return fmt.Errorf("vibe analysis failed: %w", err)
	}
	printer.PrintVibeProfile(vibeProfile)

	// Stage 3: style
	fmt.Println("Resolving style...")
	resolver := style.NewResolver(llmClient, cfg.Verbose)
	styleRec := resolver.Resolve(ctx, vibeProfile, archetypes)
	printer.PrintStyleRecommendation(styleRec)

	// Stage 4: products
	fmt.Println("Matching products...")
	matcher := matching.NewMatcher(catalog, llmClient, cfg.Verbose)
	products, err := matcher.Match(ctx, styleRec, vibeProfile)
	if err != nil {
		return fmt.Errorf("product matching failed: %w", err)
	}
	printer.PrintShoppingResult(products)

	if analyzeJSON {
		lookbook := types.Lookbook{
			Handle:   profileData.Handle,
			Profile:  *profileData,
			Vibe:     *vibeProfile,
			Style:    *styleRec,
			Products: *products,
		}
		if vibeProfile.ColorSeason != nil {
			colors := colorseason.OutfitColors(*vibeProfile.ColorSeason)
			lookbook.OutfitColors = &colors
		}
		encoded, err := json.MarshalIndent(lookbook, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode lookbook: %w", err)
		}
		fmt.Println(string(encoded))
	}

	return nil
}
