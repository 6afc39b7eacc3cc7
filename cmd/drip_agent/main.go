// Package main provides the entry point for the drip agent CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drip_agent",
	Short: "Vibe-to-lookbook analysis service",
	Long:  "Drip agent ingests a social-media handle, infers a vibe profile via LLM analysis, maps it to fashion archetypes, and assembles a ranked product lookbook served through a polling job API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
