// Package main provides the entry point for the offer dashboard CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "offer_agent",
	Short: "AI-powered offer management dashboard",
	Long:  "Offer Agent turns free-text marketing descriptions into structured promotional offers and lets you browse and filter pending marketplace offers with natural language.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
