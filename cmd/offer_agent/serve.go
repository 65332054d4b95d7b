package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/offer-dashboard/internal/dashboard"
	"github.com/jonathan/offer-dashboard/internal/extraction"
	"github.com/jonathan/offer-dashboard/internal/filtering"
	"github.com/jonathan/offer-dashboard/internal/llm"
	"github.com/jonathan/offer-dashboard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the offer dashboard REST API server",
	Long:  "Start the HTTP server exposing offer drafting and browsing as a REST API.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveAPIKey     string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig(serveConfigPath)
	if err != nil {
		return err
	}

	apiKey, err := requireAPIKey(cfg, serveAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llmConfig(cfg), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	dash := dashboard.New(
		extraction.NewEngine(client),
		filtering.NewEngine(client),
		marketplaceClient(cfg),
		credentials(cfg),
	)

	return server.New(server.Config{Port: servePort}, dash).Start()
}
