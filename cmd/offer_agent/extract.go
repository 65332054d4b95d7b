package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/offer-dashboard/internal/extraction"
	"github.com/jonathan/offer-dashboard/internal/llm"
	"github.com/jonathan/offer-dashboard/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract [description]",
	Short: "Extract structured offer parameters from a free-text description",
	Long:  "Extract offer parameters (type, value, minimum spend, duration, redemption cap) from a marketing description using the language model, and print the offer preview.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractConfigPath string
	extractAPIKey     string
	extractAsJSON     bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to a text file with the offer description")
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to JSON config file")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractAsJSON, "json", false, "Print the raw extracted params as JSON")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	cfg, err := loadAppConfig(extractConfigPath)
	if err != nil {
		return err
	}

	apiKey, err := requireAPIKey(cfg, extractAPIKey)
	if err != nil {
		return err
	}

	description := strings.Join(args, " ")
	if extractInputFile != "" {
		content, err := os.ReadFile(extractInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		description = string(content)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("provide a description as an argument or via --in")
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llmConfig(cfg), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	params, err := extraction.NewEngine(client).Extract(ctx, description)
	if err != nil {
		return fmt.Errorf("failed to extract offer params: %w", err)
	}

	if extractAsJSON {
		jsonBytes, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintDraftPreview(params, time.Now())
	return nil
}
