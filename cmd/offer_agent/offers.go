package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/offer-dashboard/internal/dashboard"
	"github.com/jonathan/offer-dashboard/internal/filtering"
	"github.com/jonathan/offer-dashboard/internal/llm"
	"github.com/jonathan/offer-dashboard/internal/observability"
	"github.com/jonathan/offer-dashboard/internal/types"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Fetch and browse pending marketplace offers",
	Long:  "Fetch the pending-review offers from the marketplace, optionally narrow them with a natural-language query or a quick filter, and print them sorted by expiry.",
	RunE:  runOffers,
}

var (
	offersConfigPath string
	offersAPIKey     string
	offersQuery      string
	offersExpiring   bool
	offersHighValue  bool
)

func init() {
	offersCmd.Flags().StringVar(&offersConfigPath, "config", "", "Path to JSON config file")
	offersCmd.Flags().StringVar(&offersAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	offersCmd.Flags().StringVarP(&offersQuery, "query", "q", "", "Natural-language query to filter offers")
	offersCmd.Flags().BoolVar(&offersExpiring, "expiring-soon", false, "Only offers expiring within 7 days")
	offersCmd.Flags().BoolVar(&offersHighValue, "high-value", false, "Only offers with budget above $50")

	rootCmd.AddCommand(offersCmd)
}

func runOffers(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig(offersConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stdout)

	var filterer dashboard.Filterer = noFilter{}
	if offersQuery != "" {
		apiKey, err := requireAPIKey(cfg, offersAPIKey)
		if err != nil {
			return err
		}
		client, err := llm.NewClient(ctx, llmConfig(cfg), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		filterer = filtering.NewEngine(client)
	}

	dash := dashboard.New(noExtract{}, filterer, marketplaceClient(cfg), credentials(cfg))

	if err := dash.Refresh(ctx); err != nil {
		printer.PrintNotices(dash.Notices())
		return err
	}

	now := time.Now()
	switch {
	case offersQuery != "":
		// Fails open: a filter error leaves the full view with a notice.
		_ = dash.Search(ctx, offersQuery)
	case offersExpiring:
		_ = dash.FilterExpiringSoon(7, now)
	case offersHighValue:
		_ = dash.FilterHighValue(50)
	}

	printer.PrintNotices(dash.Notices())
	printer.PrintOffers(dash.SortedView(), now)
	return nil
}

// noExtract satisfies the extractor slot for the browse-only command.
type noExtract struct{}

func (noExtract) Extract(context.Context, string) (*types.OfferDraftParams, error) {
	return nil, fmt.Errorf("extraction is not available in the offers command")
}

// noFilter passes the collection through unchanged.
type noFilter struct{}

func (noFilter) Filter(_ context.Context, _ string, offers []types.Offer) ([]types.Offer, error) {
	return offers, nil
}
