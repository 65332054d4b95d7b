// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/offer-dashboard/internal/offers"
	"github.com/jonathan/offer-dashboard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines by rune so multi-byte symbols are never split
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDraftPreview outputs a human-readable preview of an extracted draft,
// applying the preview defaults for fields the extraction left out.
func (p *Printer) PrintDraftPreview(params *types.OfferDraftParams, now time.Time) {
	if params == nil {
		return
	}
	preview := params.ApplyPreviewDefaults()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", preview.OfferName))
	sb.WriteString(fmt.Sprintf("%s %s\n", preview.ValueDisplay(), preview.OfferType))
	sb.WriteString(fmt.Sprintf("Min. spend:      $%.2f\n", preview.MinSpend))
	sb.WriteString(fmt.Sprintf("Valid until:     %s\n", preview.ValidUntil(now).Format("Jan 02, 2006")))
	sb.WriteString(fmt.Sprintf("Max redemptions: %s", preview.RedemptionsDisplay()))

	p.printBox("OFFER PREVIEW", sb.String())
}

// PrintOffers outputs one card per offer in the given view.
func (p *Printer) PrintOffers(view []types.Offer, now time.Time) {
	if len(view) == 0 {
		p.printBox("OFFERS", "No offers found. Refresh offers or try a different search.")
		return
	}

	for _, card := range offers.Cards(view, now) {
		p.printOfferCard(card)
	}
}

func (p *Printer) printOfferCard(card offers.Card) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Merchant:   %s\n", card.MerchantName))
	sb.WriteString(fmt.Sprintf("Category:   %s\n", card.Category))
	sb.WriteString(fmt.Sprintf("Value:      %s\n", card.ValueDisplay))
	sb.WriteString(fmt.Sprintf("Expires in: %s days\n", card.DaysLeft))
	sb.WriteString(fmt.Sprintf("Status:     %s", card.DisplayStatus))

	title := card.Title
	if title == "" {
		title = "Untitled Offer"
	}
	p.printBox(title, sb.String())
}

// PrintNotices outputs accumulated non-fatal messages.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotices(notices []string) {
	for _, notice := range notices {
		fmt.Fprintf(p.out, "! %s\n", notice)
	}
}
