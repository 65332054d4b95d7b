package offers

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/offer-dashboard/internal/types"
)

// PlaceholderImageURL is shown when neither the offer nor its merchant
// carries an image.
const PlaceholderImageURL = "https://via.placeholder.com/150?text=No+Image"

// Card is an Offer decorated with the display fields the presentation layer
// consumes. The underlying offer is never mutated.
type Card struct {
	types.Offer

	ImageURL      string `json:"imageUrl"`
	MerchantName  string `json:"merchantName"`
	Category      string `json:"category"`
	DaysLeft      string `json:"daysLeft"`
	DisplayStatus string `json:"displayStatus"`
	ValueDisplay  string `json:"valueDisplay"`
}

// NewCard builds the display decoration for one offer.
func NewCard(o types.Offer, now time.Time) Card {
	merchant := o.PrimaryMerchant()
	return Card{
		Offer:         o,
		ImageURL:      imageURL(o),
		MerchantName:  orNA(merchant.Name),
		Category:      orNA(merchant.Category),
		DaysLeft:      daysLeftDisplay(o, now),
		DisplayStatus: DisplayStatus(o.Status),
		ValueDisplay:  valueDisplay(o),
	}
}

// Cards decorates a whole collection, preserving order.
func Cards(offers []types.Offer, now time.Time) []Card {
	cards := make([]Card, 0, len(offers))
	for _, o := range offers {
		cards = append(cards, NewCard(o, now))
	}
	return cards
}

// SummaryLine serializes one offer to the single-line form the filter prompt
// consumes: id, title, merchant, category, expiry, budget.
func SummaryLine(o types.Offer) string {
	merchant := o.PrimaryMerchant()
	return fmt.Sprintf("ID: %s, Title: %s, Merchant: %s, Category: %s, Expires: %s, Budget: %s",
		o.ID,
		orNA(o.Title),
		orNA(merchant.Name),
		orNA(merchant.Category),
		orNA(o.Expiry()),
		budgetDisplay(o))
}

// SummaryBlock joins the summary lines of a collection with newlines.
func SummaryBlock(offers []types.Offer) string {
	lines := make([]string, 0, len(offers))
	for _, o := range offers {
		lines = append(lines, SummaryLine(o))
	}
	return strings.Join(lines, "\n")
}

// DisplayStatus normalizes a free-form remote status for display:
// hyphens become spaces, words are title-cased.
func DisplayStatus(status string) string {
	if status == "" {
		return "N/A"
	}
	words := strings.Split(strings.ReplaceAll(status, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// imageURL picks the first available image: offer logo, merchant profile
// picture, merchant category logo, then the placeholder.
func imageURL(o types.Offer) string {
	merchant := o.PrimaryMerchant()
	for _, candidate := range []string{o.OfferLogo, merchant.ProfilePicture, merchant.CategoryLogo} {
		if candidate != "" {
			return candidate
		}
	}
	return PlaceholderImageURL
}

func daysLeftDisplay(o types.Offer, now time.Time) string {
	expiry, ok, err := ExpiresAt(o)
	if err != nil || !ok {
		return "N/A"
	}
	days := DaysUntil(expiry, now)
	if days < 0 {
		days = 0
	}
	return fmt.Sprintf("%d", days)
}

func valueDisplay(o types.Offer) string {
	symbol := "$"
	if o.Currency != nil && o.Currency.Symbol != "" {
		symbol = o.Currency.Symbol
	}
	return symbol + budgetDisplay(o)
}

func budgetDisplay(o types.Offer) string {
	if o.Budget == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *o.Budget)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
