// Package types provides type definitions for structured data used throughout the offer dashboard system.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NoEndDate is the sentinel the marketplace uses for offers without an expiry.
const NoEndDate = "No end date"

// OfferID is the stable identifier of a remote offer. The marketplace and the
// LLM filter response are inconsistent about whether IDs are JSON numbers or
// strings, so both decode to the same canonical string form.
type OfferID string

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *OfferID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty offer id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OfferID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("offer id must be a string or number: %w", err)
	}
	*id = OfferID(n.String())
	return nil
}

// MarshalJSON renders numeric IDs back as numbers to round-trip the
// marketplace payload unchanged. Only ids whose canonical decimal form
// matches exactly are emitted unquoted; "007" or "+5" would parse but are
// not valid JSON numbers, so they stay quoted strings.
func (id OfferID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Merchant describes a merchant attached to an offer.
type Merchant struct {
	Name           string `json:"name,omitempty"`
	Category       string `json:"category,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	CategoryLogo   string `json:"categoryLogo,omitempty"`
}

// Currency describes how an offer's budget should be rendered.
type Currency struct {
	Symbol string `json:"symbol,omitempty"`
	Code   string `json:"code,omitempty"`
}

// Duration holds the offer validity window as the marketplace formats it
// ("2006-01-02 15:04", or the NoEndDate sentinel for To).
type Duration struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Offer is a remote-owned promotional record. Offers are read-only on this
// side: they are fetched in bulk, optionally narrowed by id membership, and
// replaced wholesale on refresh.
type Offer struct {
	ID        OfferID    `json:"id"`
	Title     string     `json:"title,omitempty"`
	Status    string     `json:"status,omitempty"`
	Merchants []Merchant `json:"merchants,omitempty"`
	Budget    *float64   `json:"budget,omitempty"`
	Currency  *Currency  `json:"currency,omitempty"`
	Duration  *Duration  `json:"duration,omitempty"`
	OfferLogo string     `json:"offerLogo,omitempty"`
}

// PrimaryMerchant returns the first merchant record, or a zero Merchant when
// the offer carries none.
func (o Offer) PrimaryMerchant() Merchant {
	if len(o.Merchants) > 0 {
		return o.Merchants[0]
	}
	return Merchant{}
}

// Expiry returns the raw end-of-validity string, or "" when the offer has no
// duration at all.
func (o Offer) Expiry() string {
	if o.Duration == nil {
		return ""
	}
	return o.Duration.To
}
