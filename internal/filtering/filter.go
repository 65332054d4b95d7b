// Package filtering narrows an offer collection with a natural-language
// query routed through a single LLM call. The engine fails open: a transport
// or parse failure yields the original collection, never an empty one.
package filtering

import (
	"context"
	"encoding/json"

	"github.com/jonathan/offer-dashboard/internal/llm"
	"github.com/jonathan/offer-dashboard/internal/offers"
	"github.com/jonathan/offer-dashboard/internal/prompts"
	"github.com/jonathan/offer-dashboard/internal/types"
)

// Engine filters offers by natural-language query. The LLM client is
// injected so tests can substitute a deterministic fake.
type Engine struct {
	client llm.Client
}

// NewEngine creates a filter engine on top of an LLM client.
func NewEngine(client llm.Client) *Engine {
	return &Engine{client: client}
}

// matchResponse is the contract the filter prompt demands. The pointer
// distinguishes an empty selection from an absent or null field; only a
// present, non-null list counts as a usable answer.
type matchResponse struct {
	MatchingIDs *[]types.OfferID `json:"matching_ids"`
}

// Filter returns the subsequence of offers whose id the model selected,
// preserving original relative order. On any failure the input collection
// comes back unchanged together with a FilterTransportError for the caller
// to surface as a notice.
func (e *Engine) Filter(ctx context.Context, query string, collection []types.Offer) ([]types.Offer, error) {
	if len(collection) == 0 {
		return collection, nil
	}

	template := prompts.MustGet("filtering.json", "filter-offers")
	system := prompts.Format(template, map[string]string{
		"Query":  query,
		"Offers": offers.SummaryBlock(collection),
	})

	responseText, err := e.client.GenerateJSON(ctx, system, query, llm.TierLite)
	if err != nil {
		return collection, &FilterTransportError{Message: "LLM call failed", Cause: err}
	}

	responseText = llm.CleanJSONBlock(responseText)

	var parsed matchResponse
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		return collection, &FilterTransportError{Message: "response is not valid JSON", Cause: err}
	}
	if parsed.MatchingIDs == nil {
		return collection, &FilterTransportError{Message: "response missing matching_ids"}
	}

	matched := make(map[types.OfferID]bool, len(*parsed.MatchingIDs))
	for _, id := range *parsed.MatchingIDs {
		matched[id] = true
	}

	result := make([]types.Offer, 0, len(*parsed.MatchingIDs))
	for _, o := range collection {
		// An offer without an id can never be selected.
		if o.ID != "" && matched[o.ID] {
			result = append(result, o)
		}
	}
	return result, nil
}
