// Package extraction converts free-text offer descriptions into structured
// OfferDraftParams via a single LLM call. The system prompt is the entire
// parser; there is no local grammar.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jonathan/offer-dashboard/internal/llm"
	"github.com/jonathan/offer-dashboard/internal/prompts"
	"github.com/jonathan/offer-dashboard/internal/schemas"
	"github.com/jonathan/offer-dashboard/internal/types"
)

// Engine extracts offer parameters from marketing copy. The LLM client is
// injected so tests can substitute a deterministic fake.
type Engine struct {
	client llm.Client
}

// NewEngine creates an extraction engine on top of an LLM client.
func NewEngine(client llm.Client) *Engine {
	return &Engine{client: client}
}

// Extract sends the description to the language model and parses the
// response into an OfferDraftParams. The response is fence-stripped, then
// schema-checked: offer_type and value are required, everything else is
// optional and defaulted at the preview boundary.
func (e *Engine) Extract(ctx context.Context, description string) (*types.OfferDraftParams, error) {
	if strings.TrimSpace(description) == "" {
		return nil, &ExtractionError{Message: "description is empty"}
	}

	system := prompts.MustGet("extraction.json", "extract-offer-params")

	responseText, err := e.client.GenerateJSON(ctx, system, description, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "LLM call failed", Cause: err}
	}

	// The client already strips fences; strip again so raw fakes and future
	// providers behave the same. Stripping is idempotent.
	responseText = llm.CleanJSONBlock(responseText)

	var params types.OfferDraftParams
	if err := json.Unmarshal([]byte(responseText), &params); err != nil {
		return nil, &ExtractionError{Message: "response is not valid JSON", Cause: err}
	}

	if err := schemas.ValidateBytes(schemas.OfferDraftSchema, []byte(responseText)); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return nil, &ExtractionError{Message: "schema unavailable", Cause: err}
		}
		return nil, &ExtractionError{Message: "response missing required fields", Cause: err}
	}

	return &params, nil
}
