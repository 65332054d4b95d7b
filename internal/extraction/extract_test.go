package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/offer-dashboard/internal/llm"
)

// fakeClient returns a canned response (or error) for every call.
type fakeClient struct {
	response string
	err      error
	lastUser string
}

func (f *fakeClient) GenerateJSON(_ context.Context, _, user string, _ llm.ModelTier) (string, error) {
	f.lastUser = user
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                  { return nil }

const cashbackResponse = `{
	"offer_type": "cashback",
	"value": 20,
	"min_spend": 500,
	"duration_days": 7,
	"offer_name": "Big Spender Bonus",
	"max_redemptions": 10,
	"description": "Give $20 cashback for first 10 customers spending $500+"
}`

func TestExtract_CanonicalDescription(t *testing.T) {
	client := &fakeClient{response: cashbackResponse}
	engine := NewEngine(client)

	params, err := engine.Extract(context.Background(),
		"Give $20 cashback for first 10 customers spending $500+ valid for 7 days")
	require.NoError(t, err)

	assert.Equal(t, "cashback", params.OfferType)
	assert.Equal(t, 20.0, params.Value)
	assert.Equal(t, 500.0, params.MinSpend)
	assert.Equal(t, 7, params.DurationDays)
	require.NotNil(t, params.MaxRedemptions)
	assert.Equal(t, 10, *params.MaxRedemptions)
}

func TestExtract_FencedResponse(t *testing.T) {
	client := &fakeClient{response: "```json\n" + cashbackResponse + "\n```"}
	engine := NewEngine(client)

	params, err := engine.Extract(context.Background(), "cashback offer")
	require.NoError(t, err)
	assert.Equal(t, "cashback", params.OfferType)
}

func TestExtract_MissingRequiredFields(t *testing.T) {
	client := &fakeClient{response: `{"offer_name": "Nameless Deal"}`}
	engine := NewEngine(client)

	_, err := engine.Extract(context.Background(), "some offer")

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
}

func TestExtract_InvalidJSON(t *testing.T) {
	client := &fakeClient{response: "Sure! Here is the offer you asked for."}
	engine := NewEngine(client)

	_, err := engine.Extract(context.Background(), "some offer")

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
}

func TestExtract_LLMFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("deadline exceeded")}
	engine := NewEngine(client)

	_, err := engine.Extract(context.Background(), "some offer")

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.ErrorContains(t, err, "LLM call failed")
}

func TestExtract_EmptyDescription(t *testing.T) {
	client := &fakeClient{response: cashbackResponse}
	engine := NewEngine(client)

	_, err := engine.Extract(context.Background(), "   ")

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Empty(t, client.lastUser, "empty description must not reach the LLM")
}

func TestExtract_OptionalFieldsAbsent(t *testing.T) {
	client := &fakeClient{response: `{"offer_type": "free_shipping", "value": 0}`}
	engine := NewEngine(client)

	params, err := engine.Extract(context.Background(), "free shipping on everything")
	require.NoError(t, err)

	assert.Nil(t, params.MaxRedemptions)
	defaults := params.ApplyPreviewDefaults()
	assert.Equal(t, "Special Offer", defaults.OfferName)
	assert.Equal(t, 7, defaults.DurationDays)
	assert.Equal(t, "Unlimited", defaults.RedemptionsDisplay())
}
