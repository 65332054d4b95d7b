// Package dashboard holds the offer-dashboard application state and the
// lifecycle rules for mutating it. All state is in-memory for the session
// lifetime; one action runs to completion before the next is accepted, so
// the Dashboard itself needs no locking.
package dashboard

import (
	"context"

	"github.com/jonathan/offer-dashboard/internal/types"
)

// DraftState tracks an offer-under-construction.
type DraftState string

// Draft lifecycle: Empty → Generating → Previewed → Published. A failed
// generation falls back to the previous state; a repeat generation replaces
// the previewed params wholesale.
const (
	DraftEmpty      DraftState = "empty"
	DraftGenerating DraftState = "generating"
	DraftPreviewed  DraftState = "previewed"
	DraftPublished  DraftState = "published"
)

// BrowseState tracks the fetched offer collection.
type BrowseState string

// Browse lifecycle: Unloaded → Loaded → (Loaded | Filtered). Refresh always
// replaces the full collection and clears any active filter; every filter is
// computed from the full base collection, never from a previous subset.
const (
	BrowseUnloaded BrowseState = "unloaded"
	BrowseLoaded   BrowseState = "loaded"
	BrowseFiltered BrowseState = "filtered"
)

// Extractor turns a free-text description into draft parameters.
type Extractor interface {
	Extract(ctx context.Context, description string) (*types.OfferDraftParams, error)
}

// Filterer narrows a collection with a natural-language query. It fails
// open: on error the returned slice is the input collection.
type Filterer interface {
	Filter(ctx context.Context, query string, offers []types.Offer) ([]types.Offer, error)
}

// OfferSource fetches the pending offer collection, re-authenticating on
// every call.
type OfferSource interface {
	FetchPendingOffersForUser(ctx context.Context, creds types.Credentials) ([]types.Offer, error)
}

// Dashboard is the process-wide application state: the draft being authored
// on one side, the browsed offer collection on the other. The two sides
// share no identifiers.
type Dashboard struct {
	extractor Extractor
	filterer  Filterer
	source    OfferSource
	creds     types.Credentials

	draftState DraftState
	params     *types.OfferDraftParams

	browseState BrowseState
	pending     []types.Offer
	filtered    []types.Offer

	notices []string
}

// New creates a dashboard in the Empty/Unloaded state.
func New(extractor Extractor, filterer Filterer, source OfferSource, creds types.Credentials) *Dashboard {
	return &Dashboard{
		extractor:   extractor,
		filterer:    filterer,
		source:      source,
		creds:       creds,
		draftState:  DraftEmpty,
		browseState: BrowseUnloaded,
	}
}

// DraftState returns the current draft lifecycle state.
func (d *Dashboard) DraftState() DraftState { return d.draftState }

// BrowseState returns the current browsing lifecycle state.
func (d *Dashboard) BrowseState() BrowseState { return d.browseState }

// Draft returns the current draft params, nil before the first successful
// generation.
func (d *Dashboard) Draft() *types.OfferDraftParams { return d.params }

// Pending returns the full fetched collection, nil while Unloaded.
func (d *Dashboard) Pending() []types.Offer { return d.pending }

// View returns the collection the presentation layer should render: the
// filtered subset when a filter is active, otherwise the full collection.
func (d *Dashboard) View() []types.Offer {
	if d.browseState == BrowseFiltered {
		return d.filtered
	}
	return d.pending
}

// Notices drains accumulated non-fatal messages for the user.
func (d *Dashboard) Notices() []string {
	out := d.notices
	d.notices = nil
	return out
}

func (d *Dashboard) notify(msg string) {
	d.notices = append(d.notices, msg)
}
