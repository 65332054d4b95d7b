package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/offer-dashboard/internal/offers"
	"github.com/jonathan/offer-dashboard/internal/types"
)

// Errors returned to the action trigger. They are advisory: every failure
// leaves the previous valid state in place.
var (
	ErrEmptyDescription = fmt.Errorf("offer description is empty")
	ErrNoDraft          = fmt.Errorf("no previewed draft to publish")
	ErrNoOffersLoaded   = fmt.Errorf("no offers loaded, refresh first")
	ErrNoCredentials    = fmt.Errorf("marketplace credentials are not configured")
)

// Generate runs the extraction engine over a description. On success the
// draft moves to Previewed, replacing any previous params wholesale. On
// failure the previous draft (or empty state) is kept and the error is
// recorded as a notice.
func (d *Dashboard) Generate(ctx context.Context, description string) error {
	if strings.TrimSpace(description) == "" {
		d.notify("Describe the offer before generating.")
		return ErrEmptyDescription
	}

	previous := d.draftState
	d.draftState = DraftGenerating

	params, err := d.extractor.Extract(ctx, description)
	if err != nil {
		// Restore whatever state the draft was in, so a published draft is
		// still reported as published alongside its params.
		d.draftState = previous
		d.notify(fmt.Sprintf("Error generating offer: %v", err))
		return err
	}

	d.params = params
	d.draftState = DraftPreviewed
	return nil
}

// Publish acknowledges the previewed draft. No remote call happens here; the
// marketplace publish integration is a deliberate extension point.
func (d *Dashboard) Publish() error {
	if d.draftState != DraftPreviewed {
		d.notify("Generate an offer before publishing.")
		return ErrNoDraft
	}
	d.draftState = DraftPublished
	d.notify("Offer published successfully!")
	return nil
}

// Refresh re-authenticates, fetches the pending collection, and replaces the
// held one wholesale, clearing any active filter. A failed fetch keeps the
// previous collection and state.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if !d.creds.Configured() {
		d.notify("Marketplace credentials are not configured. Set LMS_EMAIL and LMS_PASSWORD.")
		return ErrNoCredentials
	}

	fetched, err := d.source.FetchPendingOffersForUser(ctx, d.creds)
	if err != nil {
		d.notify(fmt.Sprintf("Failed to fetch offers: %v", err))
		return err
	}

	d.pending = fetched
	d.filtered = nil
	d.browseState = BrowseLoaded

	// Malformed expiry timestamps are reported once at load time; the offers
	// themselves stay in the collection and sort last.
	for _, o := range fetched {
		if _, _, err := offers.ExpiresAt(o); err != nil {
			d.notify(fmt.Sprintf("Some offers have malformed expiry timestamps: %v", err))
			break
		}
	}
	return nil
}

// Search narrows the full collection with a natural-language query. A filter
// is always computed from the base collection. The engine fails open, so a
// transport failure leaves the view unfiltered with a notice.
func (d *Dashboard) Search(ctx context.Context, query string) error {
	if d.browseState == BrowseUnloaded {
		d.notify("No offers loaded. Refresh first.")
		return ErrNoOffersLoaded
	}

	result, err := d.filterer.Filter(ctx, query, d.pending)
	if err != nil {
		// Fail open: result is the unfiltered collection.
		d.filtered = nil
		d.browseState = BrowseLoaded
		d.notify(fmt.Sprintf("LLM filtering error: %v", err))
		return err
	}

	d.filtered = result
	d.browseState = BrowseFiltered
	return nil
}

// FilterExpiringSoon applies the deterministic expiring-within-days quick
// filter to the base collection.
func (d *Dashboard) FilterExpiringSoon(days int, now time.Time) error {
	if d.browseState == BrowseUnloaded {
		d.notify("No offers loaded. Refresh first.")
		return ErrNoOffersLoaded
	}

	d.filtered = offers.FilterExpiringWithinDays(d.pending, days, now)
	d.browseState = BrowseFiltered
	return nil
}

// FilterHighValue applies the deterministic budget-threshold quick filter to
// the base collection.
func (d *Dashboard) FilterHighValue(threshold float64) error {
	if d.browseState == BrowseUnloaded {
		d.notify("No offers loaded. Refresh first.")
		return ErrNoOffersLoaded
	}

	d.filtered = offers.FilterAboveValue(d.pending, threshold)
	d.browseState = BrowseFiltered
	return nil
}

// SortedView returns the current view in ascending expiry order; offers
// without a parseable expiry land at the end.
func (d *Dashboard) SortedView() []types.Offer {
	return offers.SortByExpiry(d.View())
}
