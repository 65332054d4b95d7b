// Package offers provides the deterministic, non-LLM side of offer browsing:
// expiry parsing, quick filters, chronological sorting, and display
// decoration of remote offer records.
package offers

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/offer-dashboard/internal/types"
)

// ExpiryLayout is the timestamp format the marketplace uses for offer
// validity windows.
const ExpiryLayout = "2006-01-02 15:04"

// TimestampParseError represents a malformed expiry string on a remote
// offer. It must never propagate out of a filter or sort; the offending
// record is skipped or sentineled instead.
type TimestampParseError struct {
	OfferID types.OfferID
	Value   string
	Cause   error
}

func (e *TimestampParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad expiry %q on offer %s: %v", e.Value, e.OfferID, e.Cause)
	}
	return fmt.Sprintf("bad expiry %q on offer %s", e.Value, e.OfferID)
}

func (e *TimestampParseError) Unwrap() error {
	return e.Cause
}

// ExpiresAt parses an offer's expiry timestamp. ok is false when the offer
// has no end date (missing duration or the "No end date" sentinel). A
// malformed timestamp yields ok=false and a TimestampParseError.
func ExpiresAt(o types.Offer) (expiry time.Time, ok bool, err error) {
	raw := o.Expiry()
	if raw == "" || raw == types.NoEndDate {
		return time.Time{}, false, nil
	}

	expiry, parseErr := time.Parse(ExpiryLayout, raw)
	if parseErr != nil {
		return time.Time{}, false, &TimestampParseError{OfferID: o.ID, Value: raw, Cause: parseErr}
	}
	return expiry, true, nil
}

// DaysUntil returns the whole-day difference between now and the expiry,
// floored (an offer expiring in 36 hours is 1 day out).
func DaysUntil(expiry, now time.Time) int {
	return int(math.Floor(expiry.Sub(now).Hours() / 24))
}
