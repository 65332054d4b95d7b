package offers

import (
	"sort"
	"time"

	"github.com/jonathan/offer-dashboard/internal/types"
)

// FilterExpiringWithinDays keeps offers whose expiry is at most days whole
// days away (inclusive). Offers with a missing, sentinel, or malformed
// expiry are excluded.
func FilterExpiringWithinDays(offers []types.Offer, days int, now time.Time) []types.Offer {
	result := make([]types.Offer, 0, len(offers))
	for _, o := range offers {
		expiry, ok, err := ExpiresAt(o)
		if err != nil || !ok {
			continue
		}
		if DaysUntil(expiry, now) <= days {
			result = append(result, o)
		}
	}
	return result
}

// FilterAboveValue keeps offers whose budget is strictly greater than
// threshold. An absent budget counts as 0.
func FilterAboveValue(offers []types.Offer, threshold float64) []types.Offer {
	result := make([]types.Offer, 0, len(offers))
	for _, o := range offers {
		budget := 0.0
		if o.Budget != nil {
			budget = *o.Budget
		}
		if budget > threshold {
			result = append(result, o)
		}
	}
	return result
}

// SortByExpiry returns the offers in ascending expiry order. Offers with a
// missing or malformed expiry sort after all dated offers; a bad timestamp
// on one record must not take down the whole view.
func SortByExpiry(offers []types.Offer) []types.Offer {
	sorted := make([]types.Offer, len(offers))
	copy(sorted, offers)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iOK := expiryKey(sorted[i])
		tj, jOK := expiryKey(sorted[j])
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return ti.Before(tj)
	})
	return sorted
}

// expiryKey returns the sort key for an offer; ok is false for records that
// belong at the end (no expiry, or one we could not parse).
func expiryKey(o types.Offer) (time.Time, bool) {
	expiry, ok, err := ExpiresAt(o)
	if err != nil || !ok {
		return time.Time{}, false
	}
	return expiry, true
}
