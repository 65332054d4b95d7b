package offers

import (
	"testing"
	"time"

	"github.com/jonathan/offer-dashboard/internal/types"
)

func offerWithBudget(id string, budget float64) types.Offer {
	return types.Offer{ID: types.OfferID(id), Budget: &budget}
}

func offerWithExpiry(id, to string) types.Offer {
	return types.Offer{ID: types.OfferID(id), Duration: &types.Duration{To: to}}
}

func ids(offers []types.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, string(o.ID))
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterAboveValue_Threshold(t *testing.T) {
	offers := []types.Offer{
		offerWithBudget("a", 10),
		offerWithBudget("b", 50),
		offerWithBudget("c", 50.01),
		offerWithBudget("d", 100),
		{ID: "e"}, // absent budget counts as 0
	}

	got := FilterAboveValue(offers, 50)
	if !equalIDs(ids(got), []string{"c", "d"}) {
		t.Errorf("FilterAboveValue(50) = %v, want [c d]", ids(got))
	}
}

func TestFilterExpiringWithinDays_Boundary(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	format := func(d time.Duration) string { return now.Add(d).Format(ExpiryLayout) }

	offers := []types.Offer{
		offerWithExpiry("in7", format(7*24*time.Hour)),
		offerWithExpiry("in8", format(8*24*time.Hour)),
		offerWithExpiry("open", types.NoEndDate),
		offerWithExpiry("bad", "next tuesday"),
		{ID: "none"},
	}

	got := FilterExpiringWithinDays(offers, 7, now)
	if !equalIDs(ids(got), []string{"in7"}) {
		t.Errorf("FilterExpiringWithinDays(7) = %v, want [in7]", ids(got))
	}
}

func TestSortByExpiry_Ordering(t *testing.T) {
	offers := []types.Offer{
		offerWithExpiry("open", types.NoEndDate),
		offerWithExpiry("later", "2026-12-01 00:00"),
		offerWithExpiry("soon", "2026-09-01 00:00"),
		{ID: "none"},
	}

	got := SortByExpiry(offers)
	want := []string{"soon", "later", "open", "none"}
	if !equalIDs(ids(got), want) {
		t.Errorf("SortByExpiry() = %v, want %v", ids(got), want)
	}

	// Input order untouched
	if string(offers[0].ID) != "open" {
		t.Error("SortByExpiry mutated its input")
	}
}

func TestSortByExpiry_IdempotentAndStable(t *testing.T) {
	offers := []types.Offer{
		offerWithExpiry("a", "2026-09-01 00:00"),
		offerWithExpiry("b", "2026-09-01 00:00"), // same key: order must hold
		offerWithExpiry("c", "2026-10-01 00:00"),
		offerWithExpiry("open1", types.NoEndDate),
		offerWithExpiry("open2", types.NoEndDate),
	}

	once := SortByExpiry(offers)
	twice := SortByExpiry(once)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("sort not idempotent: %v then %v", ids(once), ids(twice))
	}
	if !equalIDs(ids(once), []string{"a", "b", "c", "open1", "open2"}) {
		t.Errorf("sort order = %v", ids(once))
	}
}

func TestSortByExpiry_MalformedTimestampDoesNotPanic(t *testing.T) {
	offers := []types.Offer{
		offerWithExpiry("bad", "9999-12-31"),
		offerWithExpiry("good", "2026-09-01 00:00"),
	}

	got := SortByExpiry(offers)
	if !equalIDs(ids(got), []string{"good", "bad"}) {
		t.Errorf("SortByExpiry() = %v, want malformed record last", ids(got))
	}
}

func TestExpiresAt(t *testing.T) {
	tests := []struct {
		name    string
		offer   types.Offer
		ok      bool
		wantErr bool
	}{
		{name: "valid", offer: offerWithExpiry("a", "2026-09-01 18:30"), ok: true},
		{name: "sentinel", offer: offerWithExpiry("b", types.NoEndDate)},
		{name: "no duration", offer: types.Offer{ID: "c"}},
		{name: "malformed", offer: offerWithExpiry("d", "soon"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := ExpiresAt(tt.offer)
			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var parseErr *TimestampParseError
				if !asTimestampErr(err, &parseErr) {
					t.Errorf("error type = %T, want TimestampParseError", err)
				}
			}
		})
	}
}

func asTimestampErr(err error, target **TimestampParseError) bool {
	te, ok := err.(*TimestampParseError)
	if ok {
		*target = te
	}
	return ok
}

func TestDaysUntil_Floor(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{name: "exactly 7 days", d: 7 * 24 * time.Hour, want: 7},
		{name: "7.5 days floors to 7", d: 7*24*time.Hour + 12*time.Hour, want: 7},
		{name: "half a day floors to 0", d: 12 * time.Hour, want: 0},
		{name: "expired floors down", d: -12 * time.Hour, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(now.Add(tt.d), now); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}
