package types

import (
	"encoding/json"
	"testing"
)

func TestOfferID_UnmarshalMixedTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want OfferID
	}{
		{"numeric id", `{"id": 42}`, "42"},
		{"string id", `{"id": "abc-7"}`, "abc-7"},
		{"numeric string id", `{"id": "42"}`, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Offer
			if err := json.Unmarshal([]byte(tt.raw), &o); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if o.ID != tt.want {
				t.Errorf("ID = %q, want %q", o.ID, tt.want)
			}
		})
	}
}

func TestOfferID_MarshalPreservesShape(t *testing.T) {
	numeric, err := json.Marshal(OfferID("42"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(numeric) != "42" {
		t.Errorf("numeric-looking id = %s, want 42", numeric)
	}

	str, err := json.Marshal(OfferID("abc-7"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(str) != `"abc-7"` {
		t.Errorf("string id = %s, want \"abc-7\"", str)
	}
}

func TestOfferID_MarshalParseableButNonCanonical(t *testing.T) {
	// These parse as integers but are not valid JSON numbers; emitting them
	// unquoted would make the whole enclosing document unencodable.
	tests := []struct {
		id   OfferID
		want string
	}{
		{"007", `"007"`},
		{"+5", `"+5"`},
		{"-0", `"-0"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			got, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("marshal(%q) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}

	var o Offer
	if err := json.Unmarshal([]byte(`{"id":"007"}`), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := json.Marshal(o); err != nil {
		t.Errorf("offer with leading-zero id must stay encodable: %v", err)
	}
}

func TestOffer_PrimaryMerchant(t *testing.T) {
	o := Offer{Merchants: []Merchant{{Name: "First"}, {Name: "Second"}}}
	if got := o.PrimaryMerchant(); got.Name != "First" {
		t.Errorf("PrimaryMerchant = %+v, want First", got)
	}

	var empty Offer
	if got := empty.PrimaryMerchant(); got != (Merchant{}) {
		t.Errorf("PrimaryMerchant on empty offer = %+v, want zero", got)
	}
}

func TestOffer_Expiry(t *testing.T) {
	tests := []struct {
		name  string
		offer Offer
		want  string
	}{
		{"with end date", Offer{Duration: &Duration{To: "2026-09-01 00:00"}}, "2026-09-01 00:00"},
		{"no duration", Offer{}, ""},
		{"sentinel", Offer{Duration: &Duration{To: NoEndDate}}, NoEndDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.offer.Expiry(); got != tt.want {
				t.Errorf("Expiry() = %q, want %q", got, tt.want)
			}
		})
	}
}
