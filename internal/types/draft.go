package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Offer type values the extraction prompt is allowed to produce.
const (
	OfferTypeCashback     = "cashback"
	OfferTypeDiscount     = "discount"
	OfferTypeFreeShipping = "free_shipping"
)

// Value type values for OfferDraftParams.ValueType.
const (
	ValueTypeFlat       = "flat"
	ValueTypePercentage = "percentage"
)

// Preview defaults applied to fields the LLM left out.
const (
	DefaultOfferName    = "Special Offer"
	DefaultDurationDays = 7
)

// OfferDraftParams is a locally-held, not-yet-published offer parameter
// record produced by text extraction. It shares no identifiers with Offer.
type OfferDraftParams struct {
	OfferType      string  `json:"offer_type" validate:"required,oneof=cashback discount free_shipping"`
	Value          float64 `json:"value" validate:"gte=0"`
	ValueType      string  `json:"value_type,omitempty" validate:"omitempty,oneof=flat percentage"`
	MinSpend       float64 `json:"min_spend,omitempty" validate:"gte=0"`
	DurationDays   int     `json:"duration_days,omitempty" validate:"omitempty,gte=1"`
	OfferName      string  `json:"offer_name,omitempty"`
	MaxRedemptions *int    `json:"max_redemptions,omitempty" validate:"omitempty,gte=1"`
	Description    string  `json:"description,omitempty"`
}

// Validate validates the OfferDraftParams using the validator.
func (p *OfferDraftParams) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ApplyPreviewDefaults fills missing optional fields with the values the
// preview renderer expects. Returns a copy; the extracted record itself is
// never mutated.
func (p OfferDraftParams) ApplyPreviewDefaults() OfferDraftParams {
	if p.OfferName == "" {
		p.OfferName = DefaultOfferName
	}
	if p.DurationDays == 0 {
		p.DurationDays = DefaultDurationDays
	}
	return p
}

// ValueDisplay renders the offer value as a percentage or currency amount.
func (p OfferDraftParams) ValueDisplay() string {
	if p.ValueType == ValueTypePercentage {
		return fmt.Sprintf("%g%%", p.Value)
	}
	return fmt.Sprintf("$%.2f", p.Value)
}

// RedemptionsDisplay renders the redemption cap, with "Unlimited" standing in
// for an absent cap.
func (p OfferDraftParams) RedemptionsDisplay() string {
	if p.MaxRedemptions == nil {
		return "Unlimited"
	}
	return fmt.Sprintf("%d", *p.MaxRedemptions)
}

// ValidUntil computes the end of the draft's validity window relative to now.
func (p OfferDraftParams) ValidUntil(now time.Time) time.Time {
	days := p.DurationDays
	if days == 0 {
		days = DefaultDurationDays
	}
	return now.AddDate(0, 0, days)
}
