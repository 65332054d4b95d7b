package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/offer-dashboard/internal/dashboard"
	"github.com/jonathan/offer-dashboard/internal/offers"
	"github.com/jonathan/offer-dashboard/internal/types"
)

// GenerateRequest asks for a draft extraction from a free-text description.
type GenerateRequest struct {
	Description string `json:"description"`
}

// SearchRequest carries a natural-language offer query.
type SearchRequest struct {
	Query string `json:"query"`
}

// ExpiringFilterRequest configures the expiring-soon quick filter.
type ExpiringFilterRequest struct {
	Days int `json:"days"`
}

// HighValueFilterRequest configures the budget-threshold quick filter.
type HighValueFilterRequest struct {
	Threshold float64 `json:"threshold"`
}

// Defaults for the quick filters, matching the dashboard's one-click buttons.
const (
	DefaultExpiringDays       = 7
	DefaultHighValueThreshold = 50.0
)

// DraftResponse returns both the raw extracted params and the
// defaults-applied preview the UI renders.
type DraftResponse struct {
	State   dashboard.DraftState    `json:"state"`
	Params  *types.OfferDraftParams `json:"params,omitempty"`
	Preview *types.OfferDraftParams `json:"preview,omitempty"`
	Notices []string                `json:"notices,omitempty"`
}

// OffersResponse returns the current view, sorted by expiry and decorated
// for display.
type OffersResponse struct {
	State    dashboard.BrowseState `json:"state"`
	Offers   []offers.Card         `json:"offers"`
	Count    int                   `json:"count"`
	Filtered bool                  `json:"filtered"`
	Notices  []string              `json:"notices,omitempty"`
}

// handleGenerate runs the extraction engine over a description.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.dash.Generate(r.Context(), req.Description); err != nil {
		s.dash.Notices() // drain; the error message carries the detail
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.draftResponse())
}

// handlePublish acknowledges the previewed draft. Publishing performs no
// remote call; this is the marketplace-integration extension point.
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if err := s.dash.Publish(); err != nil {
		s.dash.Notices()
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.draftResponse())
}

// handleRefresh replaces the offer collection wholesale. A failed fetch
// keeps the previous collection and reports the failure.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.dash.Refresh(r.Context()); err != nil {
		s.dash.Notices()
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.offersResponse())
}

// handleSearch narrows the collection with a natural-language query. The
// filter engine fails open, so a transport failure still returns the full
// view together with the notice.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Query == "" {
		s.errorResponse(w, http.StatusBadRequest, "query is required")
		return
	}

	if err := s.dash.Search(r.Context(), req.Query); err != nil {
		if HTTPStatus(err) == http.StatusConflict {
			s.dash.Notices()
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		// Fail-open path: the view is intact, surface the notice with it.
		s.jsonResponse(w, http.StatusOK, s.offersResponse())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.offersResponse())
}

// handleFilterExpiring applies the deterministic expiring-soon filter.
func (s *Server) handleFilterExpiring(w http.ResponseWriter, r *http.Request) {
	req := ExpiringFilterRequest{Days: DefaultExpiringDays}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.Days <= 0 {
		req.Days = DefaultExpiringDays
	}

	if err := s.dash.FilterExpiringSoon(req.Days, time.Now()); err != nil {
		s.dash.Notices()
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.offersResponse())
}

// handleFilterHighValue applies the deterministic budget-threshold filter.
func (s *Server) handleFilterHighValue(w http.ResponseWriter, r *http.Request) {
	req := HighValueFilterRequest{Threshold: DefaultHighValueThreshold}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := s.dash.FilterHighValue(req.Threshold); err != nil {
		s.dash.Notices()
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.offersResponse())
}

// handleListOffers returns the current view without mutating anything.
func (s *Server) handleListOffers(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.offersResponse())
}

func (s *Server) draftResponse() DraftResponse {
	resp := DraftResponse{
		State:   s.dash.DraftState(),
		Params:  s.dash.Draft(),
		Notices: s.dash.Notices(),
	}
	if resp.Params != nil {
		preview := resp.Params.ApplyPreviewDefaults()
		resp.Preview = &preview
	}
	return resp
}

func (s *Server) offersResponse() OffersResponse {
	view := s.dash.SortedView()
	return OffersResponse{
		State:    s.dash.BrowseState(),
		Offers:   offers.Cards(view, time.Now()),
		Count:    len(view),
		Filtered: s.dash.BrowseState() == dashboard.BrowseFiltered,
		Notices:  s.dash.Notices(),
	}
}
