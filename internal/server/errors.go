// Package server provides the HTTP REST API for the offer dashboard.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/offer-dashboard/internal/dashboard"
	"github.com/jonathan/offer-dashboard/internal/extraction"
	"github.com/jonathan/offer-dashboard/internal/marketplace"
)

// HTTPStatus returns the appropriate HTTP status code for an action error.
// Every action failure is non-fatal; the status only signals which side of
// the conversation went wrong.
func HTTPStatus(err error) int {
	var (
		authErr    *marketplace.AuthenticationError
		fetchErr   *marketplace.OfferFetchError
		extractErr *extraction.ExtractionError
	)

	switch {
	case errors.Is(err, dashboard.ErrEmptyDescription):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrNoDraft), errors.Is(err, dashboard.ErrNoOffersLoaded):
		return http.StatusConflict
	case errors.Is(err, dashboard.ErrNoCredentials):
		return http.StatusPreconditionFailed
	case errors.As(err, &extractErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &authErr), errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
