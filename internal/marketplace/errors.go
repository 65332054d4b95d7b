package marketplace

import "fmt"

// AuthenticationError represents a failed credential exchange: a non-success
// status from the login endpoint or a response body missing the expected
// nested token fields.
type AuthenticationError struct {
	Status  int
	Message string
	Cause   error
}

func (e *AuthenticationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// OfferFetchError represents a failed pending-offer listing request.
type OfferFetchError struct {
	Status  int
	Message string
	Cause   error
}

func (e *OfferFetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("offer fetch failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("offer fetch failed: %s", e.Message)
}

func (e *OfferFetchError) Unwrap() error {
	return e.Cause
}
