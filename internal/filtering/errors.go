package filtering

import "fmt"

// FilterTransportError represents a failed LLM filter call: transport,
// parse, or a response missing the matching_ids field. Filtering always
// fails open, so this error rides alongside the unfiltered collection.
type FilterTransportError struct {
	Message string
	Cause   error
}

func (e *FilterTransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("offer filtering failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("offer filtering failed: %s", e.Message)
}

func (e *FilterTransportError) Unwrap() error {
	return e.Cause
}
