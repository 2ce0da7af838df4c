package external

import (
	"errors"
	"fmt"
)

// ErrInvalidCall is returned when Alpha Vantage rejects the call itself,
// which in practice means an unknown ticker.
var ErrInvalidCall = errors.New("invalid API call")

// ErrMalformedResponse is returned when the upstream body is not a JSON object.
var ErrMalformedResponse = errors.New("malformed upstream response")

// APIError carries any other "Error Message" the upstream reported.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error: %s", e.Message)
}
