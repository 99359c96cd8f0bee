package upstream

import (
	"errors"
	"fmt"
)

// ErrMissingRecord means a create succeeded at the HTTP level but carried no team record.
var ErrMissingRecord = errors.New("response missing team record")

// APIError captures a non-2xx answer from the league API.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}
	return fmt.Sprintf("upstream %s: %s (status=%d)", e.Operation, msg, e.StatusCode)
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
