package client

import (
	"errors"
	"fmt"
)

// UpstreamError carries the HTTP status of a failed upstream call so the
// pipeline can report it without retrying.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.Endpoint, e.StatusCode)
}

// StatusOf extracts the upstream HTTP status from an error chain, or 0.
func StatusOf(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}
