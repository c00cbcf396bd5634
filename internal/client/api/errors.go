package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx transport status. It belongs to the
// transport failure channel and is never normalized into the envelope's
// code/msg vocabulary.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized reports whether err is a 401 transport failure.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized
}
