package httputils

import (
	"errors"
	"net/http"
)

// HTTPError carries a status code and a client-facing message. Err holds the
// underlying cause for logs; it is never written to the response.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// HandleError writes err as a JSON error. Anything that is not an HTTPError
// is reported as a generic 500 so internal details stay in the logs.
func HandleError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		JSONError(w, httpErr.Code, httpErr.Message)
	} else {
		JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
