package http

import (
	"errors"
	"fmt"
)

// ErrTooManyRedirects is returned when the redirect limit is exceeded.
var ErrTooManyRedirects = errors.New("too many redirects")

// StatusError is returned by Client.Do when the server answered with a 4xx or
// 5xx status. The full response, body included, is attached.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	kind := "Client Error"
	if e.Response.IsServerError() {
		kind = "Server Error"
	}
	return fmt.Sprintf("%d %s: %s for url: %s", e.Response.StatusCode, kind, e.Response.Reason, e.Response.URL)
}
