package outcome

import (
	"context"
	"errors"
	"io"
	"net"
	neturl "net/url"

	"github.com/abdul-hamid-achik/hitcall/packages/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindHTTPStatus
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is a classified request failure.
type Error struct {
	Kind    Kind
	Message string

	// Set for KindHTTPStatus only.
	StatusCode int
	Reason     string
	Body       string

	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify maps an error returned by the transport to its reported kind.
// It returns nil for a nil error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return &Error{
			Kind:       KindHTTPStatus,
			Message:    statusErr.Error(),
			StatusCode: statusErr.Response.StatusCode,
			Reason:     statusErr.Response.Reason,
			Body:       statusErr.Response.BodyString(),
			Err:        err,
		}
	}

	if IsNetworkError(err) {
		return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
	}

	return &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
}

// IsNetworkError reports whether err happened while reaching the server or
// reading its answer: URL, DNS, connect, TLS, timeout, redirect-limit and
// truncated-body failures.
func IsNetworkError(err error) bool {
	var (
		urlErr *neturl.Error
		netErr net.Error
	)

	switch {
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return true
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, http.ErrTooManyRedirects):
		return true
	}
	return false
}
