package http

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Response struct {
	Proto      string
	StatusCode int
	Status     string
	Reason     string
	URL        string
	Headers    Headers
	Body       []byte
	Duration   time.Duration
}

// FormatVersion renders a protocol version as "major.minor", e.g. 1, 1 -> "1.1".
func FormatVersion(major, minor int) string {
	return fmt.Sprintf("%d.%d", major, minor)
}

// ReasonPhrase extracts the reason phrase from a status line such as
// "404 Not Found". The standard text for the code is used when the server
// sent none.
func ReasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason == "" {
		return http.StatusText(code)
	}
	return reason
}

// orderedHeaders flattens a header map into a list sorted by canonical key.
// Multiple values of one key are joined with ", ".
func orderedHeaders(h http.Header) Headers {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Headers, 0, len(keys))
	for _, k := range keys {
		out = append(out, Header{Key: k, Value: strings.Join(h[k], ", ")})
	}
	return out
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

func (r *Response) ContentType() string {
	return r.Header(HeaderContentType)
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), MIMEApplicationJSON)
}

func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// IsError reports whether the status must be handled as a failed request.
func (r *Response) IsError() bool {
	return r.IsClientError() || r.IsServerError()
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
