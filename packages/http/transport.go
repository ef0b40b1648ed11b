package http

import (
	"errors"
	"mime"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/hitcall/packages/logger"
)

// ErrNilRequest indicates that a round-tripper was handed a nil request.
var ErrNilRequest = errors.New("request is nil")

const userAgentHeader = "User-Agent"

// LogTransport dumps each request and response at debug level.
type LogTransport struct {
	next         http.RoundTripper
	maxLogLength int
}

// NewLogTransport wraps next. A non-positive maxLogLength uses DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength int) http.RoundTripper {
	if maxLogLength <= 0 {
		maxLogLength = DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dumpRequest(req)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Debugf(ctx, "request failed: %s %s | error: %v", req.Method, req.URL.String(), err)
		return nil, err
	}

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, t.dumpResponse(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err.Error()
	}
	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	dump, err := httputil.DumpResponse(resp, isTextContentType(resp.Header.Get(HeaderContentType)))
	if err != nil {
		return err.Error()
	}
	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if len(data) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}
	return string(data)
}

func isTextContentType(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case strings.HasSuffix(mediaType, "+json"), strings.HasSuffix(mediaType, "+xml"):
		return true
	}

	switch mediaType {
	case MIMEApplicationJSON, "application/xml", "application/javascript", "application/x-www-form-urlencoded":
		return true
	}
	return false
}

// UserAgentInjector sets a User-Agent on requests that do not carry one.
type UserAgentInjector struct {
	next      http.RoundTripper
	userAgent string
}

func NewUserAgentInjector(next http.RoundTripper, userAgent string) http.RoundTripper {
	return &UserAgentInjector{
		next:      next,
		userAgent: userAgent,
	}
}

func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(userAgentHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(userAgentHeader, t.userAgent)
	}

	return t.next.RoundTrip(req)
}
