package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds the whole exchange: connect, send and read.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxRedirects is the number of redirects followed before giving up
	DefaultMaxRedirects = 30
	// DefaultMaxLogLength caps the size of debug wire dumps
	DefaultMaxLogLength = 64 * 1024
)

type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	followRedirect bool
	maxRedirects   int
	validateSSL    bool
	proxyURL       string
	userAgent      string
	maxLogLength   int
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:        DefaultTimeout,
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		validateSSL:    true,
		maxLogLength:   DefaultMaxLogLength,
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{}

	// Configure TLS verification
	if !c.validateSSL {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	// Configure proxy if specified
	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	var roundTripper http.RoundTripper = NewLogTransport(transport, c.maxLogLength)
	if c.userAgent != "" {
		roundTripper = NewUserAgentInjector(roundTripper, c.userAgent)
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !c.followRedirect {
			return http.ErrUseLastResponse
		}
		if len(via) >= c.maxRedirects {
			return fmt.Errorf("%w: exceeded %d", ErrTooManyRedirects, c.maxRedirects)
		}
		return nil
	}

	c.httpClient = &http.Client{
		Transport:     roundTripper,
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) {
		c.followRedirect = follow
	}
}

func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

// WithValidateSSL enables or disables SSL certificate validation
func WithValidateSSL(validate bool) ClientOption {
	return func(c *Client) {
		c.validateSSL = validate
	}
}

// WithProxy sets the proxy URL for all requests
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithUserAgent sets the User-Agent sent when the request has none
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// Timeout returns the total timeout applied to each request.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Do sends req and reads the whole response. A 4xx or 5xx answer is returned
// as a *StatusError carrying the response; transport failures are returned
// unchanged.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if encoded, ok := req.Body.Encoded(); ok {
		body = strings.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for _, h := range req.EffectiveHeaders() {
		if strings.EqualFold(h.Key, "Host") {
			httpReq.Host = h.Value
			continue
		}
		httpReq.Header.Set(h.Key, h.Value)
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		Proto:      FormatVersion(httpResp.ProtoMajor, httpResp.ProtoMinor),
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Reason:     ReasonPhrase(httpResp.StatusCode, httpResp.Status),
		URL:        req.URL,
		Headers:    orderedHeaders(httpResp.Header),
		Body:       respBody,
		Duration:   duration,
	}
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		resp.URL = httpResp.Request.URL.String()
	}

	if resp.IsError() {
		return nil, &StatusError{Response: resp}
	}

	return resp, nil
}
