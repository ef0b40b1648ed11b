package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdul-hamid-achik/hitcall/packages/jsonvalue"
	"github.com/abdul-hamid-achik/hitcall/packages/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func jsonvalueObject() *jsonvalue.Value {
	return jsonvalue.Object(jsonvalue.Member{Key: "k", Value: jsonvalue.String("v")})
}

func TestUserAgentInjector_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hitcall/1.0", r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	injector := NewUserAgentInjector(http.DefaultTransport, "hitcall/1.0")

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Del("User-Agent")

	resp, err := injector.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, req.Header.Get("User-Agent"), "original request must not be modified")
}

func TestUserAgentInjector_NilRequest(t *testing.T) {
	_, err := NewUserAgentInjector(http.DefaultTransport, "x").RoundTrip(nil)
	assert.ErrorIs(t, err, ErrNilRequest)
}

func TestLogTransport_DebugLevel(t *testing.T) {
	original := logger.Level()
	defer logger.SetLevel(original)
	logger.SetLevel(zapcore.DebugLevel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer server.Close()

	transport := NewLogTransport(http.DefaultTransport, 10)

	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader("payload"))
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogTransport_NilRequest(t *testing.T) {
	_, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(nil)
	assert.ErrorIs(t, err, ErrNilRequest)
}

func TestLogTransport_Truncate(t *testing.T) {
	lt := &LogTransport{maxLogLength: 4}
	assert.Equal(t, "abcd... [truncated]", lt.truncate([]byte("abcdef")))
	assert.Equal(t, "abc", lt.truncate([]byte("abc")))
}

func TestIsTextContentType(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"", true},
		{"text/html; charset=utf-8", true},
		{"application/json", true},
		{"application/problem+json", true},
		{"application/octet-stream", false},
		{"image/png", false},
		{";;;", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isTextContentType(tt.contentType), tt.contentType)
	}
}
