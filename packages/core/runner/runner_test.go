package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abdul-hamid-achik/hitcall/packages/core/outcome"
	"github.com/abdul-hamid-achik/hitcall/packages/core/resolver"
	mock_runner "github.com/abdul-hamid-achik/hitcall/packages/core/runner/mocks"
	"github.com/abdul-hamid-achik/hitcall/packages/http"
	"github.com/abdul-hamid-achik/hitcall/packages/output"
	"github.com/abdul-hamid-achik/hitcall/packages/schema"
)

func newBufferedFormatter(verbose bool) (*output.ConsoleFormatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return output.NewConsoleFormatter(output.WithWriter(buf), output.WithVerbose(verbose), output.WithNoColor(true)), buf
}

func resolve(t *testing.T, args resolver.Args) *resolver.Result {
	t.Helper()
	res, err := resolver.Resolve(context.Background(), args)
	require.NoError(t, err)
	return res
}

func TestNewRunner(t *testing.T) {
	t.Run("with nil config", func(t *testing.T) {
		r := NewRunner(nil)
		assert.NotNil(t, r.sender)
		assert.NotNil(t, r.formatter)
		assert.True(t, r.config.FollowRedirect)
		assert.True(t, r.config.ValidateSSL)
	})

	t.Run("with injected sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_runner.NewMockSender(ctrl)

		r := NewRunner(&Config{Verbose: true}, WithSender(sender))
		assert.Same(t, sender, r.sender)
		assert.True(t, r.formatter.Verbose())
	})
}

func TestRunner_Run_VerboseGetJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "1", r.Header.Get("A"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	formatter, buf := newBufferedFormatter(true)
	r := NewRunner(&Config{FollowRedirect: true, ValidateSSL: true}, WithFormatter(formatter))

	result := r.Run(context.Background(), resolve(t, resolver.Args{
		Method:  "get",
		URL:     server.URL,
		Headers: []string{"A:1"},
	}))

	require.True(t, result.Passed())
	assert.Equal(t, 200, result.Response.StatusCode)

	out := buf.String()
	assert.Contains(t, out, "---------- 🚀 Outgoing Request ----------\n\n> GET "+server.URL+" HTTP/1.1\n> Headers:\n>   A: 1\n")
	assert.NotContains(t, out, "> Body")
	assert.Contains(t, out, "🔗 Status: HTTP/1.1 200 OK\n")
	assert.Contains(t, out, "  Content-Type: application/json\n")
	assert.Contains(t, out, "\n📦 Body:\n{\n  \"ok\": true\n}\n")
}

func TestRunner_Run_PostJSONNotFound(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"x":1}`, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"missing"}`))
	}))
	defer server.Close()

	formatter, buf := newBufferedFormatter(false)
	r := NewRunner(nil, WithFormatter(formatter))

	result := r.Run(context.Background(), resolve(t, resolver.Args{
		Method:   "POST",
		URL:      server.URL + "/items",
		JSONData: `{"x": 1}`,
	}))

	require.NotNil(t, result.Outcome)
	assert.Equal(t, outcome.KindHTTPStatus, result.Outcome.Kind)
	assert.Equal(t, 404, result.Outcome.StatusCode)

	expected := "🚀 Sending POST request to: " + server.URL + "/items ...\n" +
		"❌ HTTP Error: 404 Client Error: Not Found for url: " + server.URL + "/items\n" +
		"   Response body: {\"error\":\"missing\"}\n"
	assert.Equal(t, expected, buf.String())
}

func TestRunner_Run_Warnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock_runner.NewMockSender(ctrl)
	sender.EXPECT().Do(gomock.Any(), gomock.Any()).Return(&http.Response{
		Proto:      "1.1",
		StatusCode: 204,
		Reason:     "No Content",
	}, nil)

	formatter, buf := newBufferedFormatter(false)
	r := NewRunner(nil, WithSender(sender), WithFormatter(formatter))

	result := r.Run(context.Background(), resolve(t, resolver.Args{
		Method:  "DELETE",
		URL:     "http://example.com/items/1",
		Headers: []string{"bogus"},
	}))

	assert.True(t, result.Passed())
	assert.Contains(t, buf.String(), "⚠️ invalid header format: 'bogus', ignored\n🚀 Sending DELETE request")
	assert.Contains(t, buf.String(), "📦 Body:\n(no body)\n")
}

func TestRunner_Run_NetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock_runner.NewMockSender(ctrl)
	sender.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	formatter, buf := newBufferedFormatter(false)
	r := NewRunner(nil, WithSender(sender), WithFormatter(formatter))

	result := r.Run(context.Background(), resolve(t, resolver.Args{Method: "GET", URL: "http://example.invalid"}))

	require.NotNil(t, result.Outcome)
	assert.Equal(t, outcome.KindNetwork, result.Outcome.Kind)
	assert.Contains(t, buf.String(), "❌ Request failed, check the URL or network connection: context deadline exceeded\n")
	assert.NotContains(t, buf.String(), "Server Response")
}

func TestRunner_Run_UnknownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock_runner.NewMockSender(ctrl)
	sender.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	formatter, buf := newBufferedFormatter(false)
	r := NewRunner(nil, WithSender(sender), WithFormatter(formatter))

	result := r.Run(context.Background(), resolve(t, resolver.Args{Method: "GET", URL: "http://example.com"}))

	assert.Equal(t, outcome.KindUnknown, result.Outcome.Kind)
	assert.Contains(t, buf.String(), "❌ Unknown error: boom\n")
}

func TestRunner_Run_SendsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock_runner.NewMockSender(ctrl)
	sender.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.BodyRaw, req.Body.Kind())
			assert.Equal(t, "a=1", req.Body.Raw())
			return &http.Response{Proto: "1.1", StatusCode: 200, Reason: "OK", Body: []byte("done")}, nil
		}).
		Times(1)

	formatter, buf := newBufferedFormatter(true)
	r := NewRunner(nil, WithSender(sender), WithFormatter(formatter))

	r.Run(context.Background(), resolve(t, resolver.Args{Method: "PUT", URL: "http://example.com", Data: "a=1"}))

	assert.Contains(t, buf.String(), "> Body (Form Data/Raw Text):\na=1\n")
	assert.Contains(t, buf.String(), "📦 Body:\ndone\n")
}

func TestRunner_Run_Schema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"type": "object",
		"required": ["id"],
		"properties": {"id": {"type": "integer"}}
	}`), 0o644))

	validator, err := schema.LoadFile(schemaPath)
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		expected string
		valid    bool
	}{
		{name: "valid body", body: `{"id":7}`, expected: "🧪 Schema: valid\n", valid: true},
		{name: "missing field", body: `{"name":"x"}`, expected: "🧪 Schema: invalid\n  - (root): id is required\n"},
		{name: "not json", body: "plain", expected: "🧪 Schema: skipped (response body is not JSON)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mock_runner.NewMockSender(ctrl)
			sender.EXPECT().Do(gomock.Any(), gomock.Any()).Return(&http.Response{
				Proto:      "1.1",
				StatusCode: 200,
				Reason:     "OK",
				Body:       []byte(tt.body),
			}, nil)

			formatter, buf := newBufferedFormatter(false)
			r := NewRunner(&Config{Schema: validator}, WithSender(sender), WithFormatter(formatter))

			result := r.Run(context.Background(), resolve(t, resolver.Args{Method: "GET", URL: "http://example.com"}))

			assert.Contains(t, buf.String(), tt.expected)
			if tt.valid {
				require.NotNil(t, result.Schema)
				assert.True(t, result.Schema.Valid)
			}
		})
	}
}

func TestRunner_Run_SchemaSkippedOnFailure(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type":"object"}`), 0o644))

	validator, err := schema.LoadFile(schemaPath)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	sender := mock_runner.NewMockSender(ctrl)
	sender.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, &http.StatusError{Response: &http.Response{
		StatusCode: 500,
		Reason:     "Internal Server Error",
		URL:        "http://example.com",
		Body:       []byte("oops"),
	}})

	formatter, buf := newBufferedFormatter(false)
	r := NewRunner(&Config{Schema: validator}, WithSender(sender), WithFormatter(formatter))

	result := r.Run(context.Background(), resolve(t, resolver.Args{Method: "GET", URL: "http://example.com"}))

	assert.Nil(t, result.Schema)
	assert.NotContains(t, buf.String(), "Schema")
	assert.Contains(t, buf.String(), "❌ HTTP Error: 500 Server Error: Internal Server Error for url: http://example.com\n   Response body: oops\n")
}
