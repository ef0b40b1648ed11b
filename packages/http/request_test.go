package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaders_Set(t *testing.T) {
	var h Headers
	h = h.Set("Accept", "text/plain")
	h = h.Set("X-Id", "1")
	h = h.Set("Accept", "application/json")

	assert.Equal(t, Headers{
		{Key: "Accept", Value: "application/json"},
		{Key: "X-Id", Value: "1"},
	}, h)
}

func TestHeaders_KeysAreCaseSensitive(t *testing.T) {
	var h Headers
	h = h.Set("x-id", "1")
	h = h.Set("X-Id", "2")

	assert.Len(t, h, 2)
	assert.Equal(t, "1", h.Get("X-ID"))
	assert.True(t, h.Has("X-ID"))
	assert.Len(t, h.Without("x-ID"), 0)
}

func TestRequest_EffectiveHeaders(t *testing.T) {
	tests := []struct {
		name     string
		headers  Headers
		body     Body
		expected Headers
	}{
		{
			name:     "no body keeps user headers",
			headers:  Headers{{Key: "A", Value: "1"}},
			body:     NoBody(),
			expected: Headers{{Key: "A", Value: "1"}},
		},
		{
			name:     "raw body keeps user content type",
			headers:  Headers{{Key: "Content-Type", Value: "text/plain"}},
			body:     RawBody("x"),
			expected: Headers{{Key: "Content-Type", Value: "text/plain"}},
		},
		{
			name:    "json body appends content type last",
			headers: Headers{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}},
			body:    JSONBody(jsonvalueObject()),
			expected: Headers{
				{Key: "A", Value: "1"},
				{Key: "B", Value: "2"},
				{Key: "Content-Type", Value: "application/json"},
			},
		},
		{
			name:    "json body overrides user content type",
			headers: Headers{{Key: "content-type", Value: "text/plain"}, {Key: "A", Value: "1"}},
			body:    JSONBody(jsonvalueObject()),
			expected: Headers{
				{Key: "A", Value: "1"},
				{Key: "Content-Type", Value: "application/json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Method: "post", URL: "http://example.com", Headers: tt.headers, Body: tt.body}
			assert.Equal(t, tt.expected, req.EffectiveHeaders())
			assert.Equal(t, "POST", req.DisplayMethod())
		})
	}
}

func TestRequest_EffectiveHeadersDoesNotMutate(t *testing.T) {
	req := &Request{Headers: Headers{{Key: "Content-Type", Value: "text/plain"}}, Body: JSONBody(jsonvalueObject())}
	_ = req.EffectiveHeaders()

	assert.Equal(t, Headers{{Key: "Content-Type", Value: "text/plain"}}, req.Headers)
}

func TestBody_Encoded(t *testing.T) {
	_, ok := NoBody().Encoded()
	assert.False(t, ok)

	raw, ok := RawBody("a=1").Encoded()
	assert.True(t, ok)
	assert.Equal(t, "a=1", raw)

	encoded, ok := JSONBody(jsonvalueObject()).Encoded()
	assert.True(t, ok)
	assert.Equal(t, `{"k":"v"}`, encoded)

	assert.Equal(t, BodyNone, JSONBody(nil).Kind())
}
