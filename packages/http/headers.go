package http

import "strings"

// Header is a single header line.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered list of headers. Keys are compared exactly, so
// "content-type" and "Content-Type" are distinct entries.
type Headers []Header

// Set replaces the value of an existing key in place, or appends a new entry.
func (h Headers) Set(key, value string) Headers {
	for i := range h {
		if h[i].Key == key {
			h[i].Value = value
			return h
		}
	}
	return append(h, Header{Key: key, Value: value})
}

// Get returns the value of the first entry whose key matches case-insensitively.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Has reports whether a key is present, ignoring case.
func (h Headers) Has(key string) bool {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return true
		}
	}
	return false
}

// Without returns a copy with every case-insensitive match of key removed.
func (h Headers) Without(key string) Headers {
	out := make(Headers, 0, len(h))
	for _, hdr := range h {
		if !strings.EqualFold(hdr.Key, key) {
			out = append(out, hdr)
		}
	}
	return out
}

// Clone returns an independent copy.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	out := make(Headers, len(h))
	copy(out, h)
	return out
}
