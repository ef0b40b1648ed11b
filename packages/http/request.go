package http

import (
	"strings"

	"github.com/abdul-hamid-achik/hitcall/packages/jsonvalue"
)

const (
	HeaderContentType   = "Content-Type"
	MIMEApplicationJSON = "application/json"
)

type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyRaw
	BodyJSON
)

// Body is the request payload. At most one of raw text or a JSON document is
// ever set; the zero value carries no body.
type Body struct {
	kind BodyKind
	raw  string
	json *jsonvalue.Value
}

func NoBody() Body {
	return Body{}
}

func RawBody(text string) Body {
	return Body{kind: BodyRaw, raw: text}
}

func JSONBody(v *jsonvalue.Value) Body {
	if v == nil {
		return Body{}
	}
	return Body{kind: BodyJSON, json: v}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

func (b Body) Raw() string {
	return b.raw
}

func (b Body) JSON() *jsonvalue.Value {
	return b.json
}

// Encoded returns the bytes sent on the wire and whether there is a body.
func (b Body) Encoded() (string, bool) {
	switch b.kind {
	case BodyRaw:
		return b.raw, true
	case BodyJSON:
		return b.json.Compact(), true
	default:
		return "", false
	}
}

// Request describes the one request hitcall sends. It is built once by the
// resolver and not modified afterwards.
type Request struct {
	Method  string
	URL     string
	Headers Headers
	Body    Body
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method: method,
		URL:    requestURL,
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers = r.Headers.Set(key, value)
	return r
}

func (r *Request) SetBody(body Body) *Request {
	r.Body = body
	return r
}

// DisplayMethod is the method as shown in the transcript.
func (r *Request) DisplayMethod() string {
	return strings.ToUpper(r.Method)
}

// EffectiveHeaders is the header list that is both previewed and sent. With a
// JSON body any user Content-Type is dropped and application/json is appended
// last.
func (r *Request) EffectiveHeaders() Headers {
	if r.Body.Kind() != BodyJSON {
		return r.Headers.Clone()
	}
	return append(r.Headers.Without(HeaderContentType), Header{Key: HeaderContentType, Value: MIMEApplicationJSON})
}
