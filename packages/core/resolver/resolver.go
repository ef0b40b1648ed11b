package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/hitcall/packages/http"
	"github.com/abdul-hamid-achik/hitcall/packages/jsonvalue"
	"github.com/abdul-hamid-achik/hitcall/packages/logger"
	"github.com/google/uuid"
)

// RequestIDHeader is added by Args.RequestID.
const RequestIDHeader = "X-Request-ID"

var (
	// ErrConflictingBody indicates more than one body source was given.
	ErrConflictingBody = errors.New("only one of --data, --json_data and --file can be used")
	// ErrInvalidInlineJSON indicates --json_data could not be parsed.
	ErrInvalidInlineJSON = errors.New("--json_data is not valid JSON")
	// ErrFileNotFound indicates the --file path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidFileJSON indicates the --file content is not valid JSON.
	ErrInvalidFileJSON = errors.New("file does not contain valid JSON")
	// ErrFileUnreadable indicates the --file path exists but could not be read.
	ErrFileUnreadable = errors.New("cannot read file")
)

// newRequestID is swapped in tests.
var newRequestID = uuid.NewString

// Args are the raw values collected from the command line. Empty strings mean
// "not given".
type Args struct {
	Method    string
	URL       string
	Headers   []string
	Data      string
	JSONData  string
	File      string
	RequestID bool
}

// Result is a resolved request plus the warnings produced on the way.
type Result struct {
	Request  *http.Request
	Warnings []string
}

// Resolve validates args and builds the request. Every returned error is
// fatal and happens before any network call. Header warnings are returned in
// the Result even when the body cannot be resolved.
func Resolve(ctx context.Context, args Args) (*Result, error) {
	headers, warnings := ParseHeaders(args.Headers)

	if args.RequestID && !headers.Has(RequestIDHeader) {
		headers = headers.Set(RequestIDHeader, newRequestID())
	}

	body, err := ResolveBody(args.Data, args.JSONData, args.File)
	if err != nil {
		return &Result{Warnings: warnings}, err
	}

	req := http.NewRequest(args.Method, args.URL)
	req.Headers = headers
	req.SetBody(body)

	logger.DebugKV(ctx, "resolved request",
		"method", req.Method,
		"url", req.URL,
		"headers", len(req.Headers),
		"body", bodyKindName(body.Kind()),
	)

	return &Result{Request: req, Warnings: warnings}, nil
}

// ParseHeaders splits "Key:Value" tokens on the first colon and trims both
// sides. Tokens without a colon are skipped and reported as warnings.
func ParseHeaders(tokens []string) (http.Headers, []string) {
	var (
		headers  http.Headers
		warnings []string
	)

	for _, token := range tokens {
		key, value, found := strings.Cut(token, ":")
		if !found {
			warnings = append(warnings, fmt.Sprintf("invalid header format: '%s', ignored", token))
			continue
		}
		headers = headers.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return headers, warnings
}

// ResolveBody picks the single body source that was supplied.
func ResolveBody(data, jsonData, file string) (http.Body, error) {
	supplied := 0
	for _, s := range []string{data, jsonData, file} {
		if s != "" {
			supplied++
		}
	}
	if supplied > 1 {
		return http.NoBody(), ErrConflictingBody
	}

	switch {
	case data != "":
		return http.RawBody(data), nil
	case jsonData != "":
		v, err := jsonvalue.ParseString(jsonData)
		if err != nil {
			return http.NoBody(), ErrInvalidInlineJSON
		}
		return http.JSONBody(v), nil
	case file != "":
		v, err := LoadJSONFile(file)
		if err != nil {
			return http.NoBody(), err
		}
		return http.JSONBody(v), nil
	default:
		return http.NoBody(), nil
	}
}

// LoadJSONFile reads path as UTF-8 text and parses it as JSON.
func LoadJSONFile(path string) (*jsonvalue.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: '%s': %w", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrFileUnreadable, path, err)
	}

	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidFileJSON, path)
	}
	return v, nil
}

func bodyKindName(kind http.BodyKind) string {
	switch kind {
	case http.BodyRaw:
		return "raw"
	case http.BodyJSON:
		return "json"
	default:
		return "none"
	}
}
