// Package schema checks a response body against a JSON Schema document.
package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/abdul-hamid-achik/hitcall/packages/jsonvalue"
	"github.com/xeipuuv/gojsonschema"
)

var (
	// ErrSchemaNotFound indicates the schema file does not exist.
	ErrSchemaNotFound = errors.New("schema file not found")
	// ErrInvalidSchema indicates the schema file is not a usable JSON Schema.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrNotJSON indicates the document to validate is not JSON.
	ErrNotJSON = errors.New("response body is not JSON")
)

type Validator struct {
	path   string
	schema *gojsonschema.Schema
}

// Violation is one failed schema rule.
type Violation struct {
	Field       string
	Description string
}

type Result struct {
	Valid      bool
	Violations []Violation
}

// LoadFile reads and compiles the schema at path.
func LoadFile(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrSchemaNotFound, path)
		}
		return nil, fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}

	if !jsonvalue.Valid(data) {
		return nil, fmt.Errorf("%w: '%s' is not valid JSON", ErrInvalidSchema, path)
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrInvalidSchema, path, err)
	}

	return &Validator{path: path, schema: compiled}, nil
}

func (v *Validator) Path() string {
	return v.path
}

// Validate checks body against the schema. A body that is not JSON is an error,
// not a violation.
func (v *Validator) Validate(body []byte) (*Result, error) {
	if !jsonvalue.Valid(body) {
		return nil, ErrNotJSON
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	out := &Result{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Violations = append(out.Violations, Violation{
			Field:       desc.Field(),
			Description: desc.Description(),
		})
	}
	return out, nil
}
