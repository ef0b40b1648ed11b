// Package http sends the single request hitcall is asked to make.
//
// It wraps the standard library's http package with:
//   - An ordered header list that preserves insertion order for display
//   - A tagged request body (none, raw text or JSON document)
//   - A client with a fixed total timeout and bounded redirect following
//   - Status classification: 4xx and 5xx responses come back as *StatusError
//   - Round-trippers for User-Agent injection and debug wire dumps
package http
