// Package resolver turns raw command-line values into the request hitcall
// sends.
//
// Header tokens are split on their first colon and trimmed. Malformed header
// tokens become warnings, never failures. The three body sources (raw data,
// inline JSON, JSON file) are mutually exclusive and JSON input is parsed up
// front, so a bad document stops the run before any network activity.
package resolver
