// Package runner executes a single resolved request and prints its transcript.
//
// A run goes through these steps:
//   - Print resolver warnings
//   - Print the request preview (verbose) or a one-line notice
//   - Send the request exactly once
//   - Print the response, or the classified failure
//   - Optionally check the response body against a JSON Schema
//
// Request failures are reported on the transcript and never returned as
// errors, so a completed attempt always ends the process successfully.
package runner
