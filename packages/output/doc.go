// Package output renders the hitcall transcript.
//
// The console formatter prints, in order: an optional preview of the
// outgoing request, then either the server response (status line, headers,
// body) or a classified error. JSON bodies are pretty-printed with two-space
// indentation; anything else is printed verbatim.
package output
