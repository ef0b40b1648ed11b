// Package cmd implements the hitcall CLI using Cobra.
//
// hitcall takes a method and a URL, plus optional headers and one body
// source, sends a single request and prints the request preview and the
// response (or the reason it failed) to stdout.
//
// Exit status is 0 once a request was attempted, 1 when the request could not
// be built, and 2 on invalid usage.
package cmd
