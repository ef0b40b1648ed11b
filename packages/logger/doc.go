// Package logger provides the process-wide structured logger for hitcall.
//
// Records are written to stderr through zap so that the request/response
// transcript on stdout is never interleaved with diagnostics. The level
// defaults to warn and is raised with --log-level debug to see wire dumps.
package logger
