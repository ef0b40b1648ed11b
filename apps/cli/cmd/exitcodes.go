package cmd

import "fmt"

// Exit codes for hitcall CLI
const (
	// ExitSuccess indicates the request was attempted, whatever the server said
	ExitSuccess = 0

	// ExitPreflightError indicates the request could not be built: bad JSON,
	// missing file, unusable schema or config
	ExitPreflightError = 1

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 2
)

// ExitError carries the process exit code for an error that has already been
// reported on the transcript.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
