// Package outcome classifies a failed request into one of three reported
// kinds: an HTTP error status, a network failure, or an unknown error.
package outcome
