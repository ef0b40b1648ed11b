// Package config handles configuration loading and management for hitcall.
//
// It provides functionality for:
//   - Loading configuration from .hitcall.yaml or hitcall.yaml files
//   - Default configuration values
//   - Merging command-line overrides over file values
package config
