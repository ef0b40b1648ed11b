package runner

import (
	"context"
	"time"

	"github.com/abdul-hamid-achik/hitcall/packages/core/outcome"
	"github.com/abdul-hamid-achik/hitcall/packages/core/resolver"
	"github.com/abdul-hamid-achik/hitcall/packages/http"
	"github.com/abdul-hamid-achik/hitcall/packages/logger"
	"github.com/abdul-hamid-achik/hitcall/packages/output"
	"github.com/abdul-hamid-achik/hitcall/packages/schema"
)

type Runner struct {
	sender    Sender
	formatter *output.ConsoleFormatter
	config    *Config
}

type Config struct {
	Verbose        bool
	NoColor        bool
	Timeout        time.Duration
	FollowRedirect bool
	MaxRedirects   int
	ValidateSSL    bool
	Proxy          string
	UserAgent      string

	// Schema, when set, is checked against successful JSON responses.
	Schema *schema.Validator
}

type Option func(*Runner)

// WithSender replaces the HTTP client built from Config.
func WithSender(s Sender) Option {
	return func(r *Runner) {
		r.sender = s
	}
}

// WithFormatter replaces the stdout console formatter built from Config.
func WithFormatter(f *output.ConsoleFormatter) Option {
	return func(r *Runner) {
		r.formatter = f
	}
}

func NewRunner(cfg *Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = &Config{FollowRedirect: true, ValidateSSL: true}
	}

	r := &Runner{config: cfg}
	for _, opt := range opts {
		opt(r)
	}

	if r.sender == nil {
		r.sender = http.NewClient(clientOptions(cfg)...)
	}
	if r.formatter == nil {
		r.formatter = output.NewConsoleFormatter(
			output.WithVerbose(cfg.Verbose),
			output.WithNoColor(cfg.NoColor),
		)
	}

	return r
}

func clientOptions(cfg *Config) []http.ClientOption {
	opts := []http.ClientOption{
		http.WithFollowRedirects(cfg.FollowRedirect),
		http.WithValidateSSL(cfg.ValidateSSL),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, http.WithTimeout(cfg.Timeout))
	}
	if cfg.MaxRedirects > 0 {
		opts = append(opts, http.WithMaxRedirects(cfg.MaxRedirects))
	}
	if cfg.Proxy != "" {
		opts = append(opts, http.WithProxy(cfg.Proxy))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(cfg.UserAgent))
	}
	return opts
}

// RunResult records what happened during a run.
type RunResult struct {
	Request  *http.Request
	Response *http.Response
	Outcome  *outcome.Error
	Schema   *schema.Result
	// SchemaErr is set when the schema check could not run.
	SchemaErr error
	Duration  time.Duration
}

// Passed reports whether the request got a 1xx-3xx answer.
func (r *RunResult) Passed() bool {
	return r.Outcome == nil
}

// Run sends the resolved request once and prints the transcript. Request
// failures end up in RunResult.Outcome.
func (r *Runner) Run(ctx context.Context, resolved *resolver.Result) *RunResult {
	start := time.Now()
	result := &RunResult{Request: resolved.Request}

	for _, w := range resolved.Warnings {
		r.formatter.FormatWarning(w)
	}

	r.formatter.FormatRequest(resolved.Request)

	resp, err := r.sender.Do(ctx, resolved.Request)
	result.Duration = time.Since(start)

	if err != nil {
		result.Outcome = outcome.Classify(err)
		logger.Debugf(ctx, "request failed (%s): %v", result.Outcome.Kind, err)
		r.formatter.FormatOutcome(result.Outcome)
		return result
	}

	result.Response = resp
	r.formatter.FormatResponse(resp)

	if r.config.Schema != nil {
		result.Schema, result.SchemaErr = r.config.Schema.Validate(resp.Body)
		r.formatter.FormatSchemaResult(result.Schema, result.SchemaErr)
	}

	return result
}
