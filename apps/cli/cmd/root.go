package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/hitcall/packages/core/config"
	"github.com/abdul-hamid-achik/hitcall/packages/core/resolver"
	"github.com/abdul-hamid-achik/hitcall/packages/core/runner"
	"github.com/abdul-hamid-achik/hitcall/packages/logger"
	"github.com/abdul-hamid-achik/hitcall/packages/output"
	"github.com/abdul-hamid-achik/hitcall/packages/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	headers   []string
	data      string
	jsonData  string
	file      string
	verbose   bool
	schema    string
	requestID bool
	noColor   bool
	config    string
	logLevel  string
	timeout   string
	insecure  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hitcall METHOD URL",
		Short: "Send one HTTP request and show what came back.",
		Long: `hitcall sends a single HTTP request built from the command line and
prints a readable transcript of the request and the server response.

Examples:
  hitcall GET https://httpbin.org/get -v
  hitcall POST https://httpbin.org/post -j '{"name": "hitcall"}'
  hitcall PUT https://httpbin.org/put -f payload.json -H 'Authorization: Bearer token'
  hitcall POST https://httpbin.org/post -d 'a=1&b=2' -H 'Content-Type: application/x-www-form-urlencoded'
  hitcall GET https://api.example.com/users/1 --schema user.schema.json`,
		Args:          cobra.ExactArgs(2),
		Version:       versionString(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return callCommand(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate(versionTemplate)

	// Request flags
	cmd.Flags().StringArrayVarP(&opts.headers, "header", "H", nil, "Request header as 'Key:Value' (repeatable)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "Raw body sent as-is (e.g. 'key1=value1&key2=value2')")
	cmd.Flags().StringVarP(&opts.jsonData, "json_data", "j", "", "JSON body given inline (e.g. '{\"key\": \"value\"}')")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to a file containing the JSON body")
	cmd.Flags().BoolVar(&opts.requestID, "request-id", false, "Add an X-Request-ID header with a generated UUID")

	// Output flags
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the full outgoing request and response timing")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Validate a JSON response against this JSON Schema file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level on stderr: debug, info, warn, error")

	// Network flags
	cmd.Flags().StringVar(&opts.config, "config", "", "Path to config file (default: .hitcall.yaml in the working directory)")
	cmd.Flags().StringVar(&opts.timeout, "timeout", "", "Total request timeout (e.g. 10s, 1m, 500ms)")
	cmd.Flags().BoolVarP(&opts.insecure, "insecure", "k", false, "Disable SSL certificate validation")

	return cmd
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer logger.Sync()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return ExitUsageError
}

func callCommand(cmd *cobra.Command, args []string, opts *options) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		output.NewConsoleFormatter(output.WithWriter(out), output.WithNoColor(opts.noColor)).FormatError(err)
		return &ExitError{Code: ExitPreflightError, Err: err}
	}

	level, _ := cfg.ParsedLogLevel()
	logger.SetLevel(level)

	formatter := output.NewConsoleFormatter(
		output.WithWriter(out),
		output.WithVerbose(opts.verbose),
		output.WithNoColor(cfg.GetNoColor()),
	)

	resolved, err := resolver.Resolve(ctx, resolver.Args{
		Method:    args[0],
		URL:       args[1],
		Headers:   opts.headers,
		Data:      opts.data,
		JSONData:  opts.jsonData,
		File:      opts.file,
		RequestID: opts.requestID,
	})
	if err != nil {
		if errors.Is(err, resolver.ErrConflictingBody) {
			return err
		}
		for _, w := range resolved.Warnings {
			formatter.FormatWarning(w)
		}
		formatter.FormatError(err)
		return &ExitError{Code: ExitPreflightError, Err: err}
	}

	var validator *schema.Validator
	if opts.schema != "" {
		validator, err = schema.LoadFile(opts.schema)
		if err != nil {
			formatter.FormatError(err)
			return &ExitError{Code: ExitPreflightError, Err: err}
		}
	}

	timeout, _ := cfg.ParsedTimeout()
	ua := cfg.UserAgent
	if ua == "" {
		ua = userAgent()
	}

	r := runner.NewRunner(&runner.Config{
		Verbose:        opts.verbose,
		NoColor:        cfg.GetNoColor(),
		Timeout:        timeout,
		FollowRedirect: cfg.GetFollowRedirects(),
		MaxRedirects:   cfg.MaxRedirects,
		ValidateSSL:    cfg.GetValidateSSL(),
		Proxy:          cfg.Proxy,
		UserAgent:      ua,
		Schema:         validator,
	}, runner.WithFormatter(formatter))

	result := r.Run(ctx, resolved)
	if !result.Passed() {
		logger.Debugf(ctx, "request finished with %s outcome", result.Outcome.Kind)
	}

	return nil
}

// loadConfig reads the config file, if any, and applies the flags the user
// set explicitly on top of it.
func loadConfig(flags *pflag.FlagSet, opts *options) (*config.Config, error) {
	fileConfig, err := config.LoadConfig(opts.config)
	if err != nil {
		return nil, err
	}

	cfg := fileConfig.Merge(bindFlagsToConfig(flags, opts))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func bindFlagsToConfig(flags *pflag.FlagSet, opts *options) *config.Config {
	overrides := &config.Config{}

	if flags.Changed("timeout") {
		overrides.Timeout = opts.timeout
	}
	if flags.Changed("log-level") {
		overrides.LogLevel = opts.logLevel
	}
	if flags.Changed("no-color") {
		overrides.NoColor = config.BoolPtr(opts.noColor)
	}
	if flags.Changed("insecure") {
		overrides.ValidateSSL = config.BoolPtr(!opts.insecure)
	}

	return overrides
}
