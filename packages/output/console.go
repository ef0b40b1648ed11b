package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/hitcall/packages/core/outcome"
	"github.com/abdul-hamid-achik/hitcall/packages/http"
	"github.com/abdul-hamid-achik/hitcall/packages/jsonvalue"
	"github.com/abdul-hamid-achik/hitcall/packages/schema"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const (
	previewBanner   = "---------- 🚀 Outgoing Request ----------"
	previewFooter   = "------------------------------------------------------"
	responseBanner  = "---------- ✅ Server Response ----------"
	noBodyMarker    = "(no body)"
	requestProtocol = "HTTP/1.1"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) Verbose() bool {
	return f.verbose
}

// FormatRequest prints the preview in verbose mode and a one-line notice
// otherwise.
func (f *ConsoleFormatter) FormatRequest(req *http.Request) {
	if f.verbose {
		f.FormatPreview(req)
		return
	}
	fmt.Fprintf(f.writer, "🚀 Sending %s request to: %s ...\n", req.DisplayMethod(), req.URL)
}

// FormatPreview prints the outgoing request: request line, effective
// headers and body.
func (f *ConsoleFormatter) FormatPreview(req *http.Request) {
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(f.writer, "%s\n\n", cyan(previewBanner))
	fmt.Fprintf(f.writer, "> %s %s %s\n", req.DisplayMethod(), req.URL, requestProtocol)

	fmt.Fprintf(f.writer, "> Headers:\n")
	for _, h := range req.EffectiveHeaders() {
		fmt.Fprintf(f.writer, ">   %s: %s\n", h.Key, h.Value)
	}

	switch req.Body.Kind() {
	case http.BodyRaw:
		fmt.Fprintf(f.writer, "\n> Body (Form Data/Raw Text):\n")
		fmt.Fprintf(f.writer, "%s\n", req.Body.Raw())
	case http.BodyJSON:
		fmt.Fprintf(f.writer, "\n> Body (JSON):\n")
		fmt.Fprintf(f.writer, "%s\n", req.Body.JSON().Pretty())
	}

	fmt.Fprintf(f.writer, "\n%s\n\n", cyan(previewFooter))
}

// FormatResponse prints a successful response.
func (f *ConsoleFormatter) FormatResponse(resp *http.Response) {
	green := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "%s\n\n", green(responseBanner))
	fmt.Fprintf(f.writer, "🔗 Status: %s\n", bold(StatusLine(resp)))

	if f.verbose {
		fmt.Fprintf(f.writer, "⏱  Time: %dms  Size: %s\n", resp.DurationMs(), humanize.Bytes(uint64(len(resp.Body))))
	}

	fmt.Fprintf(f.writer, "\n📋 Headers:\n")
	for _, h := range resp.Headers {
		fmt.Fprintf(f.writer, "  %s: %s\n", h.Key, h.Value)
	}

	fmt.Fprintf(f.writer, "\n📦 Body:\n")
	fmt.Fprintf(f.writer, "%s\n", RenderBody(resp.Body))
}

// FormatOutcome prints a classified request failure.
func (f *ConsoleFormatter) FormatOutcome(e *outcome.Error) {
	red := color.New(color.FgRed).SprintFunc()

	switch e.Kind {
	case outcome.KindHTTPStatus:
		fmt.Fprintf(f.writer, "%s %s\n", red("❌ HTTP Error:"), e.Message)
		fmt.Fprintf(f.writer, "   Response body: %s\n", e.Body)
	case outcome.KindNetwork:
		fmt.Fprintf(f.writer, "%s %s\n", red("❌ Request failed, check the URL or network connection:"), e.Message)
	default:
		fmt.Fprintf(f.writer, "%s %s\n", red("❌ Unknown error:"), e.Message)
	}
}

// FormatSchemaResult prints the outcome of a schema check.
func (f *ConsoleFormatter) FormatSchemaResult(result *schema.Result, err error) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	switch {
	case err != nil:
		fmt.Fprintf(f.writer, "\n🧪 Schema: %s (%v)\n", yellow("skipped"), err)
	case result.Valid:
		fmt.Fprintf(f.writer, "\n🧪 Schema: %s\n", green("valid"))
	default:
		fmt.Fprintf(f.writer, "\n🧪 Schema: %s\n", red("invalid"))
		for _, v := range result.Violations {
			fmt.Fprintf(f.writer, "  - %s: %s\n", v.Field, v.Description)
		}
	}
}

func (f *ConsoleFormatter) FormatWarning(msg string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", yellow("⚠️"), msg)
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("❌ Error:"), err)
}

// StatusLine renders "HTTP/<version> <code> <reason>".
func StatusLine(resp *http.Response) string {
	return strings.TrimSpace(fmt.Sprintf("HTTP/%s %d %s", resp.Proto, resp.StatusCode, resp.Reason))
}

// RenderBody pretty-prints a JSON body, returns any other body verbatim, and
// returns a placeholder for an empty body.
func RenderBody(body []byte) string {
	if v, err := jsonvalue.Parse(body); err == nil {
		return v.Pretty()
	}
	if len(body) == 0 {
		return noBodyMarker
	}
	return string(body)
}
