package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/scaffold/internal/errors"
)

// DiagnosticReporter prints failed runs in a readable form: one block per
// error with its location, context and suggestions
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	colors  bool
}

// NewDiagnosticReporter creates a reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{verbose: verbose, out: os.Stderr, colors: !color.NoColor}
}

// SetOutput redirects the report and disables colors
func (r *DiagnosticReporter) SetOutput(out io.Writer) {
	r.out = out
	r.colors = false
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	fmt.Fprintf(r.out, "%s%s\n", r.paint(color.New(color.FgYellow, color.Bold), "! "), message)
}

// ReportError prints err. Aggregated errors are listed one by one.
func (r *DiagnosticReporter) ReportError(err error) {
	if err == nil {
		return
	}

	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) && multi.Count() > 1 {
		fmt.Fprintf(r.out, "\nERROR: %d failures\n", multi.Count())
		fmt.Fprintf(r.out, "%s\n", strings.Repeat("=", 20))
		for i, item := range multi.Errors {
			fmt.Fprintf(r.out, "\n[%d/%d] ", i+1, multi.Count())
			r.reportOne(item)
		}
		fmt.Fprintln(r.out)
		return
	}

	fmt.Fprintf(r.out, "\nERROR: ")
	r.reportOne(err)
	fmt.Fprintln(r.out)
}

func (r *DiagnosticReporter) reportOne(err error) {
	var se errors.ScaffoldError
	if !stderrors.As(err, &se) {
		fmt.Fprintf(r.out, "%s\n", err.Error())
		return
	}

	fmt.Fprintf(r.out, "%s\n", r.paint(color.New(color.FgRed, color.Bold), se.ErrorCode().String()))
	fmt.Fprintf(r.out, "Message: %s\n", se.Error())

	if r.verbose {
		if cause := se.Unwrap(); cause != nil {
			fmt.Fprintf(r.out, "Underlying cause: %s\n", cause.Error())
		}
		r.printContext(se.Context())
	}
	r.printSuggestions(se.Suggestions())
}

func (r *DiagnosticReporter) printContext(ctx map[string]interface{}) {
	if len(ctx) == 0 {
		return
	}

	keys := make([]string, 0, len(ctx))
	for key := range ctx {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), ctx[key])
	}
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, s := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, s)
	}
}

func (r *DiagnosticReporter) paint(c *color.Color, text string) string {
	if !r.colors {
		return text
	}
	return c.Sprint(text)
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
