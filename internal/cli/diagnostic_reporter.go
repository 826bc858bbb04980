package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/uiabridge/stubgen/internal/errors"
)

// DiagnosticReporter renders fatal errors as a readable block on stderr:
// a colored header, the error type, the message, the input location, any
// collected context, and the actionable suggestions attached at the point
// the error was raised. Verbose mode adds the underlying error chain.
type DiagnosticReporter struct {
	verbose   bool
	useColors bool
	out       io.Writer
}

// NewDiagnosticReporter creates a reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose:   verbose,
		useColors: !color.NoColor,
		out:       os.Stderr,
	}
}

// SetOutput redirects the reporter, used by tests to capture output
func (r *DiagnosticReporter) SetOutput(w io.Writer) {
	r.out = w
	r.useColors = false
}

// ReportError reports one fatal error and everything known about it
func (r *DiagnosticReporter) ReportError(err error) {
	r.printHeader()

	var base *errors.BaseError
	if stderrors.As(err, &base) {
		r.reportRichError(base)
	} else {
		r.reportBasicError(err)
	}

	fmt.Fprintln(r.out)
}

// reportRichError reports a coded error with full context and suggestions
func (r *DiagnosticReporter) reportRichError(genErr *errors.BaseError) {
	title := errorCodeTitle(genErr.Code)
	fmt.Fprintf(r.out, "Type: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(title)+6))

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Message)

	if !genErr.Loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", genErr.Loc.String())
	}

	if len(genErr.Context()) > 0 {
		r.printContext(genErr.Context())
	}

	if len(genErr.Suggestions()) > 0 {
		r.printSuggestions(genErr.Suggestions())
	}

	if r.verbose {
		r.printErrorChain(genErr.Cause)
	}
}

// reportBasicError reports an error that carries no structured metadata
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(r.out, "Message: %s\n", err.Error())
	if r.verbose {
		r.printErrorChain(stderrors.Unwrap(err))
	}
}

// printHeader prints the fixed failure banner
func (r *DiagnosticReporter) printHeader() {
	const title = "ERROR: Generation Failed"
	fmt.Fprintln(r.out)
	if r.useColors {
		red := color.New(color.FgRed, color.Bold)
		red.Fprintln(r.out, title)
	} else {
		fmt.Fprintln(r.out, title)
	}
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("=", len(title)))
}

// printContext prints context entries, the well-known keys first and the
// rest in sorted order so the report is stable
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	importantKeys := []string{"class", "method", "wrapper_name", "argument"}
	printed := make(map[string]bool)
	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), value)
			printed[key] = true
		}
	}

	remaining := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			remaining = append(remaining, key)
		}
	}
	sort.Strings(remaining)
	for _, key := range remaining {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}

	fmt.Fprintln(r.out)
}

// printSuggestions prints the numbered suggestion list
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintln(r.out)
}

// printErrorChain walks the wrapped causes, outermost first
func (r *DiagnosticReporter) printErrorChain(cause error) {
	if cause == nil {
		return
	}
	fmt.Fprintf(r.out, "Error chain:\n")
	level := 1
	for cause != nil {
		fmt.Fprintf(r.out, "   %d. %s\n", level, cause.Error())
		cause = stderrors.Unwrap(cause)
		level++
	}
	fmt.Fprintln(r.out)
}

// errorCodeTitle maps an error code onto its report heading
func errorCodeTitle(code errors.ErrorCode) string {
	switch code {
	case errors.ParseErrorCode:
		return "Parse Error"
	case errors.CollisionErrorCode:
		return "Wrapper Name Collision"
	case errors.FileSystemErrorCode:
		return "File System Error"
	case errors.ManifestErrorCode:
		return "Manifest Error"
	default:
		return "Unknown Error"
	}
}

// formatContextKey turns a snake_case context key into a report label
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
