package internal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	kindStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed)
)

// FormatDiagnostics renders compile diagnostics with a caret under the
// offending fragment so the author can locate the mistake in the query.
func FormatDiagnostics(diagnostics []Diagnostic) string {
	var builder strings.Builder
	for _, d := range diagnostics {
		builder.WriteString(formatDiagnostic(d))
	}
	return builder.String()
}

func formatDiagnostic(d Diagnostic) string {
	var builder strings.Builder
	builder.WriteString(errorStyle.Sprint("error: "))
	builder.WriteString(kindStyle.Sprint(d.Err.Kind.String()))
	builder.WriteString("\n")
	builder.WriteString(lineStyle.Sprint(" --> "))
	builder.WriteString(fileStyle.Sprintf("%s:%d", d.Filename, d.Line))
	builder.WriteString("\n")

	builder.WriteString(lineStyle.Sprint("  | "))
	builder.WriteString(d.Query)
	builder.WriteString("\n")
	builder.WriteString(lineStyle.Sprint("  | "))
	builder.WriteString(caretLine(d.Query, d.Err.Fragment))
	builder.WriteString("\n")

	builder.WriteString(messageStyle.Sprintf("  = %s", d.Err.Error()))
	builder.WriteString("\n\n")
	return builder.String()
}

// caretLine underlines the first occurrence of fragment within the query,
// falling back to the whole query when the fragment is not a literal
// substring (property items lose surrounding brackets, for example).
func caretLine(queryText, fragment string) string {
	start := -1
	if fragment != "" {
		start = strings.Index(queryText, fragment)
	}
	if start < 0 {
		return strings.Repeat("^", max(len(queryText), 1))
	}
	return fmt.Sprintf("%s%s",
		strings.Repeat(" ", start),
		strings.Repeat("^", max(len(fragment), 1)))
}
