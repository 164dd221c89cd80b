package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnSlowScan creates the warning shown when a scan's elapsed time
// exceeds the configured time_warning threshold. The overrun is purely
// informational; the scan result is complete regardless.
func WarnSlowScan(elapsedSeconds float64, thresholdSeconds int) Warning {
	return Warning{
		Title:      fmt.Sprintf("scan took %.2fs (threshold %ds)", elapsedSeconds, thresholdSeconds),
		Message:    "The scan finished normally but ran longer than the configured time_warning.",
		Suggestion: "Add busy directories (build output, dependency trees) to directory_exceptions.",
	}
}
