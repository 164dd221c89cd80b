// Package display renders scan results for the terminal: per-record
// lines with tag highlighting, the summary block, and warning boxes.
// All color here is cosmetic; the underlying records are unchanged.
package display

import (
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"

	"github.com/balintxd/todoscan/internal/models"
)

// tagPattern matches any recognized metadata tag for highlighting.
var tagPattern = regexp.MustCompile(`@(?:prio|due|resp)=\S+`)

// PrintRecord writes one record as "path [line]: content". When
// colorOutput is set, the location is dimmed and recognized tags are
// highlighted.
func PrintRecord(out io.Writer, r models.Record, colorOutput bool) {
	if !colorOutput {
		fmt.Fprintf(out, "%s [%d]: %s\n", r.Path, r.Line, r.Content)
		return
	}

	location := color.New(color.FgHiBlack).Sprintf("%s [%d]:", r.Path, r.Line)
	content := tagPattern.ReplaceAllStringFunc(r.Content, func(tag string) string {
		return color.New(color.FgCyan).Sprint(tag)
	})
	fmt.Fprintf(out, "%s %s\n", location, content)
}

// PrintRecords writes every record, one line each.
func PrintRecords(out io.Writer, records []models.Record, colorOutput bool) {
	for _, r := range records {
		PrintRecord(out, r, colorOutput)
	}
}

// PrintSummary writes the scan summary block: total count, elapsed
// seconds, per-priority counts and per-bucket due-date counts.
func PrintSummary(out io.Writer, summary models.ScanSummary, colorOutput bool) {
	header := "=== Scan Summary ==="
	if colorOutput {
		header = color.New(color.Bold).Sprint(header)
	}

	fmt.Fprintf(out, "\n%s\n", header)
	fmt.Fprintf(out, "Total markers: %d\n", summary.Total)
	fmt.Fprintf(out, "Elapsed: %.2fs\n", summary.Elapsed.Seconds())

	fmt.Fprintf(out, "Priorities:\n")
	if colorOutput {
		fmt.Fprintf(out, "  %s\n", color.New(color.FgRed).Sprintf("High: %d", summary.Priorities.High))
		fmt.Fprintf(out, "  %s\n", color.New(color.FgYellow).Sprintf("Medium: %d", summary.Priorities.Medium))
		fmt.Fprintf(out, "  %s\n", color.New(color.FgGreen).Sprintf("Low: %d", summary.Priorities.Low))
	} else {
		fmt.Fprintf(out, "  High: %d\n", summary.Priorities.High)
		fmt.Fprintf(out, "  Medium: %d\n", summary.Priorities.Medium)
		fmt.Fprintf(out, "  Low: %d\n", summary.Priorities.Low)
	}

	fmt.Fprintf(out, "Due dates:\n")
	if colorOutput && summary.Due.PastDue > 0 {
		fmt.Fprintf(out, "  %s\n", color.New(color.FgRed).Sprintf("Past due: %d", summary.Due.PastDue))
	} else {
		fmt.Fprintf(out, "  Past due: %d\n", summary.Due.PastDue)
	}
	fmt.Fprintf(out, "  Due today: %d\n", summary.Due.DueToday)
	fmt.Fprintf(out, "  Due this week: %d\n", summary.Due.DueThisWeek)
	fmt.Fprintf(out, "  Due this month: %d\n", summary.Due.DueThisMonth)
}
