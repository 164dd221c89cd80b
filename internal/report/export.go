package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/balintxd/todoscan/internal/filelock"
	"github.com/balintxd/todoscan/internal/models"
)

// Format is the report export format.
type Format int

const (
	FormatJSON Format = iota
	FormatMarkdown
)

// ParseFormat converts a format name to a Format.
// Accepts "json", "markdown" and "md" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("unknown export format %q (expected json or markdown)", s)
	}
}

// Report is the exportable result of one scan invocation.
type Report struct {
	ScanID         string                 `json:"scan_id"`
	Root           string                 `json:"root"`
	GeneratedAt    time.Time              `json:"generated_at"`
	Total          int                    `json:"total"`
	ElapsedSeconds float64                `json:"elapsed_seconds"`
	Priorities     models.PrioritySummary `json:"priorities"`
	Due            models.DueSummary      `json:"due"`
	Records        []ReportRecord         `json:"records"`
}

// ReportRecord is the flattened, serialization-friendly form of a
// record. Absent optional fields are omitted entirely.
type ReportRecord struct {
	Path         string   `json:"path"`
	Line         int      `json:"line"`
	Content      string   `json:"content"`
	Priority     string   `json:"priority,omitempty"`
	DueDate      string   `json:"due_date,omitempty"`
	Responsibles []string `json:"responsibles,omitempty"`
}

// NewReport assembles a Report from the scan results.
func NewReport(scanID, root string, records []models.Record, summary models.ScanSummary) *Report {
	reportRecords := make([]ReportRecord, 0, len(records))
	for _, r := range records {
		rr := ReportRecord{
			Path:         r.Path,
			Line:         r.Line,
			Content:      r.Content,
			Responsibles: r.Responsibles,
		}
		if r.Priority != nil {
			rr.Priority = r.Priority.String()
		}
		if r.DueDate != nil {
			rr.DueDate = r.DueDate.Format("2006-01-02")
		}
		reportRecords = append(reportRecords, rr)
	}

	return &Report{
		ScanID:         scanID,
		Root:           root,
		GeneratedAt:    time.Now(),
		Total:          summary.Total,
		ElapsedSeconds: summary.Elapsed.Seconds(),
		Priorities:     summary.Priorities,
		Due:            summary.Due,
		Records:        reportRecords,
	}
}

// Render serializes the report in the requested format.
func (r *Report) Render(format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal report: %w", err)
		}
		return string(data), nil
	case FormatMarkdown:
		return r.renderMarkdown(), nil
	default:
		return "", fmt.Errorf("unknown export format %d", format)
	}
}

// WriteFile renders the report and writes it atomically under an
// exclusive file lock, so concurrent scans targeting the same output
// path never interleave.
func (r *Report) WriteFile(path string, format Format) error {
	content, err := r.Render(format)
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *Report) renderMarkdown() string {
	var b strings.Builder

	b.WriteString("# Scan Report\n\n")
	fmt.Fprintf(&b, "- Scan ID: %s\n", r.ScanID)
	fmt.Fprintf(&b, "- Root: %s\n", r.Root)
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Total markers: %d\n", r.Total)
	fmt.Fprintf(&b, "- Elapsed: %.2fs\n", r.ElapsedSeconds)

	b.WriteString("\n## Priorities\n\n")
	fmt.Fprintf(&b, "| Low | Medium | High |\n|---|---|---|\n| %d | %d | %d |\n",
		r.Priorities.Low, r.Priorities.Medium, r.Priorities.High)

	b.WriteString("\n## Due dates\n\n")
	fmt.Fprintf(&b, "| Past due | Today | This week | This month |\n|---|---|---|---|\n| %d | %d | %d | %d |\n",
		r.Due.PastDue, r.Due.DueToday, r.Due.DueThisWeek, r.Due.DueThisMonth)

	if len(r.Records) > 0 {
		b.WriteString("\n## Markers\n\n")
		for _, rec := range r.Records {
			fmt.Fprintf(&b, "- `%s` [%d]: %s\n", rec.Path, rec.Line, rec.Content)
		}
	}

	return b.String()
}
