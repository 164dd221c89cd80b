// Package annotation extracts structured metadata tags from marker lines.
//
// A marker line may embed up to three tags: @prio=<word>, @due=YYYY-MM-DD
// and @resp=<comma-separated-identifiers>. The tags may appear anywhere in
// the line and in any order. Each tag is located by an independent regex
// search over the full line, so one extraction never consumes text needed
// by another.
package annotation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balintxd/todoscan/internal/models"
)

var (
	prioPattern = regexp.MustCompile(`@prio=(\w+)`)
	duePattern  = regexp.MustCompile(`@due=(\d+)-(\d+)-(\d+)`)
	respPattern = regexp.MustCompile(`@resp=(\S+)`)
)

// Tags holds the metadata extracted from one marker line.
// Field semantics match models.Record: nil means the tag was absent or
// malformed; a non-nil empty Responsibles slice means the @resp tag was
// present but held only empty segments.
type Tags struct {
	Priority     *models.Priority
	DueDate      *time.Time
	Responsibles []string
}

// Extract runs the three tag extractions over content. Extraction is a
// pure function of content: the same input always yields the same Tags.
// Malformed tags never fail the whole extraction; they leave their field
// unset and contribute a warning for the caller to report.
func Extract(content string) (Tags, []error) {
	var tags Tags
	var warnings []error

	prio, err := extractPriority(content)
	if err != nil {
		warnings = append(warnings, err)
	}
	tags.Priority = prio

	due, err := extractDueDate(content)
	if err != nil {
		warnings = append(warnings, err)
	}
	tags.DueDate = due

	tags.Responsibles = extractResponsibles(content)

	return tags, warnings
}

// extractPriority finds an @prio tag and maps its word to a Priority.
// An unrecognized word yields no priority and a warning.
func extractPriority(content string) (*models.Priority, error) {
	match := prioPattern.FindStringSubmatch(content)
	if match == nil {
		return nil, nil
	}

	prio, err := models.ParsePriority(match[1])
	if err != nil {
		return nil, fmt.Errorf("invalid @prio tag: %w", err)
	}
	return &prio, nil
}

// extractDueDate finds an @due tag and builds a calendar date from its
// year, month and day components. The day is taken literally as written:
// @due=2024-03-15 is March 15th. The resulting time is midnight UTC so
// records carry a pure date with no time-of-day component.
func extractDueDate(content string) (*time.Time, error) {
	match := duePattern.FindStringSubmatch(content)
	if match == nil {
		return nil, nil
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("invalid @due year %q: %w", match[1], err)
	}
	month, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, fmt.Errorf("invalid @due month %q: %w", match[2], err)
	}
	day, err := strconv.Atoi(match[3])
	if err != nil {
		return nil, fmt.Errorf("invalid @due day %q: %w", match[3], err)
	}

	due := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &due, nil
}

// extractResponsibles finds an @resp tag and splits its value on commas.
// Empty segments are dropped; order is preserved. The returned slice is
// non-nil whenever the tag was present, even if every segment was empty.
func extractResponsibles(content string) []string {
	match := respPattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}

	segments := strings.Split(match[1], ",")
	responsibles := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			responsibles = append(responsibles, segment)
		}
	}
	return responsibles
}
