package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Priority is the annotated urgency level of a marker line.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the canonical display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// ParsePriority converts a priority word (case-insensitive) to a Priority.
// Returns an error for anything other than low, medium, or high.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority level %q", s)
	}
}

// Record represents a single marker line found during a scan.
// It is constructed once by the file scanner and never mutated.
//
// Priority, DueDate and Responsibles are optional: a nil pointer (or nil
// slice) means the corresponding tag was absent or malformed. A non-nil
// empty Responsibles slice means the @resp tag was present but every
// segment was empty; that distinction is deliberate and preserved.
type Record struct {
	Path         string     // File path where the marker was found
	Line         int        // 1-based line number within the file
	Content      string     // Trimmed text of the matched line, tags included
	Priority     *Priority  // Annotated priority (nil if no valid @prio tag)
	DueDate      *time.Time // Annotated due date at midnight UTC (nil if no valid @due tag)
	Responsibles []string   // Annotated user identifiers (nil if no @resp tag)
}

// Validate checks the record invariants.
func (r *Record) Validate() error {
	if r.Path == "" {
		return errors.New("record path is required")
	}
	if r.Line < 1 {
		return fmt.Errorf("record line must be >= 1, got %d", r.Line)
	}
	if r.Content == "" {
		return errors.New("record content is required")
	}
	return nil
}

// HasResponsible reports whether user appears in the responsibles list.
// Comparison is case-sensitive exact match.
func (r *Record) HasResponsible(user string) bool {
	for _, resp := range r.Responsibles {
		if resp == user {
			return true
		}
	}
	return false
}
