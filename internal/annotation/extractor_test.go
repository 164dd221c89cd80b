package annotation

import (
	"testing"
	"time"

	"github.com/balintxd/todoscan/internal/models"
)

func TestExtractPriority(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantPriority *models.Priority
		wantWarnings int
	}{
		{
			name:         "high priority",
			content:      "TODO fix the cache @prio=high",
			wantPriority: priorityPtr(models.PriorityHigh),
		},
		{
			name:         "medium priority",
			content:      "TODO @prio=medium refactor",
			wantPriority: priorityPtr(models.PriorityMedium),
		},
		{
			name:         "low priority",
			content:      "TODO @prio=low cleanup",
			wantPriority: priorityPtr(models.PriorityLow),
		},
		{
			name:         "mixed case word is folded",
			content:      "TODO @prio=HIGH",
			wantPriority: priorityPtr(models.PriorityHigh),
		},
		{
			name:         "unknown word yields no priority and a warning",
			content:      "TODO @prio=bogus",
			wantPriority: nil,
			wantWarnings: 1,
		},
		{
			name:         "no tag",
			content:      "TODO something without tags",
			wantPriority: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, warnings := Extract(tt.content)

			if len(warnings) != tt.wantWarnings {
				t.Errorf("Extract() warnings = %d, want %d", len(warnings), tt.wantWarnings)
			}

			if tt.wantPriority == nil {
				if tags.Priority != nil {
					t.Errorf("Extract() priority = %v, want absent", *tags.Priority)
				}
				return
			}
			if tags.Priority == nil {
				t.Fatalf("Extract() priority absent, want %v", *tt.wantPriority)
			}
			if *tags.Priority != *tt.wantPriority {
				t.Errorf("Extract() priority = %v, want %v", *tags.Priority, *tt.wantPriority)
			}
		})
	}
}

func TestExtractDueDate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantDue *time.Time
	}{
		{
			name:    "plain date",
			content: "TODO ship it @due=2024-03-15",
			wantDue: datePtr(2024, 3, 15),
		},
		{
			name:    "first of month",
			content: "TODO @due=2025-01-01",
			wantDue: datePtr(2025, 1, 1),
		},
		{
			name:    "no tag",
			content: "TODO no date here",
			wantDue: nil,
		},
		{
			name:    "malformed tag shape is ignored",
			content: "TODO @due=soon",
			wantDue: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, _ := Extract(tt.content)

			if tt.wantDue == nil {
				if tags.DueDate != nil {
					t.Errorf("Extract() due = %v, want absent", *tags.DueDate)
				}
				return
			}
			if tags.DueDate == nil {
				t.Fatalf("Extract() due absent, want %v", *tt.wantDue)
			}
			if !tags.DueDate.Equal(*tt.wantDue) {
				t.Errorf("Extract() due = %v, want %v", *tags.DueDate, *tt.wantDue)
			}
		})
	}
}

// The day component must come through literally: @due=2024-03-15 is the
// 15th, never the 14th.
func TestExtractDueDateDayIsLiteral(t *testing.T) {
	tags, _ := Extract("TODO @due=2024-03-15")
	if tags.DueDate == nil {
		t.Fatal("expected due date")
	}

	year, month, day := tags.DueDate.Date()
	if year != 2024 || month != time.March || day != 15 {
		t.Errorf("due date = %d-%02d-%02d, want 2024-03-15", year, month, day)
	}
}

func TestExtractResponsibles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantNil bool
	}{
		{
			name:    "single user",
			content: "TODO @resp=alice",
			want:    []string{"alice"},
		},
		{
			name:    "multiple users keep order",
			content: "TODO @resp=carol,alice,bob",
			want:    []string{"carol", "alice", "bob"},
		},
		{
			name:    "empty segments are dropped",
			content: "TODO @resp=alice,bob,,carol",
			want:    []string{"alice", "bob", "carol"},
		},
		{
			name:    "all segments empty yields present empty list",
			content: "TODO @resp=,",
			want:    []string{},
		},
		{
			name:    "no tag yields absent",
			content: "TODO nobody assigned",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, _ := Extract(tt.content)

			if tt.wantNil {
				if tags.Responsibles != nil {
					t.Errorf("Extract() responsibles = %v, want absent", tags.Responsibles)
				}
				return
			}
			if tags.Responsibles == nil {
				t.Fatal("Extract() responsibles absent, want present")
			}
			if len(tags.Responsibles) != len(tt.want) {
				t.Fatalf("Extract() responsibles = %v, want %v", tags.Responsibles, tt.want)
			}
			for i, want := range tt.want {
				if tags.Responsibles[i] != want {
					t.Errorf("responsibles[%d] = %s, want %s", i, tags.Responsibles[i], want)
				}
			}
		})
	}
}

// All three tags may co-occur in any order; each extraction searches the
// line independently.
func TestExtractCombinedTags(t *testing.T) {
	tags, warnings := Extract("TODO rework parser @resp=alice,bob @prio=high @due=2024-06-30")

	if len(warnings) != 0 {
		t.Errorf("Extract() warnings = %v, want none", warnings)
	}
	if tags.Priority == nil || *tags.Priority != models.PriorityHigh {
		t.Errorf("Extract() priority = %v, want high", tags.Priority)
	}
	if tags.DueDate == nil || !tags.DueDate.Equal(*datePtr(2024, 6, 30)) {
		t.Errorf("Extract() due = %v, want 2024-06-30", tags.DueDate)
	}
	if len(tags.Responsibles) != 2 || tags.Responsibles[0] != "alice" || tags.Responsibles[1] != "bob" {
		t.Errorf("Extract() responsibles = %v, want [alice bob]", tags.Responsibles)
	}
}

// A bad priority word must not disturb due-date or responsible
// extraction on the same line.
func TestExtractBadPriorityLeavesOthersIntact(t *testing.T) {
	tags, warnings := Extract("TODO @prio=urgent @due=2024-02-01 @resp=dave")

	if len(warnings) != 1 {
		t.Fatalf("Extract() warnings = %d, want 1", len(warnings))
	}
	if tags.Priority != nil {
		t.Errorf("Extract() priority = %v, want absent", *tags.Priority)
	}
	if tags.DueDate == nil || !tags.DueDate.Equal(*datePtr(2024, 2, 1)) {
		t.Errorf("Extract() due = %v, want 2024-02-01", tags.DueDate)
	}
	if len(tags.Responsibles) != 1 || tags.Responsibles[0] != "dave" {
		t.Errorf("Extract() responsibles = %v, want [dave]", tags.Responsibles)
	}
}

// Extraction is a pure function of content.
func TestExtractDeterministic(t *testing.T) {
	content := "TODO @prio=medium @due=2024-12-24 @resp=eve"

	first, _ := Extract(content)
	second, _ := Extract(content)

	if *first.Priority != *second.Priority {
		t.Error("priority extraction is not deterministic")
	}
	if !first.DueDate.Equal(*second.DueDate) {
		t.Error("due date extraction is not deterministic")
	}
	if len(first.Responsibles) != len(second.Responsibles) {
		t.Error("responsible extraction is not deterministic")
	}
}

func priorityPtr(p models.Priority) *models.Priority {
	return &p
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
