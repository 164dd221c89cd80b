package models

import (
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "low", want: PriorityLow},
		{input: "medium", want: PriorityMedium},
		{input: "high", want: PriorityHigh},
		{input: "HIGH", want: PriorityHigh},
		{input: " Medium ", want: PriorityMedium},
		{input: "bogus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePriority(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPriorityString(t *testing.T) {
	if PriorityLow.String() != "low" {
		t.Errorf("PriorityLow.String() = %s", PriorityLow.String())
	}
	if PriorityMedium.String() != "medium" {
		t.Errorf("PriorityMedium.String() = %s", PriorityMedium.String())
	}
	if PriorityHigh.String() != "high" {
		t.Errorf("PriorityHigh.String() = %s", PriorityHigh.String())
	}
}

func TestRecordValidate(t *testing.T) {
	valid := Record{Path: "main.go", Line: 4, Content: "TODO cleanup"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid record: %v", err)
	}

	tests := []struct {
		name   string
		record Record
	}{
		{name: "missing path", record: Record{Line: 1, Content: "TODO"}},
		{name: "zero line", record: Record{Path: "a.go", Line: 0, Content: "TODO"}},
		{name: "negative line", record: Record{Path: "a.go", Line: -3, Content: "TODO"}},
		{name: "empty content", record: Record{Path: "a.go", Line: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.record.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

func TestRecordHasResponsible(t *testing.T) {
	r := Record{
		Path:         "a.go",
		Line:         1,
		Content:      "TODO @resp=alice,Bob",
		Responsibles: []string{"alice", "Bob"},
	}

	if !r.HasResponsible("alice") {
		t.Error("expected alice to be responsible")
	}
	if !r.HasResponsible("Bob") {
		t.Error("expected Bob to be responsible")
	}
	// Matching is case-sensitive
	if r.HasResponsible("bob") {
		t.Error("did not expect lowercase bob to match")
	}
	if r.HasResponsible("carol") {
		t.Error("did not expect carol to match")
	}

	none := Record{Path: "a.go", Line: 1, Content: "TODO"}
	if none.HasResponsible("alice") {
		t.Error("record without responsibles should match nobody")
	}
}

func TestPrioritySummaryTotal(t *testing.T) {
	s := PrioritySummary{Low: 1, Medium: 2, High: 3}
	if s.Total() != 6 {
		t.Errorf("Total() = %d, want 6", s.Total())
	}
}

func TestRecordOptionalFieldsDistinguishAbsentFromEmpty(t *testing.T) {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	present := Record{Path: "a.go", Line: 1, Content: "TODO @resp=,", Responsibles: []string{}, DueDate: &due}
	absent := Record{Path: "a.go", Line: 2, Content: "TODO"}

	if present.Responsibles == nil {
		t.Error("present empty responsibles must be non-nil")
	}
	if absent.Responsibles != nil {
		t.Error("absent responsibles must be nil")
	}
	if present.DueDate == nil || !present.DueDate.Equal(due) {
		t.Error("due date should round-trip through the pointer")
	}
}
