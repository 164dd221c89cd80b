package models

import "time"

// PrioritySummary holds per-priority record counts.
// Records without a priority contribute to none of the counts.
type PrioritySummary struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Total returns the number of records that carry any priority.
func (s PrioritySummary) Total() int {
	return s.Low + s.Medium + s.High
}

// DueSummary holds per-bucket due-date counts. The buckets are mutually
// exclusive; due dates beyond the end of the current month fall into none.
type DueSummary struct {
	PastDue      int `json:"past_due"`
	DueToday     int `json:"due_today"`
	DueThisWeek  int `json:"due_this_week"`
	DueThisMonth int `json:"due_this_month"`
}

// ScanSummary is the presentation-ready result of one scan invocation.
type ScanSummary struct {
	Total      int             `json:"total"`
	Elapsed    time.Duration   `json:"elapsed"`
	Priorities PrioritySummary `json:"priorities"`
	Due        DueSummary      `json:"due"`
}
