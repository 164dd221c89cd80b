package report

import (
	"time"

	"github.com/balintxd/todoscan/internal/models"
)

// CountByPriority counts records per priority level. Records without a
// priority contribute to no count.
func CountByPriority(records []models.Record) models.PrioritySummary {
	var summary models.PrioritySummary
	for _, r := range records {
		if r.Priority == nil {
			continue
		}
		switch *r.Priority {
		case models.PriorityLow:
			summary.Low++
		case models.PriorityMedium:
			summary.Medium++
		case models.PriorityHigh:
			summary.High++
		}
	}
	return summary
}

// BucketByDueDate classifies each record with a due date into exactly
// one time window computed from now: past due, due today, due later
// this week (weeks run Monday through Sunday), or due later this month.
// Due dates beyond the end of the current month are counted nowhere.
func BucketByDueDate(records []models.Record, now time.Time) models.DueSummary {
	today := DateOf(now)
	endOfToday := today.AddDate(0, 0, 1)
	endOfWeek := today.AddDate(0, 0, daysUntilNextMonday(today))
	endOfMonth := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, time.UTC)

	var summary models.DueSummary
	for _, r := range records {
		if r.DueDate == nil {
			continue
		}
		due := *r.DueDate
		switch {
		case due.Before(today):
			summary.PastDue++
		case due.Before(endOfToday):
			summary.DueToday++
		case due.Before(endOfWeek):
			summary.DueThisWeek++
		case due.Before(endOfMonth):
			summary.DueThisMonth++
		}
	}
	return summary
}

// Summarize builds the presentation-ready summary for one scan.
func Summarize(records []models.Record, now time.Time, elapsed time.Duration) models.ScanSummary {
	return models.ScanSummary{
		Total:      len(records),
		Elapsed:    elapsed,
		Priorities: CountByPriority(records),
		Due:        BucketByDueDate(records, now),
	}
}

// DateOf strips the time-of-day component, returning midnight UTC of
// now's calendar date. Record due dates are stored the same way, which
// keeps all bucket comparisons on pure dates.
func DateOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntilNextMonday returns the day count from today (midnight) to the
// start of next week. Sunday is the last day of the week, so the result
// is always in 1..7.
func daysUntilNextMonday(today time.Time) int {
	weekday := int(today.Weekday())
	if weekday == 0 { // time.Sunday
		weekday = 7
	}
	return 8 - weekday
}
