// Package report implements filtering, aggregation and export of scan
// records. All functions here are pure over their record slice input;
// the input is never mutated.
package report

import (
	"fmt"
	"time"

	"github.com/balintxd/todoscan/internal/logger"
	"github.com/balintxd/todoscan/internal/models"
)

// FilterByResponsible keeps records whose responsibles list contains
// user (case-sensitive exact match).
func FilterByResponsible(records []models.Record, user string) []models.Record {
	filtered := make([]models.Record, 0)
	for _, r := range records {
		if r.HasResponsible(user) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByPriority keeps records whose priority equals level. An
// unrecognized level is reported as a warning and matches nothing, since
// no record can carry an invalid priority.
func FilterByPriority(records []models.Record, level string, log logger.Logger) []models.Record {
	filtered := make([]models.Record, 0)

	prio, err := models.ParsePriority(level)
	if err != nil {
		if log != nil {
			log.LogWarn(fmt.Sprintf("priority filter: %v", err))
		}
		return filtered
	}

	for _, r := range records {
		if r.Priority != nil && *r.Priority == prio {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByDueBefore keeps records whose due date is present and on or
// before date.
func FilterByDueBefore(records []models.Record, date time.Time) []models.Record {
	filtered := make([]models.Record, 0)
	for _, r := range records {
		if r.DueDate != nil && !r.DueDate.After(date) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
