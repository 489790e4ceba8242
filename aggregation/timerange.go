package aggregation

import (
	"time"

	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/types"
)

// DateOnly strips the time-of-day component in the given location.
// All window comparisons are calendar-date comparisons.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()

	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Window resolves a named time range to inclusive [start, end] calendar
// bounds, evaluated against now.
func Window(window types.TimeRange, now time.Time, loc *time.Location, customStart, customEnd *time.Time) (time.Time, time.Time) {
	today := DateOnly(now, loc)

	switch window {
	case types.RangeToday:
		return today, today
	case types.RangeYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return yesterday, yesterday
	case types.Range7Days:
		return today.AddDate(0, 0, -6), today
	case types.Range14Days:
		return today.AddDate(0, 0, -13), today
	case types.Range30Days:
		return today.AddDate(0, 0, -29), today
	case types.RangeMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, -1)
	case types.RangeCustom:
		if customStart == nil || customEnd == nil {
			return today, today
		}
		return DateOnly(*customStart, loc), DateOnly(*customEnd, loc)
	default:
		return today, today
	}
}

// FilterByTimeRange returns the transactions whose calendar date falls
// inside the window, both bounds inclusive. Pure: the input slice is
// never mutated and identical inputs yield identical outputs.
func FilterByTimeRange(transactions []models.Transaction, window types.TimeRange, now time.Time, loc *time.Location, customStart, customEnd *time.Time) []models.Transaction {
	start, end := Window(window, now, loc, customStart, customEnd)

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		date := DateOnly(transaction.Date, loc)
		if date.Before(start) || date.After(end) {
			continue
		}

		filtered = append(filtered, transaction)
	}

	return filtered
}
