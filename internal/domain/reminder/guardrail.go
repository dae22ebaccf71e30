// internal/domain/reminder/guardrail.go
package reminder

import "time"

const (
	hoursPerDay          = 24
	quarterEndLeadInDays = 7
)

// IsTwoDaysBeforeMonthEnd reports whether date is the second-to-last day of its month.
func IsTwoDaysBeforeMonthEnd(date time.Time) bool {
	date = DateOf(date)
	return date.Day() == LastDayOfMonth(date.Year(), date.Month())-1
}

// IsOneWeekBeforeQuarterEnd reports whether date is exactly seven days before
// the last calendar day of its quarter (Mar 31, Jun 30, Sep 30 or Dec 31).
func IsOneWeekBeforeQuarterEnd(date time.Time) bool {
	date = DateOf(date)
	return int(QuarterEnd(date).Sub(date).Hours()/hoursPerDay) == quarterEndLeadInDays
}

// QuarterEnd returns the last calendar day of the quarter containing date.
func QuarterEnd(date time.Time) time.Time {
	date = DateOf(date)
	qMonth := time.Month(((int(date.Month())-1)/3 + 1) * 3)
	return time.Date(date.Year(), qMonth, LastDayOfMonth(date.Year(), qMonth), 0, 0, 0, 0, time.UTC)
}

// PermitsSend decides whether a reminder of the given mode may go out on date.
// Weekly reminders have no date guardrail; the scheduler's weekly cadence is trusted.
func PermitsSend(mode Mode, date time.Time) bool {
	switch mode {
	case ModeWeekly:
		return true
	case ModeMonthly:
		return IsTwoDaysBeforeMonthEnd(date)
	case ModeQuarterly:
		return IsOneWeekBeforeQuarterEnd(date)
	default:
		return false
	}
}

// SkipNotice is the informational line printed when PermitsSend rejects a date.
func SkipNotice(mode Mode) string {
	switch mode {
	case ModeMonthly:
		return "Not 2 days before month-end; skipping."
	case ModeQuarterly:
		return "Not 1 week before quarter-end; skipping."
	default:
		return "Not a " + mode.String() + " send day; skipping."
	}
}
