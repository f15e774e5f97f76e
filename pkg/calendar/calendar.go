package calendar

import "time"

// MondayIndex converts a time.Weekday to the 0=Monday..6=Sunday
// convention used for office days.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// AllDatesInMonth returns every calendar day of the month in ascending
// order. Dates are midnight UTC.
func AllDatesInMonth(year int, month time.Month) []time.Time {
	// Day 0 of the next month is the last day of this one.
	numDays := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	dates := make([]time.Time, 0, numDays)
	for d := 1; d <= numDays; d++ {
		dates = append(dates, time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}
	return dates
}

// WorkingDatesInMonth returns only the Monday-Friday dates of the month,
// ascending. Holidays and closures are not filtered here.
func WorkingDatesInMonth(year int, month time.Month) []time.Time {
	var dates []time.Time
	for _, d := range AllDatesInMonth(year, month) {
		if MondayIndex(d.Weekday()) < 5 {
			dates = append(dates, d)
		}
	}
	return dates
}
