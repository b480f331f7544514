package utils

import (
	"fmt"
	"time"
)

const (
	// CSVTimestampLayout is the machine-oriented timestamp format used in
	// CSV exports. It must not be conflated with the on-screen display form.
	CSVTimestampLayout = "2006-01-02 15:04:05"
	// ExportFilenameDateLayout is the date portion of export filenames
	ExportFilenameDateLayout = "02-01-2006"
	// CalendarDayLayout is used when two timestamps are compared at
	// day granularity (time-of-day ignored)
	CalendarDayLayout = "2006-01-02"
)

// FormatDisplayDate renders a date in the long human-readable form used by
// on-screen tables, e.g. "January 15th, 2024".
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Month().String(), ordinal(t.Day()), t.Year())
}

// ExportFilename builds the dated filename for a history export,
// e.g. "order-history-15-01-2024.csv".
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("order-history-%s.csv", now.Format(ExportFilenameDateLayout))
}

// SameCalendarDay reports whether two timestamps fall on the same calendar
// date, ignoring time-of-day. Both sides are normalized to UTC first so a
// local-time timestamp from the database compares consistently against a
// UTC-parsed filter date.
func SameCalendarDay(a, b time.Time) bool {
	return a.UTC().Format(CalendarDayLayout) == b.UTC().Format(CalendarDayLayout)
}

// ordinal returns a day-of-month with its English ordinal suffix
func ordinal(day int) string {
	suffix := "th"
	// 11th, 12th, 13th keep "th" despite ending in 1, 2, 3
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
