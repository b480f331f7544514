package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "Mid-month date",
			date:     time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
			expected: "January 15th, 2024",
		},
		{
			name:     "First of the month",
			date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: "March 1st, 2024",
		},
		{
			name:     "Second of the month",
			date:     time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC),
			expected: "June 2nd, 2024",
		},
		{
			name:     "Third of the month",
			date:     time.Date(2024, 12, 3, 23, 59, 0, 0, time.UTC),
			expected: "December 3rd, 2024",
		},
		{
			name:     "Eleventh keeps th",
			date:     time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC),
			expected: "July 11th, 2024",
		},
		{
			name:     "Twelfth keeps th",
			date:     time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC),
			expected: "July 12th, 2024",
		},
		{
			name:     "Thirteenth keeps th",
			date:     time.Date(2024, 7, 13, 0, 0, 0, 0, time.UTC),
			expected: "July 13th, 2024",
		},
		{
			name:     "Twenty-first gets st",
			date:     time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC),
			expected: "July 21st, 2024",
		},
		{
			name:     "Thirty-first gets st",
			date:     time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
			expected: "October 31st, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDisplayDate(tt.date))
		})
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "order-history-15-01-2024.csv", ExportFilename(now))

	// Day and month are zero-padded
	now = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "order-history-05-03-2024.csv", ExportFilename(now))
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 15, 22, 45, 0, 0, time.UTC)
	nextDay := time.Date(2024, 1, 16, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameCalendarDay(morning, evening), "Time of day should be ignored")
	assert.False(t, SameCalendarDay(evening, nextDay), "Different dates should not match")
	assert.True(t, SameCalendarDay(morning, morning))
}

func TestSameCalendarDayNormalizesLocations(t *testing.T) {
	// 23:30 UTC-5 is 04:30 UTC the next day; a local-time database
	// timestamp must compare on the same absolute instant as a UTC filter
	est := time.FixedZone("UTC-5", -5*60*60)
	lateLocal := time.Date(2024, 1, 15, 23, 30, 0, 0, est)
	sameInstantUTC := lateLocal.UTC()
	filterDay := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(lateLocal, sameInstantUTC),
		"The same instant must match itself regardless of location")
	assert.True(t, SameCalendarDay(lateLocal, filterDay),
		"A late local evening falls on the next UTC day")
	assert.False(t, SameCalendarDay(lateLocal, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
}
