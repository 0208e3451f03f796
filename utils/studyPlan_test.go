package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t time.Time) string { return t.Format("2006-01-02") }

func TestProjectTargetDate(t *testing.T) {
	// a Monday
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	// 24h at 6h/week is four weeks; the target lands on that week's Saturday
	assert.Equal(t, "2026-02-07", day(ProjectTargetDate(start, 6, 24)))

	// partial weeks round up
	assert.Equal(t, "2026-01-31", day(ProjectTargetDate(start, 4, 10)))

	// a plan never spans less than one week
	assert.Equal(t, "2026-01-17", day(ProjectTargetDate(start, 40, 2)))
	assert.Equal(t, "2026-01-17", day(ProjectTargetDate(start, 6, 0)))
}

func TestProjectTargetDateClampsHours(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	// zero or negative hours per week behave like one hour per week
	assert.Equal(t, day(ProjectTargetDate(start, 1, 5)), day(ProjectTargetDate(start, 0, 5)))
	assert.Equal(t, day(ProjectTargetDate(start, 1, 5)), day(ProjectTargetDate(start, -3, 5)))
}
