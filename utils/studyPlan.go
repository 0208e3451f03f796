package utils

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

// ProjectTargetDate projects a study-plan completion date: the end of the
// week reached after ceil(durationHours/hoursPerWeek) weeks from the start
// date. A plan always spans at least one week.
func ProjectTargetDate(start time.Time, hoursPerWeek, durationHours int) time.Time {
	if hoursPerWeek < 1 {
		hoursPerWeek = 1
	}
	weeks := int(math.Ceil(float64(durationHours) / float64(hoursPerWeek)))
	if weeks < 1 {
		weeks = 1
	}
	return now.With(start.AddDate(0, 0, weeks*7)).EndOfWeek()
}
