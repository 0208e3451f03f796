package models

import "time"

// StudyPlan is the caller-supplied plan when enrolling in a course
type StudyPlan struct {
	PlannedHoursPerWeek  int       `json:"plannedHoursPerWeek"`
	StartDate            time.Time `json:"startDate"`
	TargetCompletionDate time.Time `json:"targetCompletionDate,omitempty"`
}

// Enrollment links one student to one course. At most one row exists per
// (studentId, courseId) pair; enrolling again updates the plan in place.
type Enrollment struct {
	StudentID            string    `json:"studentId" gorm:"primaryKey"`
	CourseID             string    `json:"courseId" gorm:"primaryKey"`
	Progress             int       `json:"progress"` // percent, 0-100
	PlannedHoursPerWeek  int       `json:"plannedHoursPerWeek"`
	StartDate            time.Time `json:"startDate"`
	TargetCompletionDate time.Time `json:"targetCompletionDate"`
	XPEarned             int       `json:"xpEarned,omitempty"`
}
