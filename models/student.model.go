package models

import "gorm.io/datatypes"

// Student roles
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Student represents a learner profile
type Student struct {
	ID              string                      `json:"id" gorm:"primaryKey"`
	Name            string                      `json:"name"`
	Email           string                      `json:"email" gorm:"uniqueIndex"`
	Avatar          string                      `json:"avatar"`
	Role            string                      `json:"role"` // student | admin
	Points          int                         `json:"points"`
	Rank            int                         `json:"rank"`
	EnrolledCourses datatypes.JSONSlice[string] `json:"enrolledCourses"`
	ProjectIDs      datatypes.JSONSlice[string] `json:"projectIds,omitempty"`
}

// TableName maps Student onto the backend's profiles table
func (Student) TableName() string { return "profiles" }
