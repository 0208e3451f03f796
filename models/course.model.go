package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course categories form a closed set. Adapters pass unrecognized values
// through untouched so newer backends don't break older clients.
const (
	CategoryCoding           = "Coding"
	CategoryDesign           = "Design"
	CategoryElectronics      = "Electronics"
	CategoryRobotics         = "Robotics"
	Category3DPrinting       = "3D Printing"
	CategoryScience          = "Science"
	CategoryEntrepreneurship = "Entrepreneurship"
)

// Course difficulty levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// CurriculumModule is one section of a course curriculum
type CurriculumModule struct {
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// Course represents a catalog course
type Course struct {
	ID             string                      `json:"id" gorm:"primaryKey"`
	Title          string                      `json:"title"`
	Category       string                      `json:"category"`
	DurationHours  int                         `json:"durationHours"`
	Description    string                      `json:"description"`
	Instructor     string                      `json:"instructor"`
	Level          string                      `json:"level"` // Beginner, Intermediate, Advanced
	Thumbnail      string                      `json:"thumbnail"`
	VideoURL       string                      `json:"videoUrl,omitempty"`
	Resources      datatypes.JSONSlice[string] `json:"resources,omitempty"`
	LearningPoints datatypes.JSONSlice[string] `json:"learningPoints,omitempty"`
	Prerequisites  datatypes.JSONSlice[string] `json:"prerequisites,omitempty"`
	Curriculum     []CurriculumModule          `json:"curriculum,omitempty" gorm:"serializer:json"`
	RewardPoints   int                         `json:"rewardPoints"` // points awarded on completion
	CreatedAt      time.Time                   `json:"createdAt,omitempty"`
}
