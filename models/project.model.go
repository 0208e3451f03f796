package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project statuses
const (
	ProjectIdea      = "Idea"
	ProjectPrototype = "Prototype"
	ProjectLaunched  = "Launched"
)

// Project represents an innovation-showcase entry
type Project struct {
	ID           string                      `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title"`
	Description  string                      `json:"description"`
	Category     string                      `json:"category"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Thumbnail    string                      `json:"thumbnail"`
	AuthorID     string                      `json:"authorId"`
	AuthorName   string                      `json:"authorName"`
	AuthorAvatar string                      `json:"authorAvatar"`
	Likes        int                         `json:"likes"`
	Status       string                      `json:"status"` // Idea | Prototype | Launched
	DemoURL      string                      `json:"demoUrl,omitempty"`
	RepoURL      string                      `json:"repoUrl,omitempty"`
	CreatedAt    time.Time                   `json:"timestamp"`
}
