package models

import (
	"time"

	"gorm.io/datatypes"
)

// Social feed sources
const (
	SourceTwitter  = "twitter"
	SourceLinkedin = "linkedin"
)

// SocialPost is a read-only, externally sourced feed entry
type SocialPost struct {
	ID        string                      `json:"id" gorm:"primaryKey"`
	Source    string                      `json:"source"` // twitter | linkedin
	Content   string                      `json:"content"`
	Likes     int                         `json:"likes"`
	Shares    int                         `json:"shares"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt time.Time                   `json:"timestamp"`
}
