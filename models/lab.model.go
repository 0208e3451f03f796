package models

import (
	"time"

	"gorm.io/datatypes"
)

// Asset statuses
const (
	AssetAvailable   = "Available"
	AssetInUse       = "In Use"
	AssetMaintenance = "Maintenance"
)

// Lab is a physical maker space
type Lab struct {
	ID          string                      `json:"id" gorm:"primaryKey"`
	Name        string                      `json:"name"`
	Type        string                      `json:"type"`
	Capacity    int                         `json:"capacity"`
	Consumables datatypes.JSONSlice[string] `json:"consumables"`
}

// Asset is a bookable piece of lab equipment
type Asset struct {
	ID                    string `json:"id" gorm:"primaryKey"`
	LabID                 string `json:"labId" gorm:"index"`
	Name                  string `json:"name"`
	Status                string `json:"status"` // Available | In Use | Maintenance
	CertificationRequired bool   `json:"certificationRequired"`
}

// DigitalAsset is a downloadable resource attached to a lab
type DigitalAsset struct {
	ID    string `json:"id" gorm:"primaryKey"`
	LabID string `json:"labId" gorm:"index"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// Booking reserves an asset for a time slot. Bookings are created, never
// modified.
type Booking struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	AssetID       string    `json:"assetId" gorm:"index"`
	StudentID     string    `json:"studentId" gorm:"index"`
	Date          string    `json:"date"`      // YYYY-MM-DD
	StartTime     string    `json:"startTime"` // HH:MM
	DurationHours int       `json:"durationHours"`
	Purpose       string    `json:"purpose"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
