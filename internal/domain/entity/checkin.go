// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckInType distinguishes arriving from leaving.
type CheckInType string

const (
	CheckInTypeIn  CheckInType = "in"
	CheckInTypeOut CheckInType = "out"
)

// IsValid checks if the CheckInType is a valid value.
func (t CheckInType) IsValid() bool {
	return t == CheckInTypeIn || t == CheckInTypeOut
}

// Label returns the Vietnamese label for notifications.
func (t CheckInType) Label() string {
	if t == CheckInTypeOut {
		return "check-out"
	}

	return "check-in"
}

// CheckInRecord is an append-only attendance record.
type CheckInRecord struct {
	ID        uuid.UUID   `json:"id"`
	StaffID   uuid.UUID   `json:"staff_id"`
	Timestamp time.Time   `json:"timestamp"`
	Latitude  float64     `json:"latitude"`  // 0 when the photo fallback was used.
	Longitude float64     `json:"longitude"` // 0 when the photo fallback was used.
	Address   string      `json:"address,omitempty"`
	Type      CheckInType `json:"type"`
	ImageURL  string      `json:"image_url,omitempty"`
}

// UsedPhotoFallback reports whether the record was created from a photo instead of coordinates.
func (r *CheckInRecord) UsedPhotoFallback() bool {
	return r.ImageURL != "" && r.Latitude == 0 && r.Longitude == 0
}
