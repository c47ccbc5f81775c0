// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

const (
	// DefaultShiftStart is used when a shift is created without a start time.
	DefaultShiftStart = "08:00"
	// DefaultShiftEnd is used when a shift is created without an end time.
	DefaultShiftEnd = "16:00"
)

// Shift is a scheduled work window for one or more staff members.
type Shift struct {
	ID        uuid.UUID   `json:"id"`
	StaffIDs  []uuid.UUID `json:"staff_ids"`
	Date      string      `json:"date"`       // YYYY-MM-DD.
	StartTime string      `json:"start_time"` // HH:MM.
	EndTime   string      `json:"end_time"`   // HH:MM.
	Note      string      `json:"note,omitempty"`
}

// HasStaff reports whether staffID is scheduled on the shift.
func (s *Shift) HasStaff(staffID uuid.UUID) bool {
	for _, id := range s.StaffIDs {
		if id == staffID {
			return true
		}
	}

	return false
}
