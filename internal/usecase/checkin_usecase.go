package usecase

import (
	"context"
	"io"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// GeoLocation is a device position at check-in time.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Photo is the fallback evidence when geolocation is unavailable.
type Photo struct {
	File     io.Reader
	Filename string
}

// CheckInInput defines one check-in or check-out. Location or Photo is required.
type CheckInInput struct {
	StaffID  uuid.UUID
	Type     entity.CheckInType
	Location *GeoLocation
	Photo    *Photo
}

// CheckInUsecase defines staff attendance.
type CheckInUsecase interface {
	CheckIn(ctx context.Context, input *CheckInInput) (*entity.CheckInRecord, error)
	ListCheckIns(ctx context.Context, staffID *uuid.UUID, day string) ([]*entity.CheckInRecord, error)
}
