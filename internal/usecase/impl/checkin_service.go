package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"
	"drinkpos/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkInService struct {
	checkInRepo   repository.CheckInRepository
	userRepo      repository.UserRepository
	uploader      service.AssetUploader
	notifications usecase.NotificationUsecase
	location      *time.Location
	logger        *slog.Logger
}

// CheckInServiceParams holds dependencies for CheckInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	CheckInRepo   repository.CheckInRepository
	UserRepo      repository.UserRepository
	Uploader      service.AssetUploader
	Notifications usecase.NotificationUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCheckInService creates a new check-in service instance
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo:   params.CheckInRepo,
		userRepo:      params.UserRepo,
		uploader:      params.Uploader,
		notifications: params.Notifications,
		location:      shopConfig(params.Config).Location(),
		logger:        params.Logger,
	}
}

func (s *checkInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CheckIn records an arrival or departure from coordinates, or from a photo when geolocation failed
func (s *checkInService) CheckIn(ctx context.Context, input *usecase.CheckInInput) (*entity.CheckInRecord, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type must be in or out")
	}

	staff, err := s.userRepo.FindByID(ctx, input.StaffID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff")
	}

	record := &entity.CheckInRecord{
		ID:        uuid.New(),
		StaffID:   staff.ID,
		Timestamp: time.Now(),
		Type:      input.Type,
	}

	switch {
	case input.Location != nil:
		if err := validateCoordinates(input.Location); err != nil {
			return nil, err
		}
		record.Latitude = input.Location.Latitude
		record.Longitude = input.Location.Longitude
		record.Address = strings.TrimSpace(input.Location.Address)
	case input.Photo != nil:
		url, err := uploadAsset(ctx, s.uploader, s.logger, input.Photo.File, input.Photo.Filename, FolderCheckIn)
		if err != nil {
			return nil, err
		}
		record.ImageURL = url
	default:
		return nil, domainerrors.ErrMissingCheckInData
	}

	if err := s.checkInRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create check-in")
	}

	s.log(ctx).Info("Staff checked",
		slog.String("staffID", staff.ID.String()),
		slog.String("type", string(record.Type)),
		slog.Bool("photoFallback", record.UsedPhotoFallback()),
	)

	message := fmt.Sprintf("%s đã %s lúc %s", staff.DisplayName(), record.Type.Label(), record.Timestamp.In(s.location).Format("15:04 02/01"))
	if _, err := s.notifications.NotifyRole(ctx, entity.RoleAdmin, message, entity.NotificationTypeSystem); err != nil {
		s.log(ctx).Warn("Failed to notify admins about check-in", slog.String("checkInID", record.ID.String()), slog.Any("error", err))
	}

	return record, nil
}

// ListCheckIns returns records of one staff member or everyone, optionally limited to a day
func (s *checkInService) ListCheckIns(ctx context.Context, staffID *uuid.UUID, day string) ([]*entity.CheckInRecord, error) {
	filter := repository.CheckInFilter{StaffID: staffID}

	if day = strings.TrimSpace(day); day != "" {
		date, err := util.ParseDate(day, s.location)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("day must be YYYY-MM-DD")
		}
		filter.From, filter.To = util.DayBounds(date, s.location)
	}

	records, err := s.checkInRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	return records, nil
}

func validateCoordinates(loc *usecase.GeoLocation) error {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) ||
		loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}
