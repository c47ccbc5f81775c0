package postgres

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkInRepository implements the repository.CheckInRepository interface.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{
		db: db,
	}
}

// Create appends a record.
func (repo *checkInRepository) Create(ctx context.Context, record *entity.CheckInRecord) error {
	if err := repo.db.WithContext(ctx).Create(fromCheckInDomain(record)).Error; err != nil {
		return storeError(err, "failed to create check-in")
	}

	return nil
}

// List retrieves records matching filter, newest first.
func (repo *checkInRepository) List(ctx context.Context, filter repository.CheckInFilter) ([]*entity.CheckInRecord, error) {
	query := repo.db.WithContext(ctx).Order("timestamp DESC")
	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if !filter.From.IsZero() {
		query = query.Where("timestamp >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("timestamp < ?", filter.To)
	}

	var recordModels []*model.CheckInModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	records := make([]*entity.CheckInRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toCheckInDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toCheckInDomain(data *model.CheckInModel) *entity.CheckInRecord {
	if data == nil {
		return nil
	}

	return &entity.CheckInRecord{
		ID:        data.ID,
		StaffID:   data.StaffID,
		Timestamp: data.Timestamp,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Address:   data.Address,
		Type:      entity.CheckInType(data.Type),
		ImageURL:  data.ImageURL,
	}
}

func fromCheckInDomain(data *entity.CheckInRecord) *model.CheckInModel {
	if data == nil {
		return nil
	}

	return &model.CheckInModel{
		ID:        data.ID,
		StaffID:   data.StaffID,
		Timestamp: data.Timestamp,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Address:   data.Address,
		Type:      string(data.Type),
		ImageURL:  data.ImageURL,
	}
}
