package postgres

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shiftRepository implements the repository.ShiftRepository interface.
type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository is the constructor for shiftRepository.
func NewShiftRepository(db *gorm.DB) repository.ShiftRepository {
	return &shiftRepository{
		db: db,
	}
}

// Create persists a new shift.
func (repo *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	if err := repo.db.WithContext(ctx).Create(fromShiftDomain(shift)).Error; err != nil {
		return storeError(err, "failed to create shift")
	}

	return nil
}

// FindByID retrieves a single shift.
func (repo *shiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	var shiftM model.ShiftModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shiftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find shift by ID")
	}

	return toShiftDomain(&shiftM), nil
}

// List retrieves shifts between from and to. Dates are YYYY-MM-DD so string order is date order.
func (repo *shiftRepository) List(ctx context.Context, from, to string) ([]*entity.Shift, error) {
	query := repo.db.WithContext(ctx).Order("date ASC, start_time ASC")
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	var shiftModels []*model.ShiftModel
	if err := query.Find(&shiftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shifts")
	}

	return toShiftDomains(shiftModels), nil
}

// ListByStaff retrieves the shifts a staff member is scheduled on.
func (repo *shiftRepository) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*entity.Shift, error) {
	var shiftModels []*model.ShiftModel

	if err := repo.db.WithContext(ctx).
		Where("? = ANY(staff_ids)", staffID.String()).
		Order("date ASC, start_time ASC").
		Find(&shiftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shifts by staff")
	}

	return toShiftDomains(shiftModels), nil
}

// Delete removes a shift.
func (repo *shiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShiftModel{})

	if result.Error != nil {
		return storeError(result.Error, "failed to delete shift")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShiftNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShiftDomain(data *model.ShiftModel) *entity.Shift {
	if data == nil {
		return nil
	}

	staffIDs := make([]uuid.UUID, 0, len(data.StaffIDs))
	for _, raw := range data.StaffIDs {
		if id, err := uuid.Parse(raw); err == nil {
			staffIDs = append(staffIDs, id)
		}
	}

	return &entity.Shift{
		ID:        data.ID,
		StaffIDs:  staffIDs,
		Date:      data.Date,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Note:      data.Note,
	}
}

func toShiftDomains(models []*model.ShiftModel) []*entity.Shift {
	shifts := make([]*entity.Shift, 0, len(models))
	for _, shiftM := range models {
		shifts = append(shifts, toShiftDomain(shiftM))
	}

	return shifts
}

func fromShiftDomain(data *entity.Shift) *model.ShiftModel {
	if data == nil {
		return nil
	}

	staffIDs := make(pq.StringArray, 0, len(data.StaffIDs))
	for _, id := range data.StaffIDs {
		staffIDs = append(staffIDs, id.String())
	}

	return &model.ShiftModel{
		ID:        data.ID,
		StaffIDs:  staffIDs,
		Date:      data.Date,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Note:      data.Note,
	}
}
