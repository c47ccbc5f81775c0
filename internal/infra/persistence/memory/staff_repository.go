package memory

import (
	"cmp"
	"context"
	"slices"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type shiftRepository struct {
	store *Store
}

// NewShiftRepository creates a shift repository over store.
func NewShiftRepository(store *Store) repository.ShiftRepository {
	return &shiftRepository{store: store}
}

func cloneShift(shift *entity.Shift) *entity.Shift {
	out := *shift
	out.StaffIDs = slices.Clone(shift.StaffIDs)

	return &out
}

func (repo *shiftRepository) Create(_ context.Context, shift *entity.Shift) error {
	return repo.store.do("shifts.Create", func(st *state) error {
		if _, exists := st.shifts[shift.ID]; exists {
			return errConflict("shift already exists")
		}
		st.shifts[shift.ID] = cloneShift(shift)

		return nil
	})
}

func (repo *shiftRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Shift, error) {
	var out *entity.Shift
	err := repo.store.do("shifts.FindByID", func(st *state) error {
		shift, ok := st.shifts[id]
		if !ok {
			return repository.ErrShiftNotFound
		}
		out = cloneShift(shift)

		return nil
	})

	return out, err
}

// List bounds are inclusive YYYY-MM-DD dates; an empty bound is open.
func (repo *shiftRepository) List(_ context.Context, from, to string) ([]*entity.Shift, error) {
	return repo.collect("shifts.List", func(shift *entity.Shift) bool {
		return (from == "" || shift.Date >= from) && (to == "" || shift.Date <= to)
	})
}

func (repo *shiftRepository) ListByStaff(_ context.Context, staffID uuid.UUID) ([]*entity.Shift, error) {
	return repo.collect("shifts.ListByStaff", func(shift *entity.Shift) bool {
		return shift.HasStaff(staffID)
	})
}

func (repo *shiftRepository) collect(op string, keep func(*entity.Shift) bool) ([]*entity.Shift, error) {
	var shifts []*entity.Shift
	err := repo.store.read(op, func(st *state) {
		shifts = make([]*entity.Shift, 0)
		for _, shift := range st.shifts {
			if keep(shift) {
				shifts = append(shifts, cloneShift(shift))
			}
		}
	})
	slices.SortFunc(shifts, func(a, b *entity.Shift) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.StartTime, b.StartTime))
	})

	return shifts, err
}

func (repo *shiftRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.do("shifts.Delete", func(st *state) error {
		if _, ok := st.shifts[id]; !ok {
			return repository.ErrShiftNotFound
		}
		delete(st.shifts, id)

		return nil
	})
}

type checkInRepository struct {
	store *Store
}

// NewCheckInRepository creates a check-in repository over store.
func NewCheckInRepository(store *Store) repository.CheckInRepository {
	return &checkInRepository{store: store}
}

func (repo *checkInRepository) Create(_ context.Context, record *entity.CheckInRecord) error {
	return repo.store.do("checkIns.Create", func(st *state) error {
		if _, exists := st.checkIns[record.ID]; exists {
			return errConflict("check-in already exists")
		}
		stored := *record
		st.checkIns[record.ID] = &stored

		return nil
	})
}

func (repo *checkInRepository) List(_ context.Context, filter repository.CheckInFilter) ([]*entity.CheckInRecord, error) {
	var records []*entity.CheckInRecord
	err := repo.store.read("checkIns.List", func(st *state) {
		records = make([]*entity.CheckInRecord, 0)
		for _, record := range st.checkIns {
			if filter.StaffID != nil && record.StaffID != *filter.StaffID {
				continue
			}
			if !filter.From.IsZero() && record.Timestamp.Before(filter.From) {
				continue
			}
			if !filter.To.IsZero() && !record.Timestamp.Before(filter.To) {
				continue
			}
			out := *record
			records = append(records, &out)
		}
	})
	slices.SortFunc(records, func(a, b *entity.CheckInRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return records, err
}
