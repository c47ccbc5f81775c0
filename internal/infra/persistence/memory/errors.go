package memory

import domainerrors "drinkpos/internal/domain/errors"

// Constraint failures mirror what the postgres repositories report for the same violations.

func errInvalid(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

func errConflict(details string) error {
	return domainerrors.ErrConflict.WithDetails(details)
}
