package errors

import (
	"drinkpos/internal/errors"
)

// AsAppError extracts the AppError from err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// ToAppError returns err as an AppError, falling back to ErrInternalError with err as details.
func ToAppError(err error) AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	return ErrInternalError.WithDetails(err.Error())
}
