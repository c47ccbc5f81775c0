package postgres

import (
	"strings"

	domainerrors "drinkpos/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInsufficientPrivs   = "42501"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}

func isPermissionDenied(err error) bool {
	return pgErrorCode(err) == pgInsufficientPrivs
}

// storeError converts a driver error into the domain taxonomy.
// Permission failures stay distinct from generic execution failures.
func storeError(err error, details string) error {
	switch {
	case err == nil:
		return nil
	case isPermissionDenied(err):
		return domainerrors.ErrStorePermissionDenied.WithDetails(details)
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details + ": check constraint violated")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details + ": missing required field")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrConflict.WithDetails(details + ": invalid reference")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
