// Package handler contains the echo handlers of the API.
package handler

import (
	"net/http"
	"strconv"

	"drinkpos/internal/delivery/api/response"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// The helpers below return AppErrors; the echo error handler renders them.

// currentUser returns the user set by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// optionalUUIDQuery parses an optional uuid query parameter.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &id, nil
}

// pagination reads limit/offset query parameters, clamping limit to maxPageLimit.
func pagination(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = min(v, maxPageLimit)
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

type messageResponse struct {
	Message string `json:"message"`
}
