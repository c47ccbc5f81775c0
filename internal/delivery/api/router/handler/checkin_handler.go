package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler records staff attendance
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// CheckIn accepts a multipart form with type plus either lat/lng[/address] or a photo file.
func (h *CheckInHandler) CheckIn(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	input := &usecase.CheckInInput{
		StaffID: user.ID,
		Type:    entity.CheckInType(c.FormValue("type")),
	}

	if lat, lng := c.FormValue("lat"), c.FormValue("lng"); lat != "" || lng != "" {
		location, err := parseLocation(lat, lng)
		if err != nil {
			return err
		}
		location.Address = c.FormValue("address")
		input.Location = location
	} else if fileHeader, err := c.FormFile("photo"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("unreadable photo")
		}
		defer file.Close()

		input.Photo = &usecase.Photo{File: file, Filename: fileHeader.Filename}
	}

	record, err := h.checkInUC.CheckIn(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// ListCheckIns lists attendance records. Admins see everyone unless staff_id is given; staff see their own.
func (h *CheckInHandler) ListCheckIns(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var staffID *uuid.UUID
	if user.IsAdmin() {
		if staffID, err = optionalUUIDQuery(c, "staff_id"); err != nil {
			return err
		}
	} else {
		staffID = &user.ID
	}

	records, err := h.checkInUC.ListCheckIns(c.Request().Context(), staffID, c.QueryParam("day"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

func parseLocation(lat, lng string) (*usecase.GeoLocation, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid lat")
	}

	longitude, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid lng")
	}

	return &usecase.GeoLocation{Latitude: latitude, Longitude: longitude}, nil
}
