package handler

import (
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShiftHandlerParams holds dependencies for ShiftHandler, injected by Fx.
type ShiftHandlerParams struct {
	fx.In

	ShiftUC usecase.ShiftUsecase
	Logger  *slog.Logger
}

// ShiftHandler schedules staff shifts
type ShiftHandler struct {
	shiftUC usecase.ShiftUsecase
	logger  *slog.Logger
}

// NewShiftHandler is the constructor for ShiftHandler
func NewShiftHandler(params ShiftHandlerParams) *ShiftHandler {
	return &ShiftHandler{
		shiftUC: params.ShiftUC,
		logger:  params.Logger,
	}
}

// CreateShiftRequest schedules one or more staff on a date. Times default to 08:00-16:00.
type CreateShiftRequest struct {
	StaffIDs  []uuid.UUID `json:"staff_ids" validate:"required,min=1"`
	Date      string      `json:"date" validate:"required,date"`
	StartTime string      `json:"start_time" validate:"omitempty,clock"`
	EndTime   string      `json:"end_time" validate:"omitempty,clock"`
	Note      string      `json:"note"`
}

// CreateShift schedules a shift and notifies the assigned staff
func (h *ShiftHandler) CreateShift(c echo.Context) error {
	var req CreateShiftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shift, err := h.shiftUC.CreateShift(c.Request().Context(), &usecase.CreateShiftInput{
		StaffIDs:  req.StaffIDs,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shift)
}

// ListShifts lists shifts between the optional from and to dates
func (h *ShiftHandler) ListShifts(c echo.Context) error {
	shifts, err := h.shiftUC.ListShifts(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shifts)
}

// MyShifts lists the caller's shifts
func (h *ShiftHandler) MyShifts(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	shifts, err := h.shiftUC.ListShiftsForStaff(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shifts)
}

// DeleteShift removes a shift
func (h *ShiftHandler) DeleteShift(c echo.Context) error {
	shiftID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.shiftUC.DeleteShift(c.Request().Context(), shiftID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Shift deleted"})
}
