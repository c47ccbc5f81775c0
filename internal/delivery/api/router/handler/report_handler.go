package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/report"
	"drinkpos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	RevenueUC usecase.RevenueUsecase
	Logger    *slog.Logger
}

// ReportHandler serves revenue reports and the daily dashboard
type ReportHandler struct {
	revenueUC usecase.RevenueUsecase
	logger    *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		revenueUC: params.RevenueUC,
		logger:    params.Logger,
	}
}

// Revenue aggregates orders matching the query filters.
//
// Query: from, to (YYYY-MM-DD, inclusive), method, staff_id, item_id, min_total, max_total, q, sort.
func (h *ReportHandler) Revenue(c echo.Context) error {
	filter, err := revenueFilter(c)
	if err != nil {
		return err
	}

	result, err := h.revenueUC.Report(c.Request().Context(), filter, report.SortOrder(c.QueryParam("sort")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Dashboard summarises one business day, today by default
func (h *ReportHandler) Dashboard(c echo.Context) error {
	out, err := h.revenueUC.Dashboard(c.Request().Context(), c.QueryParam("day"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func revenueFilter(c echo.Context) (report.Filter, error) {
	filter := report.Filter{
		From:          c.QueryParam("from"),
		To:            c.QueryParam("to"),
		PaymentMethod: entity.PaymentMethod(c.QueryParam("method")),
		Search:        c.QueryParam("q"),
	}

	var err error
	if filter.StaffID, err = optionalUUIDQuery(c, "staff_id"); err != nil {
		return filter, err
	}
	if filter.ItemID, err = optionalUUIDQuery(c, "item_id"); err != nil {
		return filter, err
	}
	if filter.MinTotal, err = optionalInt64Query(c, "min_total"); err != nil {
		return filter, err
	}
	if filter.MaxTotal, err = optionalInt64Query(c, "max_total"); err != nil {
		return filter, err
	}

	return filter, nil
}

func optionalInt64Query(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &v, nil
}
