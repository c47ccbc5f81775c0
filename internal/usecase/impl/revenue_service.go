package impl

import (
	"context"
	"log/slog"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/report"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/usecase"
	"drinkpos/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLowStockThreshold = 5

type revenueService struct {
	orderRepo         repository.OrderRepository
	menuRepo          repository.MenuItemRepository
	userRepo          repository.UserRepository
	location          *time.Location
	lowStockThreshold int
	logger            *slog.Logger
}

// RevenueServiceParams holds dependencies for RevenueService, injected by Fx.
type RevenueServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	MenuRepo  repository.MenuItemRepository
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRevenueService creates a new revenue service instance
func NewRevenueService(params RevenueServiceParams) usecase.RevenueUsecase {
	shop := shopConfig(params.Config)

	threshold := defaultLowStockThreshold
	if shop != nil && shop.LowStockThreshold > 0 {
		threshold = shop.LowStockThreshold
	}

	return &revenueService{
		orderRepo:         params.OrderRepo,
		menuRepo:          params.MenuRepo,
		userRepo:          params.UserRepo,
		location:          shop.Location(),
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

func (s *revenueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Report aggregates every stored order through filter and sort
func (s *revenueService) Report(ctx context.Context, filter report.Filter, sort report.SortOrder) (*report.Result, error) {
	if filter.Location == nil {
		filter.Location = s.location
	}
	if sort == "" {
		sort = report.SortTimeDesc
	}
	if !sort.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid sort order")
	}
	if err := filter.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	orders, err := s.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	result := report.Aggregate(orders, filter, sort)
	s.log(ctx).Debug("Revenue report built",
		slog.Int("scanned", len(orders)),
		slog.Int("matched", result.Count),
		slog.Int64("total", result.Total),
	)

	return &result, nil
}

// Dashboard summarises one business day
func (s *revenueService) Dashboard(ctx context.Context, day string) (*usecase.DashboardOutput, error) {
	if day == "" {
		day = util.FormatDate(time.Now(), s.location)
	}

	result, err := s.Report(ctx, report.Filter{From: day, To: day, Location: s.location}, report.SortTimeDesc)
	if err != nil {
		return nil, err
	}

	online, err := s.userRepo.CountOnline(ctx, entity.RoleStaff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count online staff")
	}

	lowStock, err := s.menuRepo.ListLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list low stock items")
	}

	return &usecase.DashboardOutput{
		Date:        day,
		Revenue:     result.Total,
		ItemsSold:   result.ItemsSold,
		OrderCount:  result.Count,
		ByMethod:    result.ByMethod,
		OnlineStaff: online,
		LowStock:    lowStock,
	}, nil
}
