package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/report"
)

// DashboardOutput summarises a business day.
type DashboardOutput struct {
	Date        string                         `json:"date"`
	Revenue     int64                          `json:"revenue"`
	ItemsSold   int                            `json:"items_sold"`
	OrderCount  int                            `json:"order_count"`
	ByMethod    map[entity.PaymentMethod]int64 `json:"by_method"`
	OnlineStaff int64                          `json:"online_staff"`
	LowStock    []*entity.MenuItem             `json:"low_stock"`
}

// RevenueUsecase defines revenue reporting.
type RevenueUsecase interface {
	// Report aggregates every stored order through filter and sort.
	Report(ctx context.Context, filter report.Filter, sort report.SortOrder) (*report.Result, error)

	// Dashboard summarises day (YYYY-MM-DD, empty for today in the shop zone).
	Dashboard(ctx context.Context, day string) (*DashboardOutput, error)
}
