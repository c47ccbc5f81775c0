// Package report aggregates confirmed orders into revenue figures.
// Aggregate is a pure function: it performs no I/O and the result depends only on its inputs.
package report

import (
	"slices"
	"strings"
	"time"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SortOrder selects the order of Result.Orders.
type SortOrder string

const (
	SortTimeDesc  SortOrder = "time-desc"
	SortTimeAsc   SortOrder = "time-asc"
	SortTotalDesc SortOrder = "price-desc"
	SortTotalAsc  SortOrder = "price-asc"
)

// IsValid checks if the SortOrder is a valid value.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortTimeDesc, SortTimeAsc, SortTotalDesc, SortTotalAsc:
		return true
	default:
		return false
	}
}

// ErrInvalidDateRange is returned when the range end is before its start.
var ErrInvalidDateRange = errors.New("date range end is before start")

// Filter selects the orders counted by Aggregate. Zero values match everything.
type Filter struct {
	From          string               // Inclusive YYYY-MM-DD in Location.
	To            string               // Inclusive YYYY-MM-DD in Location.
	Location      *time.Location       // Shop time zone; nil means UTC.
	PaymentMethod entity.PaymentMethod // Empty matches all methods.
	StaffID       *uuid.UUID
	ItemID        *uuid.UUID // Matches a line's item id or its parent id.
	MinTotal      *int64
	MaxTotal      *int64
	Search        string // Case-insensitive on order id and customer name, substring on phone.
}

// Validate checks the date bounds parse and are ordered.
func (f Filter) Validate() error {
	loc := f.location()

	fromDay, toDay := f.bounds()

	var from, to time.Time
	var err error
	if fromDay != "" {
		if from, err = util.ParseDate(fromDay, loc); err != nil {
			return err
		}
	}
	if toDay != "" {
		if to, err = util.ParseDate(toDay, loc); err != nil {
			return err
		}
	}
	if fromDay != "" && toDay != "" && to.Before(from) {
		return ErrInvalidDateRange
	}
	if f.PaymentMethod != "" && !f.PaymentMethod.IsValid() {
		return errors.Errorf("invalid payment method %q", f.PaymentMethod)
	}

	return nil
}

// bounds returns the date bounds with surrounding whitespace removed.
func (f Filter) bounds() (string, string) {
	return strings.TrimSpace(f.From), strings.TrimSpace(f.To)
}

func (f Filter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}

	return f.Location
}

// Matches reports whether order passes every filter criterion.
func (f Filter) Matches(order *entity.Order) bool {
	if order == nil || order.Status != entity.OrderStatusCompleted {
		return false
	}

	// YYYY-MM-DD strings order lexicographically like dates.
	fromDay, toDay := f.bounds()
	day := util.FormatDate(order.EffectiveDate(), f.location())
	if fromDay != "" && day < fromDay {
		return false
	}
	if toDay != "" && day > toDay {
		return false
	}

	if f.PaymentMethod != "" && order.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.StaffID != nil && order.StaffID != *f.StaffID {
		return false
	}
	if f.ItemID != nil && !order.ContainsItem(*f.ItemID) {
		return false
	}
	if f.MinTotal != nil && order.Total < *f.MinTotal {
		return false
	}
	if f.MaxTotal != nil && order.Total > *f.MaxTotal {
		return false
	}

	return f.matchesSearch(order)
}

func (f Filter) matchesSearch(order *entity.Order) bool {
	query := strings.TrimSpace(f.Search)
	if query == "" {
		return true
	}

	lower := strings.ToLower(query)

	return strings.Contains(strings.ToLower(order.ID.String()), lower) ||
		strings.Contains(strings.ToLower(order.CustomerName), lower) ||
		strings.Contains(order.CustomerPhone, query)
}

// Result is the aggregate over the matching orders.
type Result struct {
	Orders            []*entity.Order                          `json:"orders"`
	Total             int64                                    `json:"total"`
	ByMethod          map[entity.PaymentMethod]int64           `json:"by_method"`
	Count             int                                      `json:"count"`
	ItemsSold         int                                      `json:"items_sold"`
	AverageOrderValue decimal.Decimal                          `json:"average_order_value"`
	MethodShare       map[entity.PaymentMethod]decimal.Decimal `json:"method_share"` // Percent of Total, 2 dp.
}

// Aggregate filters, sorts and totals orders. The input slice is not modified.
func Aggregate(orders []*entity.Order, filter Filter, sort SortOrder) Result {
	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Matches(order) {
			matched = append(matched, order)
		}
	}

	slices.SortStableFunc(matched, comparator(sort))

	result := Result{
		Orders:            matched,
		ByMethod:          make(map[entity.PaymentMethod]int64, len(entity.PaymentMethods)),
		MethodShare:       make(map[entity.PaymentMethod]decimal.Decimal, len(entity.PaymentMethods)),
		Count:             len(matched),
		AverageOrderValue: decimal.Zero,
	}
	for _, method := range entity.PaymentMethods {
		result.ByMethod[method] = 0
		result.MethodShare[method] = decimal.Zero
	}

	for _, order := range matched {
		result.Total += order.Total
		result.ByMethod[order.PaymentMethod] += order.Total
		result.ItemsSold += order.ItemCount()
	}

	if result.Count > 0 {
		result.AverageOrderValue = decimal.NewFromInt(result.Total).
			Div(decimal.NewFromInt(int64(result.Count))).
			Round(2)
	}
	if result.Total > 0 {
		total := decimal.NewFromInt(result.Total)
		for method, sum := range result.ByMethod {
			result.MethodShare[method] = decimal.NewFromInt(sum).
				Mul(decimal.NewFromInt(100)).
				Div(total).
				Round(2)
		}
	}

	return result
}

func comparator(sort SortOrder) func(a, b *entity.Order) int {
	byID := func(a, b *entity.Order) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	}

	switch sort {
	case SortTimeAsc:
		return func(a, b *entity.Order) int {
			if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
				return c
			}

			return byID(a, b)
		}
	case SortTotalDesc:
		return func(a, b *entity.Order) int {
			if c := compareInt64(b.Total, a.Total); c != 0 {
				return c
			}

			return byID(a, b)
		}
	case SortTotalAsc:
		return func(a, b *entity.Order) int {
			if c := compareInt64(a.Total, b.Total); c != 0 {
				return c
			}

			return byID(a, b)
		}
	default:
		return func(a, b *entity.Order) int {
			if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
				return c
			}

			return byID(a, b)
		}
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
