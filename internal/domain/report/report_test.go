package report

import (
	"testing"
	"time"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hcm = time.FixedZone("ICT", 7*3600)

type orderOpt func(o *entity.Order)

func withMethod(m entity.PaymentMethod) orderOpt {
	return func(o *entity.Order) { o.PaymentMethod = m }
}

func withStaff(id uuid.UUID) orderOpt {
	return func(o *entity.Order) { o.StaffID = id }
}

func withCustomer(name, phone string) orderOpt {
	return func(o *entity.Order) {
		o.CustomerName = name
		o.CustomerPhone = phone
	}
}

func withOrderDate(t time.Time) orderOpt {
	return func(o *entity.Order) { o.OrderDate = &t }
}

func withItems(items ...entity.CartItem) orderOpt {
	return func(o *entity.Order) { o.Items = items }
}

func newOrder(total int64, ts time.Time, opts ...orderOpt) *entity.Order {
	o := &entity.Order{
		ID:            uuid.New(),
		Items:         []entity.CartItem{{ItemID: uuid.New(), Name: "Trà", Price: total, Quantity: 1}},
		Total:         total,
		PaymentMethod: entity.PaymentCash,
		Status:        entity.OrderStatusCompleted,
		Timestamp:     ts,
		Source:        entity.OrderSourceApp,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func TestAggregate_TotalsPerMethod(t *testing.T) {
	day := time.Date(2024, 6, 1, 10, 0, 0, 0, hcm)
	orders := []*entity.Order{
		newOrder(50000, day),
		newOrder(30000, day.Add(time.Minute), withMethod(entity.PaymentTransfer)),
		newOrder(20000, day.Add(2*time.Minute), withMethod(entity.PaymentPostpaid)),
	}

	result := Aggregate(orders, Filter{From: "2024-06-01", To: "2024-06-01", Location: hcm}, SortTimeDesc)

	assert.Equal(t, int64(100000), result.Total)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 3, result.ItemsSold)
	assert.Equal(t, int64(50000), result.ByMethod[entity.PaymentCash])
	assert.Equal(t, int64(30000), result.ByMethod[entity.PaymentTransfer])
	assert.Equal(t, int64(20000), result.ByMethod[entity.PaymentPostpaid])
	assert.True(t, decimal.RequireFromString("33333.33").Equal(result.AverageOrderValue))
	assert.True(t, decimal.NewFromInt(50).Equal(result.MethodShare[entity.PaymentCash]))
	assert.True(t, decimal.NewFromInt(30).Equal(result.MethodShare[entity.PaymentTransfer]))
}

func TestAggregate_EmptyMatch(t *testing.T) {
	orders := []*entity.Order{newOrder(50000, time.Date(2024, 6, 1, 10, 0, 0, 0, hcm))}

	result := Aggregate(orders, Filter{From: "2025-01-01", To: "2025-01-31", Location: hcm}, SortTimeDesc)

	assert.Empty(t, result.Orders)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.Count)
	assert.True(t, result.AverageOrderValue.IsZero())
	for _, method := range entity.PaymentMethods {
		assert.Zero(t, result.ByMethod[method])
		assert.True(t, result.MethodShare[method].IsZero())
	}
}

func TestAggregate_DateUsesOrderDateAndShopZone(t *testing.T) {
	// 23:30 UTC on May 31 is already June 1 in the shop zone.
	lateUTC := time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC)
	backdated := newOrder(40000, time.Date(2024, 6, 3, 9, 0, 0, 0, hcm),
		withOrderDate(time.Date(2024, 6, 1, 12, 0, 0, 0, hcm)))
	other := newOrder(10000, time.Date(2024, 6, 3, 9, 0, 0, 0, hcm))

	result := Aggregate([]*entity.Order{newOrder(25000, lateUTC), backdated, other},
		Filter{From: "2024-06-01", To: "2024-06-01", Location: hcm}, SortTimeAsc)

	require.Len(t, result.Orders, 2)
	assert.Equal(t, int64(65000), result.Total)
}

func TestAggregate_Filters(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 0, 0, 0, hcm)
	staff := uuid.New()
	parent := uuid.New()
	variant := entity.CartItem{ItemID: uuid.New(), Name: "Trà sữa M", Price: 25000, ParentID: &parent, Quantity: 2}

	a := newOrder(50000, ts, withStaff(staff), withCustomer("Nguyễn An", "0901234567"), withItems(variant))
	b := newOrder(120000, ts, withMethod(entity.PaymentTransfer), withCustomer("Trần Bình", "0987654321"))
	c := newOrder(15000, ts, withStaff(staff))
	pending := newOrder(99000, ts, withStaff(staff))
	pending.Status = entity.OrderStatusPending
	orders := []*entity.Order{a, b, c, pending}

	minTotal := int64(20000)
	maxTotal := int64(100000)

	tests := []struct {
		name   string
		filter Filter
		want   []*entity.Order
	}{
		{name: "all completed", filter: Filter{}, want: []*entity.Order{a, b, c}},
		{name: "method", filter: Filter{PaymentMethod: entity.PaymentTransfer}, want: []*entity.Order{b}},
		{name: "staff", filter: Filter{StaffID: &staff}, want: []*entity.Order{a, c}},
		{name: "item by parent", filter: Filter{ItemID: &parent}, want: []*entity.Order{a}},
		{name: "item by id", filter: Filter{ItemID: &variant.ItemID}, want: []*entity.Order{a}},
		{name: "min total", filter: Filter{MinTotal: &minTotal}, want: []*entity.Order{a, b}},
		{name: "max total", filter: Filter{MaxTotal: &maxTotal}, want: []*entity.Order{a, c}},
		{name: "search name case-insensitive", filter: Filter{Search: "trần"}, want: []*entity.Order{b}},
		{name: "search phone substring", filter: Filter{Search: "090123"}, want: []*entity.Order{a}},
		{name: "search order id", filter: Filter{Search: c.ID.String()[:8]}, want: []*entity.Order{c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(orders, tt.filter, SortTotalDesc)

			assert.ElementsMatch(t, tt.want, result.Orders)
			assert.Equal(t, len(tt.want), result.Count)
		})
	}
}

func TestAggregate_SortWithTieBreak(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 0, 0, 0, hcm)
	first := newOrder(30000, ts)
	second := newOrder(30000, ts)
	later := newOrder(10000, ts.Add(time.Hour))
	byID := []*entity.Order{first, second}
	if second.ID.String() < first.ID.String() {
		byID = []*entity.Order{second, first}
	}

	orders := []*entity.Order{later, second, first}

	desc := Aggregate(orders, Filter{}, SortTimeDesc).Orders
	assert.Equal(t, []*entity.Order{later, byID[0], byID[1]}, desc)

	asc := Aggregate(orders, Filter{}, SortTimeAsc).Orders
	assert.Equal(t, []*entity.Order{byID[0], byID[1], later}, asc)

	totalDesc := Aggregate(orders, Filter{}, SortTotalDesc).Orders
	assert.Equal(t, []*entity.Order{byID[0], byID[1], later}, totalDesc)

	totalAsc := Aggregate(orders, Filter{}, SortTotalAsc).Orders
	assert.Equal(t, []*entity.Order{later, byID[0], byID[1]}, totalAsc)

	// Same input in another order gives the same result.
	again := Aggregate([]*entity.Order{first, later, second}, Filter{}, SortTimeDesc).Orders
	assert.Equal(t, desc, again)
}

func TestFilter_Validate(t *testing.T) {
	assert.NoError(t, Filter{From: "2024-06-01", To: "2024-06-30"}.Validate())
	assert.ErrorIs(t, Filter{From: "2024-06-30", To: "2024-06-01"}.Validate(), ErrInvalidDateRange)
	assert.Error(t, Filter{From: "01/06/2024"}.Validate())
	assert.Error(t, Filter{PaymentMethod: "card"}.Validate())
}

func TestAggregate_PaddedDateBounds(t *testing.T) {
	inside := newOrder(40000, time.Date(2026, 10, 13, 9, 0, 0, 0, hcm))
	before := newOrder(10000, time.Date(2026, 10, 12, 9, 0, 0, 0, hcm))
	filter := Filter{From: " 2026-10-13", To: "2026-10-13 ", Location: hcm}

	require.NoError(t, filter.Validate())

	result := Aggregate([]*entity.Order{inside, before}, filter, SortTimeDesc)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, inside.ID, result.Orders[0].ID)
	assert.Equal(t, int64(40000), result.Total)
}
