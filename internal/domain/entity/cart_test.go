package entity

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDrink(name string, price int64, stock int) *MenuItem {
	return &MenuItem{ID: uuid.New(), Name: name, Price: price, Category: CategoryDrink, Stock: stock}
}

func newVariant(parent *MenuItem, name string, price int64) *MenuItem {
	parentID := parent.ID

	return &MenuItem{ID: uuid.New(), Name: name, Price: price, Category: CategoryDrink, ParentID: &parentID}
}

func TestCart_AddItem_SharedParentStock(t *testing.T) {
	parent := newDrink("Trà sữa", 0, 3)
	parent.IsParent = true
	small := newVariant(parent, "Trà sữa M", 25000)
	large := newVariant(parent, "Trà sữa L", 30000)

	cart := NewCart()
	require.NoError(t, cart.AddItem(small, parent))
	require.NoError(t, cart.AddItem(small, parent))
	require.NoError(t, cart.AddItem(large, parent))

	err := cart.AddItem(large, parent)
	assert.ErrorIs(t, err, ErrOutOfStock)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, int64(80000), cart.Total())
	assert.Equal(t, map[uuid.UUID]int{parent.ID: 3}, cart.QuantitiesByOwner())
}

func TestCart_AddItem_ZeroStock(t *testing.T) {
	item := newDrink("Cà phê", 20000, 0)
	cart := NewCart()

	err := cart.AddItem(item, item)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddItem_ToppingUnlimited(t *testing.T) {
	topping := &MenuItem{ID: uuid.New(), Name: "Trân châu", Price: 5000, Category: CategoryTopping, Stock: 0}
	cart := NewCart()

	for range 10 {
		require.NoError(t, cart.AddItem(topping, topping))
	}

	assert.Equal(t, 10, cart.Items()[0].Quantity)
	assert.Equal(t, int64(50000), cart.Total())
}

func TestCart_AddItem_OwnerMismatch(t *testing.T) {
	parent := newDrink("Trà", 0, 5)
	variant := newVariant(parent, "Trà đào", 30000)
	other := newDrink("Khác", 0, 5)

	err := NewCart().AddItem(variant, other)

	assert.ErrorIs(t, err, ErrOwnerMismatch)
}

func TestCart_AddItem_CapturesPrice(t *testing.T) {
	item := newDrink("Nước cam", 30000, 5)
	cart := NewCart()
	require.NoError(t, cart.AddItem(item, item))

	item.Price = 99000
	require.NoError(t, cart.AddItem(item, item))

	assert.Equal(t, int64(60000), cart.Total())
}

func TestCart_ChangeQuantity(t *testing.T) {
	parent := newDrink("Trà sữa", 0, 4)
	small := newVariant(parent, "Trà sữa M", 25000)
	large := newVariant(parent, "Trà sữa L", 30000)

	tests := []struct {
		name      string
		delta     int
		wantErr   error
		wantSmall int
		wantLines int
	}{
		{name: "no change", delta: 0, wantSmall: 2, wantLines: 2},
		{name: "increase within stock", delta: 1, wantSmall: 3, wantLines: 2},
		{name: "increase beyond shared stock", delta: 2, wantErr: ErrOutOfStock, wantSmall: 2, wantLines: 2},
		{name: "decrease", delta: -1, wantSmall: 1, wantLines: 2},
		{name: "decrease to zero removes", delta: -2, wantSmall: 0, wantLines: 1},
		{name: "decrease below zero removes", delta: -5, wantSmall: 0, wantLines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			require.NoError(t, cart.AddItem(small, parent))
			require.NoError(t, cart.AddItem(small, parent))
			require.NoError(t, cart.AddItem(large, parent))

			err := cart.ChangeQuantity(small.ID, tt.delta, parent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantLines, cart.Len())
			got := 0
			for _, line := range cart.Items() {
				if line.ItemID == small.ID {
					got = line.Quantity
				}
			}
			assert.Equal(t, tt.wantSmall, got)
		})
	}
}

func TestCart_ChangeQuantity_HugeDelta(t *testing.T) {
	drink := newDrink("Cà phê sữa", 20000, 5)
	topping := &MenuItem{ID: uuid.New(), Name: "Trân châu", Price: 5000, Category: CategoryTopping}

	tests := []struct {
		name  string
		item  *MenuItem
		delta int
	}{
		{name: "stocked line", item: drink, delta: math.MaxInt},
		{name: "topping line", item: topping, delta: math.MaxInt},
		{name: "topping past line limit", item: topping, delta: MaxLineQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			require.NoError(t, cart.AddItem(tt.item, tt.item))

			err := cart.ChangeQuantity(tt.item.ID, tt.delta, tt.item)
			assert.ErrorIs(t, err, ErrQuantityLimit)

			items := cart.Items()
			require.Len(t, items, 1)
			assert.Equal(t, 1, items[0].Quantity)
			assert.Equal(t, tt.item.Price, cart.Total())
		})
	}
}

func TestCart_ChangeQuantity_MinIntRemovesLine(t *testing.T) {
	drink := newDrink("Cà phê sữa", 20000, 5)
	cart := NewCart()
	require.NoError(t, cart.AddItem(drink, drink))

	require.NoError(t, cart.ChangeQuantity(drink.ID, math.MinInt, drink))
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddItem_ToppingLineLimit(t *testing.T) {
	topping := &MenuItem{ID: uuid.New(), Name: "Trân châu", Price: 5000, Category: CategoryTopping}
	cart := NewCart()
	require.NoError(t, cart.AddItem(topping, topping))
	require.NoError(t, cart.ChangeQuantity(topping.ID, MaxLineQuantity-1, topping))

	err := cart.AddItem(topping, topping)
	assert.ErrorIs(t, err, ErrQuantityLimit)
	assert.Equal(t, MaxLineQuantity, cart.Items()[0].Quantity)
}

func TestCart_ChangeQuantity_NotInCart(t *testing.T) {
	err := NewCart().ChangeQuantity(uuid.New(), 1, nil)

	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestCart_RemoveAndClear(t *testing.T) {
	a := newDrink("A", 10000, 5)
	b := newDrink("B", 20000, 5)
	cart := NewCart()
	require.NoError(t, cart.AddItem(a, a))
	require.NoError(t, cart.AddItem(b, b))

	cart.RemoveItem(a.ID)
	cart.RemoveItem(uuid.New())
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, int64(20000), cart.Total())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	a := newDrink("A", 10000, 5)
	cart := NewCart()
	require.NoError(t, cart.AddItem(a, a))

	items := cart.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
