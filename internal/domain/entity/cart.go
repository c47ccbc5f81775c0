// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Cart errors. A rejected operation never mutates the cart.
var (
	// ErrOutOfStock is returned when an addition would exceed the stock owner's stock.
	ErrOutOfStock = errors.New("not enough stock")
	// ErrItemNotInCart is returned when changing an entry that does not exist.
	ErrItemNotInCart = errors.New("item is not in the cart")
	// ErrOwnerMismatch is returned when the supplied owner does not back the item.
	ErrOwnerMismatch = errors.New("stock owner does not match item")
	// ErrQuantityLimit is returned when a line would exceed MaxLineQuantity.
	ErrQuantityLimit = errors.New("line quantity limit exceeded")
)

// MaxLineQuantity caps one cart line, toppings included.
const MaxLineQuantity = 999

// CartItem is a menu item snapshot with a quantity. Price and name are captured when
// the item is first added and never re-read from the catalog.
type CartItem struct {
	ItemID   uuid.UUID  `json:"item_id"`             // The menu item this line was taken from.
	Name     string     `json:"name"`                // Name at the time of adding.
	Price    int64      `json:"price"`               // Unit price at the time of adding.
	Category Category   `json:"category"`            // Category at the time of adding.
	ParentID *uuid.UUID `json:"parent_id,omitempty"` // Stock owner reference at the time of adding.
	Quantity int        `json:"quantity"`            // Always >= 1 while in a cart.
}

// StockOwnerID returns the id of the stock owner this line draws from.
func (ci CartItem) StockOwnerID() uuid.UUID {
	if ci.ParentID != nil && *ci.ParentID != uuid.Nil {
		return *ci.ParentID
	}

	return ci.ItemID
}

// Subtotal returns price × quantity.
func (ci CartItem) Subtotal() int64 {
	return ci.Price * int64(ci.Quantity)
}

// Cart accumulates items of one ordering session. It is not safe for concurrent use.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem adds one unit of item. owner must be the item's stock owner.
func (c *Cart) AddItem(item, owner *MenuItem) error {
	if item == nil || owner == nil {
		return ErrStockOwnerMissing
	}
	if item.StockOwnerID() != owner.ID {
		return ErrOwnerMismatch
	}

	if !item.Category.IsUnlimited() && c.committed(owner.ID) >= owner.Stock {
		return ErrOutOfStock
	}

	if idx := c.indexOf(item.ID); idx >= 0 {
		if c.items[idx].Quantity >= MaxLineQuantity {
			return ErrQuantityLimit
		}
		c.items[idx].Quantity++

		return nil
	}

	var parentID *uuid.UUID
	if item.IsVariant() {
		id := item.StockOwnerID()
		parentID = &id
	}

	c.items = append(c.items, CartItem{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		ParentID: parentID,
		Quantity: 1,
	})

	return nil
}

// ChangeQuantity adjusts a line by delta. A line reaching zero or below is removed.
// Increases are checked against owner's stock across the whole cart; owner is only
// consulted when delta is positive.
func (c *Cart) ChangeQuantity(itemID uuid.UUID, delta int, owner *MenuItem) error {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return ErrItemNotInCart
	}

	line := c.items[idx]
	switch {
	case delta == 0:
		return nil
	case delta < 0:
		if line.Quantity+delta <= 0 {
			c.RemoveItem(itemID)

			return nil
		}
		c.items[idx].Quantity += delta

		return nil
	}

	if delta > MaxLineQuantity-line.Quantity {
		return ErrQuantityLimit
	}

	if !line.Category.IsUnlimited() {
		if owner == nil {
			return ErrStockOwnerMissing
		}
		if owner.ID != line.StockOwnerID() {
			return ErrOwnerMismatch
		}
		if delta > owner.Stock-c.committed(owner.ID) {
			return ErrOutOfStock
		}
	}
	c.items[idx].Quantity += delta

	return nil
}

// RemoveItem drops the line for itemID if present.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

// Total sums captured price × quantity over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.items {
		total += line.Subtotal()
	}

	return total
}

// QuantitiesByOwner sums quantities per stock owner.
func (c *Cart) QuantitiesByOwner() map[uuid.UUID]int {
	return QuantitiesByOwner(c.items)
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.items = nil
}

// committed sums quantities of all lines that draw from ownerID.
func (c *Cart) committed(ownerID uuid.UUID) int {
	total := 0
	for _, line := range c.items {
		if line.StockOwnerID() == ownerID {
			total += line.Quantity
		}
	}

	return total
}

func (c *Cart) indexOf(itemID uuid.UUID) int {
	for i, line := range c.items {
		if line.ItemID == itemID {
			return i
		}
	}

	return -1
}

// QuantitiesByOwner sums line quantities per stock owner.
func QuantitiesByOwner(lines []CartItem) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int)
	for _, line := range lines {
		out[line.StockOwnerID()] += line.Quantity
	}

	return out
}
