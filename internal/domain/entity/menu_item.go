// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ToppingDefaultStock is the stock a topping is created with; toppings are never stock-checked.
const ToppingDefaultStock = 999999

// ErrStockOwnerMissing is returned when an item, or the parent it draws stock from, is not in the menu.
var ErrStockOwnerMissing = errors.New("stock owner not found in menu")

// Category classifies a menu item.
type Category string

const (
	// CategoryDrink items are stock-checked against their stock owner.
	CategoryDrink Category = "drink"
	// CategoryTopping items are treated as unlimited.
	CategoryTopping Category = "topping"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryDrink, CategoryTopping:
		return true
	default:
		return false
	}
}

// IsUnlimited reports whether items of this category skip stock enforcement.
func (c Category) IsUnlimited() bool {
	return c == CategoryTopping
}

// MenuItem represents a product on the menu.
type MenuItem struct {
	ID        uuid.UUID  `json:"id"`                  // The Global Unique Identifier (GUID) for the item.
	Name      string     `json:"name"`                // Display name.
	Price     int64      `json:"price"`               // Price in the smallest currency unit (đồng).
	Category  Category   `json:"category"`            // drink or topping.
	Image     string     `json:"image,omitempty"`     // Optional image or video URL.
	Stock     int        `json:"stock"`               // Authoritative only when ParentID is nil.
	IsParent  bool       `json:"is_parent"`           // Marks a grouping item whose stock is a shared pool.
	ParentID  *uuid.UUID `json:"parent_id,omitempty"` // The item whose stock this item draws from.
	CreatedAt time.Time  `json:"created_at"`          // Timestamp of when this item was created.
	UpdatedAt time.Time  `json:"updated_at"`          // Timestamp of the last modification.
}

// StockSourceKind distinguishes items that own stock from items that borrow it.
type StockSourceKind int

const (
	// StockStandalone items own their stock counter.
	StockStandalone StockSourceKind = iota
	// StockVariant items draw from their owner's counter.
	StockVariant
)

// StockSource is the resolved stock relationship of an item: Standalone{Stock} or Variant{OwnerID}.
type StockSource struct {
	Kind    StockSourceKind
	OwnerID uuid.UUID // Equals the item's own id for standalone items.
	Stock   int       // Only meaningful for standalone items.
}

// StockSource resolves how the item's available quantity is determined.
// All stock checks go through this single function.
func (m *MenuItem) StockSource() StockSource {
	if m.ParentID != nil && *m.ParentID != uuid.Nil && *m.ParentID != m.ID {
		return StockSource{Kind: StockVariant, OwnerID: *m.ParentID}
	}

	return StockSource{Kind: StockStandalone, OwnerID: m.ID, Stock: m.Stock}
}

// StockOwnerID returns the id of the item whose stock is authoritative for m.
func (m *MenuItem) StockOwnerID() uuid.UUID {
	return m.StockSource().OwnerID
}

// IsVariant reports whether the item borrows stock from a parent.
func (m *MenuItem) IsVariant() bool {
	return m.StockSource().Kind == StockVariant
}

// Menu is an id-indexed snapshot of menu items.
type Menu map[uuid.UUID]*MenuItem

// NewMenu indexes items by id.
func NewMenu(items []*MenuItem) Menu {
	menu := make(Menu, len(items))
	for _, item := range items {
		if item != nil {
			menu[item.ID] = item
		}
	}

	return menu
}

// StockOwner resolves itemID to the item whose stock field is authoritative.
func (m Menu) StockOwner(itemID uuid.UUID) (*MenuItem, error) {
	item, ok := m[itemID]
	if !ok {
		return nil, ErrStockOwnerMissing
	}

	source := item.StockSource()
	if source.Kind == StockStandalone {
		return item, nil
	}

	owner, ok := m[source.OwnerID]
	if !ok {
		return nil, ErrStockOwnerMissing
	}

	return owner, nil
}

// AvailableQuantity returns the owner's stock, or unlimited=true for toppings.
func (m Menu) AvailableQuantity(itemID uuid.UUID) (qty int, unlimited bool, err error) {
	item, ok := m[itemID]
	if !ok {
		return 0, false, ErrStockOwnerMissing
	}
	if item.Category.IsUnlimited() {
		return 0, true, nil
	}

	owner, err := m.StockOwner(itemID)
	if err != nil {
		return 0, false, err
	}

	return owner.Stock, false, nil
}
