package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMenuItemInput defines the data required to add a menu item.
type CreateMenuItemInput struct {
	Name     string
	Price    int64
	Category entity.Category
	Image    string
	Stock    int
	IsParent bool
	ParentID *uuid.UUID
}

// UpdateMenuItemInput carries the fields to change. Nil fields are left untouched.
type UpdateMenuItemInput struct {
	Name        *string
	Price       *int64
	Category    *entity.Category
	Image       *string
	IsParent    *bool
	ParentID    *uuid.UUID
	ClearParent bool // Detach the item from its parent.
}

// CatalogUsecase defines the menu and stock operations.
type CatalogUsecase interface {
	// ListItems returns the whole menu.
	ListItems(ctx context.Context) ([]*entity.MenuItem, error)

	// GetItem returns one menu item.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// CreateItem adds a menu item, applying the topping and child stock defaults.
	CreateItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error)

	// UpdateItem changes descriptive fields and the parent link. Stock changes go through SetStock.
	UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)

	// DeleteItem removes an item; deleting a parent unlinks its children in the same transaction.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// GetStockOwner returns the item itself, or its parent when it has one.
	GetStockOwner(ctx context.Context, itemID uuid.UUID) (*entity.MenuItem, error)

	// AvailableQuantity returns the owner's stock, or unlimited=true for toppings.
	AvailableQuantity(ctx context.Context, itemID uuid.UUID) (qty int, unlimited bool, err error)

	// SetStock overwrites the stock of an owner. Negative values are rejected.
	SetStock(ctx context.Context, ownerID uuid.UUID, stock int) error

	// DecrementStock lowers the owner's stock atomically, flooring at 0.
	DecrementStock(ctx context.Context, ownerID uuid.UUID, amount int) error
}
