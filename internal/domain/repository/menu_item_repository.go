// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the persistence operations of the catalog.
type MenuItemRepository interface {
	// Create persists a new menu item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// FindByID retrieves a single menu item.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindByIDs retrieves the items with the given ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// List retrieves the whole menu ordered by category and name.
	List(ctx context.Context) ([]*entity.MenuItem, error)

	// FindChildren retrieves every item whose parent is parentID.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.MenuItem, error)

	// Update modifies name, price, category, image, parent link and the parent flag.
	Update(ctx context.Context, item *entity.MenuItem) error

	// SetStock overwrites the stock of id.
	SetStock(ctx context.Context, id uuid.UUID, stock int) error

	// DecrementStock atomically lowers the stock of id by amount, flooring at 0.
	DecrementStock(ctx context.Context, id uuid.UUID, amount int) error

	// ClearParent unlinks every child of parentID and returns how many were updated.
	ClearParent(ctx context.Context, parentID uuid.UUID) (int64, error)

	// Delete removes a menu item.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListLowStock retrieves stock owners of non-topping items whose stock is at most threshold.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.MenuItem, error)
}
