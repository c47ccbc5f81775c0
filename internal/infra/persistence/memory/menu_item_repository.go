package memory

import (
	"cmp"
	"context"
	"slices"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type menuItemRepository struct {
	store *Store
}

// NewMenuItemRepository creates a menu repository over store.
func NewMenuItemRepository(store *Store) repository.MenuItemRepository {
	return &menuItemRepository{store: store}
}

func cloneMenuItem(item *entity.MenuItem) *entity.MenuItem {
	out := *item
	if item.ParentID != nil {
		parentID := *item.ParentID
		out.ParentID = &parentID
	}

	return &out
}

func (repo *menuItemRepository) Create(_ context.Context, item *entity.MenuItem) error {
	return repo.store.do("menu.Create", func(st *state) error {
		if item.Price < 0 || item.Stock < 0 {
			return errInvalid("menu item price and stock must not be negative")
		}
		if item.ParentID != nil {
			if _, ok := st.menu[*item.ParentID]; !ok {
				return errConflict("parent menu item does not exist")
			}
		}
		if _, exists := st.menu[item.ID]; exists {
			return errConflict("menu item already exists")
		}

		now := repo.store.now()
		item.CreatedAt = now
		item.UpdatedAt = now
		st.menu[item.ID] = cloneMenuItem(item)

		return nil
	})
}

func (repo *menuItemRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var out *entity.MenuItem
	err := repo.store.do("menu.FindByID", func(st *state) error {
		item, ok := st.menu[id]
		if !ok {
			return repository.ErrMenuItemNotFound
		}
		out = cloneMenuItem(item)

		return nil
	})

	return out, err
}

func (repo *menuItemRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	items := make([]*entity.MenuItem, 0, len(ids))
	err := repo.store.read("menu.FindByIDs", func(st *state) {
		seen := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			if item, ok := st.menu[id]; ok && !seen[id] {
				seen[id] = true
				items = append(items, cloneMenuItem(item))
			}
		}
	})

	return items, err
}

func (repo *menuItemRepository) List(_ context.Context) ([]*entity.MenuItem, error) {
	return repo.collect("menu.List", func(*entity.MenuItem) bool { return true }, func(a, b *entity.MenuItem) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})
}

func (repo *menuItemRepository) FindChildren(_ context.Context, parentID uuid.UUID) ([]*entity.MenuItem, error) {
	return repo.collect("menu.FindChildren", func(item *entity.MenuItem) bool {
		return item.ParentID != nil && *item.ParentID == parentID
	}, func(a, b *entity.MenuItem) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

func (repo *menuItemRepository) Update(_ context.Context, item *entity.MenuItem) error {
	return repo.update("menu.Update", item.ID, func(st *state, stored *entity.MenuItem) error {
		if item.Price < 0 {
			return errInvalid("menu item price must not be negative")
		}
		if item.ParentID != nil {
			if _, ok := st.menu[*item.ParentID]; !ok {
				return errConflict("parent menu item does not exist")
			}
		}

		stored.Name = item.Name
		stored.Price = item.Price
		stored.Category = item.Category
		stored.Image = item.Image
		stored.ParentID = cloneMenuItem(item).ParentID
		stored.IsParent = item.IsParent

		return nil
	})
}

func (repo *menuItemRepository) SetStock(_ context.Context, id uuid.UUID, stock int) error {
	return repo.update("menu.SetStock", id, func(_ *state, stored *entity.MenuItem) error {
		if stock < 0 {
			return errInvalid("stock must not be negative")
		}
		stored.Stock = stock

		return nil
	})
}

func (repo *menuItemRepository) DecrementStock(_ context.Context, id uuid.UUID, amount int) error {
	return repo.update("menu.DecrementStock", id, func(_ *state, stored *entity.MenuItem) error {
		stored.Stock = max(stored.Stock-amount, 0)

		return nil
	})
}

func (repo *menuItemRepository) ClearParent(_ context.Context, parentID uuid.UUID) (int64, error) {
	var cleared int64
	err := repo.store.read("menu.ClearParent", func(st *state) {
		for id, item := range st.menu {
			if item.ParentID != nil && *item.ParentID == parentID {
				updated := cloneMenuItem(item)
				updated.ParentID = nil
				updated.UpdatedAt = repo.store.now()
				st.menu[id] = updated
				cleared++
			}
		}
	})

	return cleared, err
}

func (repo *menuItemRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.do("menu.Delete", func(st *state) error {
		if _, ok := st.menu[id]; !ok {
			return repository.ErrMenuItemNotFound
		}
		// Children outlive their parent, matching ON DELETE SET NULL.
		for childID, item := range st.menu {
			if item.ParentID != nil && *item.ParentID == id {
				orphan := cloneMenuItem(item)
				orphan.ParentID = nil
				st.menu[childID] = orphan
			}
		}
		delete(st.menu, id)

		return nil
	})
}

func (repo *menuItemRepository) ListLowStock(_ context.Context, threshold int) ([]*entity.MenuItem, error) {
	return repo.collect("menu.ListLowStock", func(item *entity.MenuItem) bool {
		return item.ParentID == nil && item.Category != entity.CategoryTopping && item.Stock <= threshold
	}, func(a, b *entity.MenuItem) int {
		return cmp.Or(cmp.Compare(a.Stock, b.Stock), cmp.Compare(a.Name, b.Name))
	})
}

func (repo *menuItemRepository) collect(op string, keep func(*entity.MenuItem) bool, order func(a, b *entity.MenuItem) int) ([]*entity.MenuItem, error) {
	var items []*entity.MenuItem
	err := repo.store.read(op, func(st *state) {
		items = make([]*entity.MenuItem, 0, len(st.menu))
		for _, item := range st.menu {
			if keep(item) {
				items = append(items, cloneMenuItem(item))
			}
		}
	})
	slices.SortFunc(items, order)

	return items, err
}

// update replaces the stored item with a modified copy.
func (repo *menuItemRepository) update(op string, id uuid.UUID, apply func(st *state, stored *entity.MenuItem) error) error {
	return repo.store.do(op, func(st *state) error {
		item, ok := st.menu[id]
		if !ok {
			return repository.ErrMenuItemNotFound
		}

		updated := cloneMenuItem(item)
		if err := apply(st, updated); err != nil {
			return err
		}
		updated.UpdatedAt = repo.store.now()
		st.menu[id] = updated

		return nil
	})
}
