package postgres

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// menuItemRepository implements the repository.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{
		db: db,
	}
}

// Create persists a new menu item.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return storeError(err, "failed to create menu item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a single menu item.
func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// FindByIDs retrieves the items with the given ids; missing ids are skipped.
func (repo *menuItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return []*entity.MenuItem{}, nil
	}

	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by IDs")
	}

	return toMenuItemDomains(itemModels), nil
}

// List retrieves the whole menu ordered by category and name.
func (repo *menuItemRepository) List(ctx context.Context) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).Order("category ASC, name ASC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return toMenuItemDomains(itemModels), nil
}

// FindChildren retrieves every item whose parent is parentID.
func (repo *menuItemRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find child menu items")
	}

	return toMenuItemDomains(itemModels), nil
}

// Update modifies the descriptive fields and the parent link. Stock is left untouched.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":       item.Name,
			"price":      item.Price,
			"category":   string(item.Category),
			"image":      item.Image,
			"is_parent":  item.IsParent,
			"parent_id":  item.ParentID,
			"updated_at": item.UpdatedAt,
		})

	if result.Error != nil {
		return storeError(result.Error, "failed to update menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// SetStock overwrites the stock of id.
func (repo *menuItemRepository) SetStock(ctx context.Context, id uuid.UUID, stock int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Update("stock", stock)

	if result.Error != nil {
		return storeError(result.Error, "failed to set stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// DecrementStock lowers the stock in a single statement so concurrent decrements never lose updates.
func (repo *menuItemRepository) DecrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", amount))

	if result.Error != nil {
		return storeError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// ClearParent unlinks every child of parentID and returns how many were updated.
func (repo *menuItemRepository) ClearParent(ctx context.Context, parentID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("parent_id = ?", parentID).
		Update("parent_id", nil)

	if result.Error != nil {
		return 0, storeError(result.Error, "failed to unlink child menu items")
	}

	return result.RowsAffected, nil
}

// Delete removes a menu item.
func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})

	if result.Error != nil {
		return storeError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// ListLowStock retrieves stock owners of non-topping items whose stock is at most threshold.
func (repo *menuItemRepository) ListLowStock(ctx context.Context, threshold int) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("parent_id IS NULL AND category <> ? AND stock <= ?", string(entity.CategoryTopping), threshold).
		Order("stock ASC, name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list low stock items")
	}

	return toMenuItemDomains(itemModels), nil
}

// --- Mapper Functions ---

// toMenuItemDomain converts a GORM MenuItemModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Category:  entity.Category(data.Category),
		Image:     data.Image,
		Stock:     data.Stock,
		IsParent:  data.IsParent,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMenuItemDomains(models []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(models))
	for _, itemM := range models {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items
}

// fromMenuItemDomain converts a domain MenuItem entity to a GORM MenuItemModel.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Category:  string(data.Category),
		Image:     data.Image,
		Stock:     data.Stock,
		IsParent:  data.IsParent,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
