package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager repository.TransactionManager
	menuRepo  repository.MenuItemRepository
	feed      service.ChangeFeed
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MenuRepo  repository.MenuItemRepository
	Feed      service.ChangeFeed
	Logger    *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		menuRepo:  params.MenuRepo,
		feed:      params.Feed,
		logger:    params.Logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListItems returns the whole menu
func (s *catalogService) ListItems(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// GetItem returns one menu item
func (s *catalogService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return s.findItem(ctx, s.menuRepo, id)
}

// CreateItem adds a menu item. Toppings start with unlimited stock and variants with none.
func (s *catalogService) CreateItem(ctx context.Context, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid category")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrInvalidStock
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:        uuid.New(),
		Name:      name,
		Price:     input.Price,
		Category:  input.Category,
		Image:     input.Image,
		Stock:     input.Stock,
		IsParent:  input.IsParent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.Category.IsUnlimited() {
		item.Stock = entity.ToppingDefaultStock
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		menuRepo := factory.NewMenuItemRepository()

		if input.ParentID != nil {
			if err := s.linkParent(ctx, menuRepo, item, *input.ParentID); err != nil {
				return err
			}
		}

		if err := menuRepo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create menu item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Menu item created", slog.String("itemID", item.ID.String()), slog.String("name", item.Name))
	publishChanges(ctx, s.feed, s.logger, service.TopicMenu)

	return item, nil
}

// UpdateItem changes descriptive fields and the parent link
func (s *catalogService) UpdateItem(ctx context.Context, id uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	var updated *entity.MenuItem

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		menuRepo := factory.NewMenuItemRepository()

		item, err := s.findItem(ctx, menuRepo, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return domainerrors.ErrValidationFailed.WithDetails("name is required")
			}
			item.Name = name
		}
		if input.Price != nil {
			if *input.Price < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
			}
			item.Price = *input.Price
		}
		if input.Category != nil {
			if !input.Category.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("invalid category")
			}
			item.Category = *input.Category
		}
		if input.Image != nil {
			item.Image = *input.Image
		}
		if input.IsParent != nil {
			item.IsParent = *input.IsParent
		}

		switch {
		case input.ClearParent:
			item.ParentID = nil
		case input.ParentID != nil:
			if err := s.ensureNoChildren(ctx, menuRepo, item.ID); err != nil {
				return err
			}
			if err := s.linkParent(ctx, menuRepo, item, *input.ParentID); err != nil {
				return err
			}
		}

		item.UpdatedAt = time.Now()
		if err := menuRepo.Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update menu item")
		}
		updated = item

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishChanges(ctx, s.feed, s.logger, service.TopicMenu)

	return updated, nil
}

// DeleteItem removes an item. Children of a parent are unlinked in the same transaction.
func (s *catalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	var unlinked int64

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		menuRepo := factory.NewMenuItemRepository()

		if _, err := s.findItem(ctx, menuRepo, id); err != nil {
			return err
		}

		count, err := menuRepo.ClearParent(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to unlink child items")
		}
		unlinked = count

		if err := menuRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMenuItemNotFound) {
				return domainerrors.ErrMenuItemNotFound
			}

			return errors.Wrap(err, "failed to delete menu item")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Menu item deleted", slog.String("itemID", id.String()), slog.Int64("unlinkedChildren", unlinked))
	publishChanges(ctx, s.feed, s.logger, service.TopicMenu)

	return nil
}

// GetStockOwner returns the item whose stock is authoritative for itemID
func (s *catalogService) GetStockOwner(ctx context.Context, itemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.findItem(ctx, s.menuRepo, itemID)
	if err != nil {
		return nil, err
	}

	source := item.StockSource()
	if source.Kind == entity.StockStandalone {
		return item, nil
	}

	owner, err := s.menuRepo.FindByID(ctx, source.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound.WithDetails("parent item of " + itemID.String() + " no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find stock owner")
	}

	return owner, nil
}

// AvailableQuantity returns the owner's stock, or unlimited for toppings
func (s *catalogService) AvailableQuantity(ctx context.Context, itemID uuid.UUID) (int, bool, error) {
	item, err := s.findItem(ctx, s.menuRepo, itemID)
	if err != nil {
		return 0, false, err
	}
	if item.Category.IsUnlimited() {
		return 0, true, nil
	}

	owner, err := s.GetStockOwner(ctx, itemID)
	if err != nil {
		return 0, false, err
	}

	return owner.Stock, false, nil
}

// SetStock overwrites the stock of an owner
func (s *catalogService) SetStock(ctx context.Context, ownerID uuid.UUID, stock int) error {
	if stock < 0 {
		return domainerrors.ErrInvalidStock
	}

	item, err := s.findItem(ctx, s.menuRepo, ownerID)
	if err != nil {
		return err
	}
	if item.IsVariant() {
		return domainerrors.ErrInvalidStock.WithDetails("stock of a variant is managed on its parent")
	}

	if err := s.menuRepo.SetStock(ctx, ownerID, stock); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to set stock")
	}

	publishChanges(ctx, s.feed, s.logger, service.TopicMenu)

	return nil
}

// DecrementStock lowers the owner's stock with one atomic statement
func (s *catalogService) DecrementStock(ctx context.Context, ownerID uuid.UUID, amount int) error {
	if amount <= 0 {
		return nil
	}

	if err := s.menuRepo.DecrementStock(ctx, ownerID, amount); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to decrement stock")
	}

	publishChanges(ctx, s.feed, s.logger, service.TopicMenu)

	return nil
}

func (s *catalogService) findItem(ctx context.Context, repo repository.MenuItemRepository, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return item, nil
}

// ensureNoChildren rejects turning a stock owner with variants into a variant itself.
func (s *catalogService) ensureNoChildren(ctx context.Context, repo repository.MenuItemRepository, itemID uuid.UUID) error {
	children, err := repo.FindChildren(ctx, itemID)
	if err != nil {
		return errors.Wrap(err, "failed to find child items")
	}
	if len(children) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("an item with variants cannot be given a parent")
	}

	return nil
}

// linkParent attaches item to parentID. The parent must exist and own its stock.
func (s *catalogService) linkParent(ctx context.Context, repo repository.MenuItemRepository, item *entity.MenuItem, parentID uuid.UUID) error {
	if parentID == item.ID {
		return domainerrors.ErrValidationFailed.WithDetails("an item cannot be its own parent")
	}

	parent, err := s.findItem(ctx, repo, parentID)
	if err != nil {
		return err
	}
	if parent.IsVariant() {
		return domainerrors.ErrValidationFailed.WithDetails("parent item must not have a parent")
	}

	item.ParentID = &parent.ID
	item.IsParent = false
	item.Stock = 0

	if !parent.IsParent {
		parent.IsParent = true
		parent.UpdatedAt = time.Now()
		if err := repo.Update(ctx, parent); err != nil {
			return errors.Wrap(err, "failed to mark parent item")
		}
	}

	return nil
}
