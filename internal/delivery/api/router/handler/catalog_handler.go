package handler

import (
	"log/slog"
	"net/http"

	"drinkpos/internal/delivery/api/response"
	"drinkpos/internal/domain/entity"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the menu and its stock
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateMenuItemRequest is the body of a new menu item.
type CreateMenuItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    int64           `json:"price" validate:"gte=0"`
	Category entity.Category `json:"category" validate:"required,oneof=drink topping"`
	Image    string          `json:"image"`
	Stock    int             `json:"stock" validate:"gte=0"`
	IsParent bool            `json:"is_parent"`
	ParentID *uuid.UUID      `json:"parent_id"`
}

// UpdateMenuItemRequest changes only the fields present. clear_parent detaches a variant.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Price       *int64           `json:"price" validate:"omitempty,gte=0"`
	Category    *entity.Category `json:"category" validate:"omitempty,oneof=drink topping"`
	Image       *string          `json:"image"`
	IsParent    *bool            `json:"is_parent"`
	ParentID    *uuid.UUID       `json:"parent_id"`
	ClearParent bool             `json:"clear_parent"`
}

// SetStockRequest overwrites a stock owner's stock.
type SetStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// AvailabilityResponse is how many more units of an item can be sold.
type AvailabilityResponse struct {
	ItemID    string `json:"item_id"`
	OwnerID   string `json:"owner_id"`
	Available int    `json:"available"`
	Unlimited bool   `json:"unlimited"`
}

// ListItems returns the whole menu
func (h *CatalogHandler) ListItems(c echo.Context) error {
	items, err := h.catalogUC.ListItems(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetItem returns one menu item
func (h *CatalogHandler) GetItem(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	item, err := h.catalogUC.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// GetAvailability reports the sellable quantity of an item, read from its stock owner
func (h *CatalogHandler) GetAvailability(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	owner, err := h.catalogUC.GetStockOwner(ctx, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	qty, unlimited, err := h.catalogUC.AvailableQuantity(ctx, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AvailabilityResponse{
		ItemID:    itemID.String(),
		OwnerID:   owner.ID.String(),
		Available: qty,
		Unlimited: unlimited,
	})
}

// CreateItem adds a menu item
func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.catalogUC.CreateItem(c.Request().Context(), &usecase.CreateMenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
		Stock:    req.Stock,
		IsParent: req.IsParent,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateItem edits a menu item
func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateMenuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.catalogUC.UpdateItem(c.Request().Context(), itemID, &usecase.UpdateMenuItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsParent:    req.IsParent,
		ParentID:    req.ParentID,
		ClearParent: req.ClearParent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteItem removes a menu item; its variants become standalone items
func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteItem(c.Request().Context(), itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Menu item deleted"})
}

// SetStock overwrites the stock of a stock owner
func (h *CatalogHandler) SetStock(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.catalogUC.SetStock(ctx, itemID, *req.Stock); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.GetItem(ctx, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}
