package usecase

import (
	"context"

	"drinkpos/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionState is the position of an ordering session in its lifecycle.
type SessionState string

const (
	SessionEmpty          SessionState = "empty"
	SessionStaged         SessionState = "staged"
	SessionAwaitingMethod SessionState = "awaiting_method"
	SessionConfirmed      SessionState = "confirmed"
	SessionPersisted      SessionState = "persisted"
)

// BuyerInfo is captured when the cart is staged.
type BuyerInfo struct {
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	OrderDate     string `json:"order_date,omitempty"` // Optional YYYY-MM-DD business date.
}

// SessionView is a read-only copy of a staff member's ordering session.
type SessionView struct {
	State            SessionState         `json:"state"`
	Items            []entity.CartItem    `json:"items"`
	Total            int64                `json:"total"`
	StagedTotal      int64                `json:"staged_total,omitempty"`
	PaymentMethod    entity.PaymentMethod `json:"payment_method,omitempty"`
	AwaitingTransfer bool                 `json:"awaiting_transfer"`
	Buyer            *BuyerInfo           `json:"buyer,omitempty"`
	Reference        string               `json:"reference,omitempty"` // Transfer memo while staged.
}

// CheckoutUsecase drives the per-staff cart and checkout state machine.
type CheckoutUsecase interface {
	// GetSession returns the current session of staffID.
	GetSession(ctx context.Context, staffID uuid.UUID) (*SessionView, error)

	// AddItem adds one unit of itemID to the cart.
	AddItem(ctx context.Context, staffID, itemID uuid.UUID) (*SessionView, error)

	// ChangeQuantity adjusts a cart line by delta.
	ChangeQuantity(ctx context.Context, staffID, itemID uuid.UUID, delta int) (*SessionView, error)

	// RemoveItem drops a cart line.
	RemoveItem(ctx context.Context, staffID, itemID uuid.UUID) (*SessionView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, staffID uuid.UUID) (*SessionView, error)

	// Stage freezes the cart with buyer info and waits for a payment method.
	Stage(ctx context.Context, staffID uuid.UUID, buyer BuyerInfo) (*SessionView, error)

	// SelectPaymentMethod chooses how the staged order is paid.
	SelectPaymentMethod(ctx context.Context, staffID uuid.UUID, method entity.PaymentMethod) (*SessionView, error)

	// Cancel drops the staged context and keeps the cart.
	Cancel(ctx context.Context, staffID uuid.UUID) (*SessionView, error)

	// Confirm persists the staged order and resets the session.
	Confirm(ctx context.Context, staffID uuid.UUID, staffName string) (*entity.Order, error)

	// TransferQR renders the bank transfer QR for the staged total.
	TransferQR(ctx context.Context, staffID uuid.UUID) ([]byte, error)

	// DropSession forgets the session of staffID.
	DropSession(staffID uuid.UUID)
}
