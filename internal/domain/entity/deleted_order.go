// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultActorName identifies a deletion without a named actor.
	DefaultActorName = "Anonymous"
	// DefaultActorRole is recorded when the actor role is unknown.
	DefaultActorRole = RoleStaff
)

// Actor is who performed an audited action.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// Normalized fills missing name and role with the defaults.
func (a Actor) Normalized() Actor {
	if a.Name == "" {
		a.Name = DefaultActorName
	}
	if !a.Role.IsValid() {
		a.Role = DefaultActorRole
	}

	return a
}

// DeletedItemSummary is the item summary kept in the deletion log.
type DeletedItemSummary struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DeletedOrderLog is an append-only audit record of a deleted order.
type DeletedOrderLog struct {
	ID              uuid.UUID            `json:"id"`
	OriginalOrderID uuid.UUID            `json:"original_order_id"`
	Total           int64                `json:"total"`
	Items           []DeletedItemSummary `json:"items"`
	PaymentMethod   PaymentMethod        `json:"payment_method"`
	OrderTimestamp  time.Time            `json:"order_timestamp"`
	StaffID         uuid.UUID            `json:"staff_id"`
	DeletedAt       time.Time            `json:"deleted_at"`
	DeletedBy       string               `json:"deleted_by"`
	DeletedByRole   Role                 `json:"deleted_by_role"`
}

// NewDeletedOrderLog builds the audit record for order removed by actor at deletedAt.
func NewDeletedOrderLog(order *Order, actor Actor, deletedAt time.Time) *DeletedOrderLog {
	actor = actor.Normalized()

	items := make([]DeletedItemSummary, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, DeletedItemSummary{Name: line.Name, Quantity: line.Quantity})
	}

	return &DeletedOrderLog{
		ID:              uuid.New(),
		OriginalOrderID: order.ID,
		Total:           order.Total,
		Items:           items,
		PaymentMethod:   order.PaymentMethod,
		OrderTimestamp:  order.Timestamp,
		StaffID:         order.StaffID,
		DeletedAt:       deletedAt,
		DeletedBy:       actor.Name,
		DeletedByRole:   actor.Role,
	}
}
