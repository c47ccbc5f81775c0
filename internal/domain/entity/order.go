// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how a customer paid. Payment is attested manually by staff.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentPostpaid PaymentMethod = "postpaid"
)

// PaymentMethods lists every method in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentTransfer, PaymentPostpaid}

// String returns the string representation of the PaymentMethod.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid checks if the PaymentMethod is a valid value.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentTransfer, PaymentPostpaid:
		return true
	default:
		return false
	}
}

// Label returns the Vietnamese label used in notifications and reports.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCash:
		return "Tiền mặt"
	case PaymentTransfer:
		return "Chuyển khoản"
	case PaymentPostpaid:
		return "Trả sau"
	default:
		return string(p)
	}
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderSourceApp marks orders taken through the staff app.
const OrderSourceApp = "app"

// Order is a confirmed sale. Items and total never change after creation.
type Order struct {
	ID            uuid.UUID     `json:"id"`                   // The Global Unique Identifier (GUID) for the order.
	Items         []CartItem    `json:"items"`                // Cart snapshot in insertion order.
	Total         int64         `json:"total"`                // Σ price × quantity at confirm time.
	PaymentMethod PaymentMethod `json:"payment_method"`       // cash, transfer or postpaid.
	Status        OrderStatus   `json:"status"`               // Always completed at creation.
	Timestamp     time.Time     `json:"timestamp"`            // When the order was confirmed.
	OrderDate     *time.Time    `json:"order_date,omitempty"` // Optional logical business date.
	StaffID       uuid.UUID     `json:"staff_id"`             // The staff member who took the order.
	Source        string        `json:"source"`               // Always "app".
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
}

// EffectiveDate returns the logical order date when set, else the confirm timestamp.
func (o *Order) EffectiveDate() time.Time {
	if o.OrderDate != nil && !o.OrderDate.IsZero() {
		return *o.OrderDate
	}

	return o.Timestamp
}

// ItemCount sums line quantities.
func (o *Order) ItemCount() int {
	total := 0
	for _, line := range o.Items {
		total += line.Quantity
	}

	return total
}

// ContainsItem reports whether any line's item id or stock owner matches itemID.
func (o *Order) ContainsItem(itemID uuid.UUID) bool {
	for _, line := range o.Items {
		if line.ItemID == itemID || (line.ParentID != nil && *line.ParentID == itemID) {
			return true
		}
	}

	return false
}
