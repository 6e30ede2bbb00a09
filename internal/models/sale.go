package models

import (
	"time"

	"github.com/google/uuid"
)

// Sale status values
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
	SaleStatusRefunded  = "refunded"
)

// Payment method values
const (
	PaymentCash    = "cash"
	PaymentFinance = "finance"
	PaymentLease   = "lease"
	PaymentTradeIn = "trade_in"
)

type Sale struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	VehicleID     uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	DealerID      uuid.UUID  `json:"dealer_id" db:"dealer_id"`
	BuyerName     string     `json:"buyer_name" db:"buyer_name"`
	BuyerEmail    *string    `json:"buyer_email,omitempty" db:"buyer_email"`
	BuyerPhone    *string    `json:"buyer_phone,omitempty" db:"buyer_phone"`
	SalePrice     float64    `json:"sale_price" db:"sale_price"`
	Commission    *float64   `json:"commission,omitempty" db:"commission"`
	PaymentMethod string     `json:"payment_method" db:"payment_method"`
	Status        string     `json:"status" db:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// SaleUpdate is a partial patch for an existing sale. CompletedAt is stamped
// by the storage layer the first time Status transitions to completed and is
// never overwritten afterwards, so it is deliberately absent here.
type SaleUpdate struct {
	BuyerName     *string  `json:"buyer_name,omitempty"`
	BuyerEmail    *string  `json:"buyer_email,omitempty"`
	BuyerPhone    *string  `json:"buyer_phone,omitempty"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	Commission    *float64 `json:"commission,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}
