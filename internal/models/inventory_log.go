package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory log actions
const (
	LogActionAdded        = "added"
	LogActionUpdated      = "updated"
	LogActionReserved     = "reserved"
	LogActionSold         = "sold"
	LogActionReturned     = "returned"
	LogActionRemoved      = "removed"
	LogActionPriceChanged = "price_changed"
)

// InventoryLog is an immutable audit record of one inventory-affecting
// action against a vehicle. Entries are created, never mutated or deleted.
type InventoryLog struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	VehicleID      uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	DealerID       uuid.UUID  `json:"dealer_id" db:"dealer_id"`
	Action         string     `json:"action" db:"action"`
	PreviousStatus *string    `json:"previous_status,omitempty" db:"previous_status"`
	NewStatus      string     `json:"new_status" db:"new_status"`
	PreviousPrice  *float64   `json:"previous_price,omitempty" db:"previous_price"`
	NewPrice       *float64   `json:"new_price,omitempty" db:"new_price"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	PerformedBy    *uuid.UUID `json:"performed_by,omitempty" db:"performed_by"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}
