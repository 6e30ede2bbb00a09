package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory status values for a vehicle listing
const (
	StatusInStock    = "in_stock"
	StatusLowStock   = "low_stock"
	StatusOutOfStock = "out_of_stock"
	StatusReserved   = "reserved"
	StatusSold       = "sold"
)

// Vehicle condition values
const (
	ConditionNew       = "new"
	ConditionUsed      = "used"
	ConditionCertified = "certified"
)

// PricePoint is one entry in a vehicle's price history. The history is
// append-only; entries are never rewritten or dropped.
type PricePoint struct {
	Price  float64   `json:"price"`
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

type Vehicle struct {
	ID                uuid.UUID    `json:"id" db:"id"`
	DealerID          uuid.UUID    `json:"dealer_id" db:"dealer_id"`
	Make              string       `json:"make" db:"make"`
	Model             string       `json:"model" db:"model"`
	Year              int          `json:"year" db:"year"`
	Price             float64      `json:"price" db:"price"`
	CalculatedPrice   float64      `json:"calculated_price" db:"calculated_price"`
	Mileage           int          `json:"mileage" db:"mileage"`
	FuelType          string       `json:"fuel_type" db:"fuel_type"`
	Transmission      string       `json:"transmission" db:"transmission"`
	BodyType          string       `json:"body_type" db:"body_type"`
	Drivetrain        string       `json:"drivetrain" db:"drivetrain"`
	Engine            *string      `json:"engine,omitempty" db:"engine"`
	Horsepower        *int         `json:"horsepower,omitempty" db:"horsepower"`
	MPGCity           *int         `json:"mpg_city,omitempty" db:"mpg_city"`
	MPGHighway        *int         `json:"mpg_highway,omitempty" db:"mpg_highway"`
	SafetyRating      *int         `json:"safety_rating,omitempty" db:"safety_rating"`
	Color             *string      `json:"color,omitempty" db:"color"`
	VIN               *string      `json:"vin,omitempty" db:"vin"`
	Condition         string       `json:"condition" db:"condition"`
	Features          []string     `json:"features" db:"features"`
	ImageURLs         []string     `json:"image_urls" db:"image_urls"`
	ImageKeys         []string     `json:"image_keys" db:"image_keys"`
	GoogleDriveImages []string     `json:"google_drive_images" db:"google_drive_images"`
	Description       *string      `json:"description,omitempty" db:"description"`
	Available         bool         `json:"available" db:"available"`
	InventoryStatus   string       `json:"inventory_status" db:"inventory_status"`
	StockQuantity     int          `json:"stock_quantity" db:"stock_quantity"`
	ReservedBy        *uuid.UUID   `json:"reserved_by,omitempty" db:"reserved_by"`
	ReservedUntil     *time.Time   `json:"reserved_until,omitempty" db:"reserved_until"`
	SoldDate          *time.Time   `json:"sold_date,omitempty" db:"sold_date"`
	SoldPrice         *float64     `json:"sold_price,omitempty" db:"sold_price"`
	PriceHistory      []PricePoint `json:"price_history" db:"price_history"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`
}

// VehicleSearchFilter holds search and filter criteria for catalog queries.
// Nil/empty fields impose no constraint; all present predicates are ANDed.
type VehicleSearchFilter struct {
	Make         string     `json:"make,omitempty"`         // Case-insensitive substring match
	Model        string     `json:"model,omitempty"`        // Case-insensitive substring match
	MinPrice     *float64   `json:"min_price,omitempty"`    // Inclusive lower price bound
	MaxPrice     *float64   `json:"max_price,omitempty"`    // Inclusive upper price bound
	MinYear      *int       `json:"min_year,omitempty"`     // Inclusive lower year bound
	MaxYear      *int       `json:"max_year,omitempty"`     // Inclusive upper year bound
	FuelType     *string    `json:"fuel_type,omitempty"`    // Exact match
	Transmission *string    `json:"transmission,omitempty"` // Exact match
	BodyType     *string    `json:"body_type,omitempty"`    // Exact match
	Condition    *string    `json:"condition,omitempty"`    // Exact match
	MaxMileage   *int       `json:"max_mileage,omitempty"`  // Inclusive upper mileage bound
	DealerID     *uuid.UUID `json:"dealer_id,omitempty"`    // Dealer scope
	SortBy       string     `json:"sort_by,omitempty"`      // price_asc, price_desc, year_desc, mileage_asc, created_desc
	Limit        int        `json:"limit,omitempty"`        // Page size (default 20, max 100)
	Offset       int        `json:"offset,omitempty"`       // Page offset
}

// VehicleUpdate is a partial patch applied to an existing vehicle. Nil fields
// are left untouched; slice fields replace the stored value when non-nil.
type VehicleUpdate struct {
	Price             *float64   `json:"price,omitempty"`
	Mileage           *int       `json:"mileage,omitempty"`
	Color             *string    `json:"color,omitempty"`
	Condition         *string    `json:"condition,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Features          []string   `json:"features,omitempty"`
	ImageURLs         []string   `json:"image_urls,omitempty"`
	ImageKeys         []string   `json:"image_keys,omitempty"`
	GoogleDriveImages []string   `json:"google_drive_images,omitempty"`
	Available         *bool      `json:"available,omitempty"`
	InventoryStatus   *string    `json:"inventory_status,omitempty"`
	StockQuantity     *int       `json:"stock_quantity,omitempty"`
	ReservedBy        *uuid.UUID `json:"reserved_by,omitempty"`
	ReservedUntil     *time.Time `json:"reserved_until,omitempty"`
	SoldDate          *time.Time `json:"sold_date,omitempty"`
	SoldPrice         *float64   `json:"sold_price,omitempty"`
}
