package models

import (
	"time"

	"github.com/google/uuid"
)

// Analytics periods
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// DealerAnalytics is a point-in-time snapshot of a dealer's sales and
// inventory numbers for one reporting period.
type DealerAnalytics struct {
	ID               uuid.UUID `json:"id" db:"id"`
	DealerID         uuid.UUID `json:"dealer_id" db:"dealer_id"`
	Period           string    `json:"period" db:"period"`
	PeriodDate       time.Time `json:"period_date" db:"period_date"`
	TotalSales       int       `json:"total_sales" db:"total_sales"`
	TotalRevenue     float64   `json:"total_revenue" db:"total_revenue"`
	AverageSalePrice float64   `json:"average_sale_price" db:"average_sale_price"`
	ActiveListings   int       `json:"active_listings" db:"active_listings"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
