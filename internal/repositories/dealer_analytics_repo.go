package repositories

import (
	"context"

	"carmart/internal/models"

	"github.com/google/uuid"
)

type DealerAnalyticsRepository interface {
	Create(ctx context.Context, snapshot *models.DealerAnalytics) error
	ListByDealerAndPeriod(ctx context.Context, dealerID uuid.UUID, period string) ([]*models.DealerAnalytics, error)
}

type dealerAnalyticsRepo struct {
	db DB
}

func NewDealerAnalyticsRepo(db DB) DealerAnalyticsRepository {
	return &dealerAnalyticsRepo{db: db}
}

func (r *dealerAnalyticsRepo) Create(ctx context.Context, s *models.DealerAnalytics) error {
	query := `
		INSERT INTO dealer_analytics (id, dealer_id, period, period_date, total_sales, total_revenue,
			average_sale_price, active_listings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.DealerID, s.Period, s.PeriodDate, s.TotalSales, s.TotalRevenue, s.AverageSalePrice, s.ActiveListings,
	)
	return err
}

func (r *dealerAnalyticsRepo) ListByDealerAndPeriod(ctx context.Context, dealerID uuid.UUID, period string) ([]*models.DealerAnalytics, error) {
	query := `
		SELECT id, dealer_id, period, period_date, total_sales, total_revenue, average_sale_price, active_listings, created_at
		FROM dealer_analytics
		WHERE dealer_id = $1 AND period = $2
		ORDER BY period_date DESC
	`
	rows, err := r.db.Query(ctx, query, dealerID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.DealerAnalytics
	for rows.Next() {
		s := &models.DealerAnalytics{}
		if err := rows.Scan(&s.ID, &s.DealerID, &s.Period, &s.PeriodDate, &s.TotalSales, &s.TotalRevenue,
			&s.AverageSalePrice, &s.ActiveListings, &s.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
