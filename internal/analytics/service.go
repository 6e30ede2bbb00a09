package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"carmart/internal/caching"
	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/google/uuid"
)

const snapshotCacheTTL = 30 * time.Minute

// AnalyticsService computes and persists per-dealer sales snapshots.
type AnalyticsService struct {
	saleRepo      repositories.SaleRepository
	vehicleRepo   repositories.VehicleRepository
	analyticsRepo repositories.DealerAnalyticsRepository
	cacheService  caching.CacheService
}

func NewAnalyticsService(saleRepo repositories.SaleRepository, vehicleRepo repositories.VehicleRepository, analyticsRepo repositories.DealerAnalyticsRepository, cacheService caching.CacheService) *AnalyticsService {
	return &AnalyticsService{
		saleRepo:      saleRepo,
		vehicleRepo:   vehicleRepo,
		analyticsRepo: analyticsRepo,
		cacheService:  cacheService,
	}
}

// periodWindow returns how far back a reporting period reaches.
func periodWindow(period string) (time.Duration, error) {
	switch period {
	case models.PeriodDaily:
		return 24 * time.Hour, nil
	case models.PeriodWeekly:
		return 7 * 24 * time.Hour, nil
	case models.PeriodMonthly:
		return 30 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown analytics period %q", period)
	}
}

// Snapshot computes the dealer's numbers for the period, stores the snapshot
// and caches it. Only completed sales count toward revenue.
func (s *AnalyticsService) Snapshot(ctx context.Context, dealerID uuid.UUID, period string) (*models.DealerAnalytics, error) {
	window, err := periodWindow(period)
	if err != nil {
		return nil, err
	}

	if cached, cacheErr := s.cacheService.GetDealerAnalytics(ctx, dealerID, period); cached != nil {
		return cached, nil
	} else if cacheErr != nil {
		log.Printf("WARN: analytics cache error for dealer %s: %v", dealerID, cacheErr)
	}

	now := time.Now()
	totalSales, totalRevenue, averagePrice, err := s.saleRepo.TotalsByDealer(ctx, dealerID, now.Add(-window))
	if err != nil {
		return nil, err
	}
	activeListings, err := s.vehicleRepo.CountActiveByDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	snapshot := &models.DealerAnalytics{
		ID:               uuid.New(),
		DealerID:         dealerID,
		Period:           period,
		PeriodDate:       now,
		TotalSales:       totalSales,
		TotalRevenue:     totalRevenue,
		AverageSalePrice: averagePrice,
		ActiveListings:   activeListings,
	}

	if err := s.analyticsRepo.Create(ctx, snapshot); err != nil {
		return nil, err
	}
	if err := s.cacheService.SetDealerAnalytics(ctx, snapshot, snapshotCacheTTL); err != nil {
		log.Printf("WARN: failed to cache analytics for dealer %s: %v", dealerID, err)
	}
	return snapshot, nil
}

// History returns previously persisted snapshots, newest first.
func (s *AnalyticsService) History(ctx context.Context, dealerID uuid.UUID, period string) ([]*models.DealerAnalytics, error) {
	if _, err := periodWindow(period); err != nil {
		return nil, err
	}
	return s.analyticsRepo.ListByDealerAndPeriod(ctx, dealerID, period)
}
