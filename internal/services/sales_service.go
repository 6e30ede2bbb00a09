package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carmart/internal/caching"
	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SalesService interface {
	RecordSale(ctx context.Context, sale *models.Sale) (*models.Sale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Sale, error)
	UpdateSale(ctx context.Context, id uuid.UUID, patch *models.SaleUpdate) (*models.Sale, error)
}

type salesService struct {
	db          repositories.DB
	saleRepo    repositories.SaleRepository
	vehicleRepo repositories.VehicleRepository
	logRepo     repositories.InventoryLogRepository
	cache       caching.CacheService
}

func NewSalesService(db repositories.DB, saleRepo repositories.SaleRepository, vehicleRepo repositories.VehicleRepository, logRepo repositories.InventoryLogRepository, cache caching.CacheService) SalesService {
	return &salesService{
		db:          db,
		saleRepo:    saleRepo,
		vehicleRepo: vehicleRepo,
		logRepo:     logRepo,
		cache:       cache,
	}
}

// RecordSale runs the vehicle status change, the sale row and the audit log
// entry in one transaction. Either all three land or none do.
func (s *salesService) RecordSale(ctx context.Context, sale *models.Sale) (*models.Sale, error) {
	if sale.BuyerName == "" {
		return nil, errors.New("buyer name is required")
	}
	if sale.SalePrice <= 0 {
		return nil, errors.New("sale price must be positive")
	}
	if sale.PaymentMethod == "" {
		return nil, errors.New("payment method is required")
	}

	sale.ID = uuid.New()
	if sale.Status == "" {
		sale.Status = models.SaleStatusPending
	}
	now := time.Now()
	if sale.Status == models.SaleStatusCompleted && sale.CompletedAt == nil {
		sale.CompletedAt = &now
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.recordSaleTx(ctx, tx, sale, now); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Printf("WARN: rollback failed for sale %s: %v", sale.ID, rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteVehicle(ctx, sale.VehicleID); err != nil {
		log.Printf("WARN: failed to invalidate vehicle cache %s: %v", sale.VehicleID, err)
	}
	if err := s.cache.DeleteFeatured(ctx); err != nil {
		log.Printf("WARN: failed to invalidate featured cache: %v", err)
	}
	return sale, nil
}

func (s *salesService) recordSaleTx(ctx context.Context, tx pgx.Tx, sale *models.Sale, soldDate time.Time) error {
	previous, err := s.vehicleRepo.MarkSoldTx(ctx, tx, sale.VehicleID, sale.SalePrice, soldDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrVehicleNotFound
		}
		return err
	}

	if err := s.saleRepo.CreateTx(ctx, tx, sale); err != nil {
		return err
	}

	notes := fmt.Sprintf("Sold to %s for $%.2f", sale.BuyerName, sale.SalePrice)
	entry := &models.InventoryLog{
		ID:             uuid.New(),
		VehicleID:      sale.VehicleID,
		DealerID:       sale.DealerID,
		Action:         models.LogActionSold,
		PreviousStatus: &previous,
		NewStatus:      models.StatusSold,
		NewPrice:       &sale.SalePrice,
		Notes:          &notes,
	}
	return s.logRepo.CreateTx(ctx, tx, entry)
}

func (s *salesService) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}

func (s *salesService) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Sale, error) {
	return s.saleRepo.ListByDealer(ctx, dealerID)
}

func (s *salesService) UpdateSale(ctx context.Context, id uuid.UUID, patch *models.SaleUpdate) (*models.Sale, error) {
	existing, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.saleRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.saleRepo.GetByID(ctx, id)
}
