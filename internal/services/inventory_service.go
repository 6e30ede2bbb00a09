package services

import (
	"context"
	"errors"
	"fmt"

	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/google/uuid"
)

var validLogActions = map[string]bool{
	models.LogActionAdded:        true,
	models.LogActionUpdated:      true,
	models.LogActionReserved:     true,
	models.LogActionSold:         true,
	models.LogActionReturned:     true,
	models.LogActionRemoved:      true,
	models.LogActionPriceChanged: true,
}

// InventoryService exposes the append-only inventory audit trail.
type InventoryService interface {
	CreateEntry(ctx context.Context, entry *models.InventoryLog) (*models.InventoryLog, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.InventoryLog, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.InventoryLog, error)
}

type inventoryService struct {
	logRepo     repositories.InventoryLogRepository
	vehicleRepo repositories.VehicleRepository
}

func NewInventoryService(logRepo repositories.InventoryLogRepository, vehicleRepo repositories.VehicleRepository) InventoryService {
	return &inventoryService{logRepo: logRepo, vehicleRepo: vehicleRepo}
}

func (s *inventoryService) CreateEntry(ctx context.Context, entry *models.InventoryLog) (*models.InventoryLog, error) {
	if !validLogActions[entry.Action] {
		return nil, fmt.Errorf("unknown inventory action %q", entry.Action)
	}
	if entry.NewStatus == "" {
		return nil, errors.New("new status is required")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, entry.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	entry.ID = uuid.New()
	if entry.DealerID == uuid.Nil {
		entry.DealerID = vehicle.DealerID
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *inventoryService) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.InventoryLog, error) {
	return s.logRepo.ListByDealer(ctx, dealerID)
}

func (s *inventoryService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.InventoryLog, error) {
	return s.logRepo.ListByVehicle(ctx, vehicleID)
}
