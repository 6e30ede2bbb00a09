package services

import (
	"context"
	"errors"
	"log"
	"time"

	"carmart/internal/caching"
	"carmart/internal/models"
	"carmart/internal/pricing"
	"carmart/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDealerNotFound  = errors.New("dealer not found")
)

const vehicleCacheTTL = 10 * time.Minute

type VehicleService interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Vehicle, error)
	Search(ctx context.Context, filter *models.VehicleSearchFilter) ([]*models.Vehicle, int, error)
	Featured(ctx context.Context) ([]*models.Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.VehicleUpdate) (*models.Vehicle, error)
	CalculatePrice(ctx context.Context, input pricing.Input) (*pricing.Result, error)
}

type vehicleService struct {
	vehicleRepo repositories.VehicleRepository
	dealerRepo  repositories.DealerRepository
	logRepo     repositories.InventoryLogRepository
	calculator  *pricing.Calculator
	cache       caching.CacheService
	media       MediaService
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository, dealerRepo repositories.DealerRepository, logRepo repositories.InventoryLogRepository, calculator *pricing.Calculator, cache caching.CacheService, media MediaService) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		dealerRepo:  dealerRepo,
		logRepo:     logRepo,
		calculator:  calculator,
		cache:       cache,
		media:       media,
	}
}

// Create validates the listing, prices it and seeds its history before
// writing. The first price history entry always records the list price.
func (s *vehicleService) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.Make == "" || vehicle.Model == "" {
		return nil, errors.New("make and model are required")
	}
	if vehicle.Year <= 0 {
		return nil, errors.New("year is required")
	}
	if vehicle.Price <= 0 {
		return nil, errors.New("price must be positive")
	}

	dealer, err := s.dealerRepo.GetByID(ctx, vehicle.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, ErrDealerNotFound
	}

	vehicle.ID = uuid.New()
	if vehicle.InventoryStatus == "" {
		vehicle.InventoryStatus = models.StatusInStock
	}
	if vehicle.StockQuantity == 0 {
		vehicle.StockQuantity = 1
	}
	vehicle.Available = vehicle.InventoryStatus != models.StatusSold && vehicle.InventoryStatus != models.StatusOutOfStock

	// Estimate failure falls back to the list price rather than blocking
	// the listing.
	result, err := s.calculator.Calculate(pricing.Input{
		BasePrice: vehicle.Price,
		Mileage:   vehicle.Mileage,
		Year:      vehicle.Year,
		Condition: vehicle.Condition,
		Features:  vehicle.Features,
		Make:      vehicle.Make,
		Model:     vehicle.Model,
	})
	if err != nil {
		log.Printf("WARN: price calculation failed for %s %s: %v", vehicle.Make, vehicle.Model, err)
		vehicle.CalculatedPrice = vehicle.Price
	} else {
		vehicle.CalculatedPrice = float64(result.AdjustedPrice)
	}

	vehicle.PriceHistory = []models.PricePoint{
		{Price: vehicle.Price, Date: time.Now(), Reason: "Initial listing"},
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	notes := "Vehicle added to inventory"
	entry := &models.InventoryLog{
		ID:        uuid.New(),
		VehicleID: vehicle.ID,
		DealerID:  vehicle.DealerID,
		Action:    models.LogActionAdded,
		NewStatus: vehicle.InventoryStatus,
		NewPrice:  &vehicle.Price,
		Notes:     &notes,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("WARN: failed to log inventory addition for vehicle %s: %v", vehicle.ID, err)
	}

	if err := s.cache.DeleteFeatured(ctx); err != nil {
		log.Printf("WARN: failed to invalidate featured cache: %v", err)
	}
	return vehicle, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	if cached, err := s.cache.GetVehicle(ctx, id); cached != nil {
		return s.withResolvedImages(ctx, cached), nil
	} else if err != nil {
		log.Printf("WARN: cache error for vehicle %s: %v", id, err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}

	if err := s.cache.SetVehicle(ctx, vehicle, vehicleCacheTTL); err != nil {
		log.Printf("WARN: failed to cache vehicle %s: %v", id, err)
	}
	return s.withResolvedImages(ctx, vehicle), nil
}

func (s *vehicleService) List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.vehicleRepo.List(ctx, limit, offset)
}

func (s *vehicleService) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Vehicle, error) {
	return s.vehicleRepo.ListByDealer(ctx, dealerID)
}

func (s *vehicleService) Search(ctx context.Context, filter *models.VehicleSearchFilter) ([]*models.Vehicle, int, error) {
	return s.vehicleRepo.Search(ctx, filter)
}

func (s *vehicleService) Featured(ctx context.Context) ([]*models.Vehicle, error) {
	if cached, err := s.cache.GetFeatured(ctx); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("WARN: featured cache error: %v", err)
	}

	vehicles, err := s.vehicleRepo.Featured(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetFeatured(ctx, vehicles, vehicleCacheTTL); err != nil {
		log.Printf("WARN: failed to cache featured vehicles: %v", err)
	}
	return vehicles, nil
}

// Update applies the patch and, when the list price actually changes,
// appends a history entry and writes a price_changed log. Setting the same
// price again records nothing.
func (s *vehicleService) Update(ctx context.Context, id uuid.UUID, patch *models.VehicleUpdate) (*models.Vehicle, error) {
	current, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	var pricePoint *models.PricePoint
	if patch.Price != nil && *patch.Price != current.Price {
		pricePoint = &models.PricePoint{Price: *patch.Price, Date: time.Now(), Reason: "Price updated"}
	}

	if err := s.vehicleRepo.Update(ctx, id, patch, pricePoint); err != nil {
		return nil, err
	}

	if pricePoint != nil {
		entry := &models.InventoryLog{
			ID:            uuid.New(),
			VehicleID:     id,
			DealerID:      current.DealerID,
			Action:        models.LogActionPriceChanged,
			NewStatus:     current.InventoryStatus,
			PreviousPrice: &current.Price,
			NewPrice:      patch.Price,
		}
		if patch.InventoryStatus != nil {
			entry.NewStatus = *patch.InventoryStatus
		}
		if err := s.logRepo.Create(ctx, entry); err != nil {
			log.Printf("WARN: failed to log price change for vehicle %s: %v", id, err)
		}
	}

	if patch.ImageKeys != nil {
		s.removeDroppedImages(ctx, current.ImageKeys, patch.ImageKeys)
	}

	if err := s.cache.DeleteVehicle(ctx, id); err != nil {
		log.Printf("WARN: failed to invalidate vehicle cache %s: %v", id, err)
	}
	if err := s.cache.DeleteFeatured(ctx); err != nil {
		log.Printf("WARN: failed to invalidate featured cache: %v", err)
	}

	return s.vehicleRepo.GetByID(ctx, id)
}

// removeDroppedImages deletes stored objects whose keys the patch no longer
// references. The listing update has already committed; failures are logged
// and the orphaned object stays behind.
func (s *vehicleService) removeDroppedImages(ctx context.Context, before, after []string) {
	if s.media == nil {
		return
	}
	kept := make(map[string]struct{}, len(after))
	for _, key := range after {
		kept[key] = struct{}{}
	}
	for _, key := range before {
		if _, ok := kept[key]; ok {
			continue
		}
		if err := s.media.DeleteImage(ctx, key); err != nil {
			log.Printf("WARN: failed to delete image %s: %v", key, err)
		}
	}
}

func (s *vehicleService) CalculatePrice(ctx context.Context, input pricing.Input) (*pricing.Result, error) {
	return s.calculator.Calculate(input)
}

func (s *vehicleService) withResolvedImages(ctx context.Context, vehicle *models.Vehicle) *models.Vehicle {
	if s.media == nil || vehicle == nil {
		return vehicle
	}
	if len(vehicle.ImageKeys) == 0 && len(vehicle.GoogleDriveImages) == 0 {
		return vehicle
	}
	vehicle.ImageURLs = s.media.ResolveImages(ctx, vehicle)
	return vehicle
}
