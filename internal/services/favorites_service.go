package services

import (
	"context"
	"log"

	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/google/uuid"
)

type FavoritesService interface {
	Add(ctx context.Context, userID, vehicleID uuid.UUID) (*models.FavoriteVehicle, error)
	ListVehicles(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error)
	Remove(ctx context.Context, userID, vehicleID uuid.UUID) error
}

type favoritesService struct {
	favoriteRepo repositories.FavoriteRepository
	vehicleRepo  repositories.VehicleRepository
}

func NewFavoritesService(favoriteRepo repositories.FavoriteRepository, vehicleRepo repositories.VehicleRepository) FavoritesService {
	return &favoritesService{favoriteRepo: favoriteRepo, vehicleRepo: vehicleRepo}
}

func (s *favoritesService) Add(ctx context.Context, userID, vehicleID uuid.UUID) (*models.FavoriteVehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	favorite := &models.FavoriteVehicle{
		ID:        uuid.New(),
		UserID:    userID,
		VehicleID: vehicleID,
	}
	return s.favoriteRepo.Add(ctx, favorite)
}

// ListVehicles returns the favorited vehicles themselves. Listings deleted
// since being favorited are skipped.
func (s *favoritesService) ListVehicles(ctx context.Context, userID uuid.UUID) ([]*models.Vehicle, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	vehicles := make([]*models.Vehicle, 0, len(favorites))
	for _, favorite := range favorites {
		vehicle, err := s.vehicleRepo.GetByID(ctx, favorite.VehicleID)
		if err != nil {
			log.Printf("WARN: failed to load favorited vehicle %s: %v", favorite.VehicleID, err)
			continue
		}
		if vehicle != nil {
			vehicles = append(vehicles, vehicle)
		}
	}
	return vehicles, nil
}

func (s *favoritesService) Remove(ctx context.Context, userID, vehicleID uuid.UUID) error {
	return s.favoriteRepo.Remove(ctx, userID, vehicleID)
}
