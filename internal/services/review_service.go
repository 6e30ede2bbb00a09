package services

import (
	"context"
	"errors"
	"log"

	"carmart/internal/caching"
	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/google/uuid"
)

type ReviewService interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Review, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	dealerRepo repositories.DealerRepository
	cache      caching.CacheService
}

func NewReviewService(reviewRepo repositories.ReviewRepository, dealerRepo repositories.DealerRepository, cache caching.CacheService) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, dealerRepo: dealerRepo, cache: cache}
}

// Create stores the review and, for dealer reviews, recomputes the dealer's
// aggregate rating in the same request. Vehicle-only reviews leave dealer
// aggregates untouched.
func (s *reviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if review.DealerID == nil && review.VehicleID == nil {
		return nil, errors.New("review must target a dealer or a vehicle")
	}

	review.ID = uuid.New()
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if review.DealerID != nil {
		if err := s.dealerRepo.RefreshRating(ctx, *review.DealerID); err != nil {
			return nil, err
		}
		if err := s.cache.DeleteDealer(ctx, *review.DealerID); err != nil {
			log.Printf("WARN: failed to invalidate dealer cache %s: %v", *review.DealerID, err)
		}
	}
	return review, nil
}

func (s *reviewService) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Review, error) {
	return s.reviewRepo.ListByDealer(ctx, dealerID)
}

func (s *reviewService) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Review, error) {
	return s.reviewRepo.ListByVehicle(ctx, vehicleID)
}
