package services

import (
	"context"
	"errors"
	"log"
	"time"

	"carmart/internal/caching"
	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/google/uuid"
)

const dealerCacheTTL = 15 * time.Minute

type DealerService interface {
	Create(ctx context.Context, dealer *models.Dealer) (*models.Dealer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error)
	List(ctx context.Context, limit, offset int) ([]*models.Dealer, error)
	ListByLocation(ctx context.Context, location string) ([]*models.Dealer, error)
}

type dealerService struct {
	dealerRepo repositories.DealerRepository
	cache      caching.CacheService
}

func NewDealerService(dealerRepo repositories.DealerRepository, cache caching.CacheService) DealerService {
	return &dealerService{dealerRepo: dealerRepo, cache: cache}
}

func (s *dealerService) Create(ctx context.Context, dealer *models.Dealer) (*models.Dealer, error) {
	if dealer.Name == "" {
		return nil, errors.New("dealer name is required")
	}
	if dealer.Location == "" {
		return nil, errors.New("dealer location is required")
	}

	dealer.ID = uuid.New()
	dealer.Rating = 0
	dealer.ReviewCount = 0
	if err := s.dealerRepo.Create(ctx, dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

func (s *dealerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error) {
	if cached, err := s.cache.GetDealer(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("WARN: cache error for dealer %s: %v", id, err)
	}

	dealer, err := s.dealerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, nil
	}

	if err := s.cache.SetDealer(ctx, dealer, dealerCacheTTL); err != nil {
		log.Printf("WARN: failed to cache dealer %s: %v", id, err)
	}
	return dealer, nil
}

func (s *dealerService) List(ctx context.Context, limit, offset int) ([]*models.Dealer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.dealerRepo.List(ctx, limit, offset)
}

func (s *dealerService) ListByLocation(ctx context.Context, location string) ([]*models.Dealer, error) {
	return s.dealerRepo.ListByLocation(ctx, location)
}
