package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Vehicle caching
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)
	SetVehicle(ctx context.Context, vehicle *models.Vehicle, ttl time.Duration) error
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error

	// Dealer caching
	GetDealer(ctx context.Context, dealerID uuid.UUID) (*models.Dealer, error)
	SetDealer(ctx context.Context, dealer *models.Dealer, ttl time.Duration) error
	DeleteDealer(ctx context.Context, dealerID uuid.UUID) error

	// Featured listing caching
	GetFeatured(ctx context.Context) ([]*models.Vehicle, error)
	SetFeatured(ctx context.Context, vehicles []*models.Vehicle, ttl time.Duration) error
	DeleteFeatured(ctx context.Context) error

	// Analytics caching
	GetDealerAnalytics(ctx context.Context, dealerID uuid.UUID, period string) (*models.DealerAnalytics, error)
	SetDealerAnalytics(ctx context.Context, snapshot *models.DealerAnalytics, ttl time.Duration) error

	// Generic string operations for token management
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // cache miss
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func vehicleKey(id uuid.UUID) string {
	return fmt.Sprintf("carmart:vehicle:%s", id.String())
}

func dealerKey(id uuid.UUID) string {
	return fmt.Sprintf("carmart:dealer:%s", id.String())
}

const featuredKey = "carmart:vehicles:featured"

func (r *redisCacheService) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	found, err := r.getJSON(ctx, vehicleKey(vehicleID), &vehicle)
	if err != nil || !found {
		return nil, err
	}
	return &vehicle, nil
}

func (r *redisCacheService) SetVehicle(ctx context.Context, vehicle *models.Vehicle, ttl time.Duration) error {
	return r.setJSON(ctx, vehicleKey(vehicle.ID), vehicle, ttl)
}

func (r *redisCacheService) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	return r.client.Del(ctx, vehicleKey(vehicleID)).Err()
}

func (r *redisCacheService) GetDealer(ctx context.Context, dealerID uuid.UUID) (*models.Dealer, error) {
	var dealer models.Dealer
	found, err := r.getJSON(ctx, dealerKey(dealerID), &dealer)
	if err != nil || !found {
		return nil, err
	}
	return &dealer, nil
}

func (r *redisCacheService) SetDealer(ctx context.Context, dealer *models.Dealer, ttl time.Duration) error {
	return r.setJSON(ctx, dealerKey(dealer.ID), dealer, ttl)
}

func (r *redisCacheService) DeleteDealer(ctx context.Context, dealerID uuid.UUID) error {
	return r.client.Del(ctx, dealerKey(dealerID)).Err()
}

func (r *redisCacheService) GetFeatured(ctx context.Context) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	found, err := r.getJSON(ctx, featuredKey, &vehicles)
	if err != nil || !found {
		return nil, err
	}
	return vehicles, nil
}

func (r *redisCacheService) SetFeatured(ctx context.Context, vehicles []*models.Vehicle, ttl time.Duration) error {
	return r.setJSON(ctx, featuredKey, vehicles, ttl)
}

func (r *redisCacheService) DeleteFeatured(ctx context.Context) error {
	return r.client.Del(ctx, featuredKey).Err()
}

func (r *redisCacheService) GetDealerAnalytics(ctx context.Context, dealerID uuid.UUID, period string) (*models.DealerAnalytics, error) {
	key := fmt.Sprintf("carmart:analytics:%s:%s", dealerID.String(), period)
	var snapshot models.DealerAnalytics
	found, err := r.getJSON(ctx, key, &snapshot)
	if err != nil || !found {
		return nil, err
	}
	return &snapshot, nil
}

func (r *redisCacheService) SetDealerAnalytics(ctx context.Context, snapshot *models.DealerAnalytics, ttl time.Duration) error {
	key := fmt.Sprintf("carmart:analytics:%s:%s", snapshot.DealerID.String(), snapshot.Period)
	return r.setJSON(ctx, key, snapshot, ttl)
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
