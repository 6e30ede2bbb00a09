package services

import (
	"context"
	"time"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// Mock repositories and services shared across the service tests.

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Vehicle, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Search(ctx context.Context, filter *models.VehicleSearchFilter) ([]*models.Vehicle, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Vehicle), args.Int(1), args.Error(2)
}

func (m *MockVehicleRepository) Featured(ctx context.Context) ([]*models.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, id uuid.UUID, patch *models.VehicleUpdate, pricePoint *models.PricePoint) error {
	args := m.Called(ctx, id, patch, pricePoint)
	return args.Error(0)
}

func (m *MockVehicleRepository) MarkSoldTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, soldPrice float64, soldDate time.Time) (string, error) {
	args := m.Called(ctx, tx, id, soldPrice, soldDate)
	return args.String(0), args.Error(1)
}

func (m *MockVehicleRepository) CountActiveByDealer(ctx context.Context, dealerID uuid.UUID) (int, error) {
	args := m.Called(ctx, dealerID)
	return args.Int(0), args.Error(1)
}

type MockDealerRepository struct {
	mock.Mock
}

func (m *MockDealerRepository) Create(ctx context.Context, dealer *models.Dealer) error {
	args := m.Called(ctx, dealer)
	return args.Error(0)
}

func (m *MockDealerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dealer), args.Error(1)
}

func (m *MockDealerRepository) List(ctx context.Context, limit, offset int) ([]*models.Dealer, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Dealer), args.Error(1)
}

func (m *MockDealerRepository) ListByLocation(ctx context.Context, location string) ([]*models.Dealer, error) {
	args := m.Called(ctx, location)
	return args.Get(0).([]*models.Dealer), args.Error(1)
}

func (m *MockDealerRepository) RefreshRating(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInventoryLogRepository struct {
	mock.Mock
}

func (m *MockInventoryLogRepository) Create(ctx context.Context, entry *models.InventoryLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryLogRepository) CreateTx(ctx context.Context, tx pgx.Tx, entry *models.InventoryLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockInventoryLogRepository) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.InventoryLog, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).([]*models.InventoryLog), args.Error(1)
}

func (m *MockInventoryLogRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.InventoryLog, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]*models.InventoryLog), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Review, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).([]*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Review, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]*models.Review), args.Error(1)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) CreateTx(ctx context.Context, tx pgx.Tx, sale *models.Sale) error {
	args := m.Called(ctx, tx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Sale, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).([]*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) Update(ctx context.Context, id uuid.UUID, patch *models.SaleUpdate) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockSaleRepository) TotalsByDealer(ctx context.Context, dealerID uuid.UUID, since time.Time) (int, float64, float64, error) {
	args := m.Called(ctx, dealerID, since)
	return args.Int(0), args.Get(1).(float64), args.Get(2).(float64), args.Error(3)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *models.FavoriteVehicle) (*models.FavoriteVehicle, error) {
	args := m.Called(ctx, favorite)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteVehicle), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FavoriteVehicle, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.FavoriteVehicle), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, vehicleID uuid.UUID) error {
	args := m.Called(ctx, userID, vehicleID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockCacheService) SetVehicle(ctx context.Context, vehicle *models.Vehicle, ttl time.Duration) error {
	args := m.Called(ctx, vehicle, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	args := m.Called(ctx, vehicleID)
	return args.Error(0)
}

func (m *MockCacheService) GetDealer(ctx context.Context, dealerID uuid.UUID) (*models.Dealer, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dealer), args.Error(1)
}

func (m *MockCacheService) SetDealer(ctx context.Context, dealer *models.Dealer, ttl time.Duration) error {
	args := m.Called(ctx, dealer, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteDealer(ctx context.Context, dealerID uuid.UUID) error {
	args := m.Called(ctx, dealerID)
	return args.Error(0)
}

func (m *MockCacheService) GetFeatured(ctx context.Context) ([]*models.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockCacheService) SetFeatured(ctx context.Context, vehicles []*models.Vehicle, ttl time.Duration) error {
	args := m.Called(ctx, vehicles, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteFeatured(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheService) GetDealerAnalytics(ctx context.Context, dealerID uuid.UUID, period string) (*models.DealerAnalytics, error) {
	args := m.Called(ctx, dealerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DealerAnalytics), args.Error(1)
}

func (m *MockCacheService) SetDealerAnalytics(ctx context.Context, snapshot *models.DealerAnalytics, ttl time.Duration) error {
	args := m.Called(ctx, snapshot, ttl)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) GetPresignedURL(objectName string, expiry time.Duration) (string, error) {
	args := m.Called(objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockMediaService) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMediaService) ConvertGoogleDriveURL(shareURL string) (string, error) {
	args := m.Called(shareURL)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) ResolveImages(ctx context.Context, vehicle *models.Vehicle) []string {
	args := m.Called(ctx, vehicle)
	return args.Get(0).([]string)
}
