package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"carmart/internal/analytics"
	"carmart/internal/caching"
	"carmart/internal/config"
	"carmart/internal/handlers"
	"carmart/internal/jobs/background"
	"carmart/internal/middleware"
	"carmart/internal/models"
	"carmart/internal/pricing"
	"carmart/internal/repositories"
	"carmart/internal/services"
	"carmart/pkg/database"
)

func main() {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			redisDB = parsed
		}
	}

	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	minioUseSSL := os.Getenv("MINIO_USE_SSL") == "true"
	minioBucket := os.Getenv("MINIO_BUCKET")
	if minioBucket == "" {
		minioBucket = "carmart-images"
	}

	valuationCfg, err := config.LoadValuation(os.Getenv("VALUATION_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load valuation config: %v", err)
	}
	calculator := pricing.NewCalculator(valuationCfg)

	cacheService := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	mediaService, err := services.NewMediaService(minioEndpoint, minioAccessKey, minioSecretKey, minioUseSSL, minioBucket)
	if err != nil {
		log.Fatalf("Failed to create media service: %v", err)
	}
	if err := mediaService.EnsureBucketExists(ctx); err != nil {
		log.Printf("WARN: could not ensure image bucket exists: %v", err)
	}

	// Repositories
	vehicleRepo := repositories.NewVehicleRepo(pool)
	dealerRepo := repositories.NewDealerRepo(pool)
	reviewRepo := repositories.NewReviewRepo(pool)
	saleRepo := repositories.NewSaleRepo(pool)
	inventoryLogRepo := repositories.NewInventoryLogRepo(pool)
	favoriteRepo := repositories.NewFavoriteRepo(pool)
	userRepo := repositories.NewUserRepo(pool)
	analyticsRepo := repositories.NewDealerAnalyticsRepo(pool)

	// Services
	vehicleService := services.NewVehicleService(vehicleRepo, dealerRepo, inventoryLogRepo, calculator, cacheService, mediaService)
	dealerService := services.NewDealerService(dealerRepo, cacheService)
	reviewService := services.NewReviewService(reviewRepo, dealerRepo, cacheService)
	salesService := services.NewSalesService(pool, saleRepo, vehicleRepo, inventoryLogRepo, cacheService)
	inventoryService := services.NewInventoryService(inventoryLogRepo, vehicleRepo)
	favoritesService := services.NewFavoritesService(favoriteRepo, vehicleRepo)
	authService := services.NewAuthService(userRepo, cacheService, jwtSecret, 900, 7*24*3600)
	analyticsService := analytics.NewAnalyticsService(saleRepo, vehicleRepo, analyticsRepo, cacheService)

	// Background jobs
	scheduler, err := background.NewJobScheduler(analyticsService, cacheService, dealerRepo, vehicleRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("WARN: scheduler shutdown error: %v", err)
		}
	}()

	// Handlers
	vehicleHandlers := handlers.NewVehicleHandlers(vehicleService)
	dealerHandlers := handlers.NewDealerHandlers(dealerService, vehicleService)
	reviewHandlers := handlers.NewReviewHandlers(reviewService)
	salesHandlers := handlers.NewSalesHandlers(salesService)
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService)
	favoritesHandlers := handlers.NewFavoritesHandlers(favoritesService)
	authHandlers := handlers.NewAuthHandlers(authService, userRepo)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsService)
	utilsHandlers := handlers.NewUtilsHandlers(mediaService)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheService)

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.Ready)

	v1 := e.Group("/v1")

	// Public routes
	v1.POST("/auth/signup", authHandlers.Signup)
	v1.POST("/auth/login", authHandlers.Login)
	v1.POST("/auth/refresh", authHandlers.Refresh)

	v1.GET("/cars", vehicleHandlers.ListVehicles)
	v1.GET("/cars/featured", vehicleHandlers.FeaturedVehicles)
	v1.GET("/cars/search", vehicleHandlers.SearchVehicles)
	v1.GET("/cars/:id", vehicleHandlers.GetVehicle)
	v1.POST("/cars/calculate-price", vehicleHandlers.CalculatePrice)

	v1.GET("/dealers", dealerHandlers.ListDealers)
	v1.GET("/dealers/:id", dealerHandlers.GetDealer)
	v1.GET("/dealers/:id/cars", dealerHandlers.DealerVehicles)

	v1.GET("/reviews", reviewHandlers.GetReviews)
	v1.POST("/utils/convert-google-drive-url", utilsHandlers.ConvertGoogleDriveURL)

	// Protected routes
	jwtConfig := echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(services.TokenClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(401, "Invalid token")
		},
	}
	auth := v1.Group("", echojwt.WithConfig(jwtConfig), middleware.InjectUserContext())
	auth.GET("/me", authHandlers.Me)

	auth.POST("/cars", vehicleHandlers.CreateVehicle, middleware.RequireRole(models.RoleDealer))
	auth.PATCH("/cars/:id", vehicleHandlers.UpdateVehicle, middleware.RequireRole(models.RoleDealer))
	auth.POST("/dealers", dealerHandlers.CreateDealer, middleware.RequireRole(models.RoleDealer))
	auth.POST("/reviews", reviewHandlers.CreateReview)

	auth.GET("/inventory/logs/:dealerId", inventoryHandlers.GetLogs, middleware.RequireRole(models.RoleDealer))
	auth.POST("/inventory/logs", inventoryHandlers.CreateLog, middleware.RequireRole(models.RoleDealer))

	auth.GET("/sales/:dealerId", salesHandlers.ListSales, middleware.RequireRole(models.RoleDealer))
	auth.POST("/sales", salesHandlers.CreateSale, middleware.RequireRole(models.RoleDealer))
	auth.PATCH("/sales/:id", salesHandlers.UpdateSale, middleware.RequireRole(models.RoleDealer))

	auth.GET("/analytics/:dealerId", analyticsHandlers.GetAnalytics, middleware.RequireRole(models.RoleDealer))
	auth.GET("/analytics/:dealerId/history", analyticsHandlers.GetAnalyticsHistory, middleware.RequireRole(models.RoleDealer))

	auth.GET("/favorites", favoritesHandlers.ListFavorites)
	auth.POST("/favorites/:carId", favoritesHandlers.AddFavorite)
	auth.DELETE("/favorites/:carId", favoritesHandlers.RemoveFavorite)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(e.Start(":" + port))
}
