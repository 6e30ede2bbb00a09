package background

import (
	"context"
	"log"
	"sync"
	"time"

	"carmart/internal/analytics"
	"carmart/internal/caching"
	"carmart/internal/models"
	"carmart/internal/repositories"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobScheduler runs the periodic maintenance jobs: dealer analytics
// snapshots and warming of the featured listing cache.
type JobScheduler struct {
	scheduler    gocron.Scheduler
	analyticsSvc *analytics.AnalyticsService
	cacheSvc     caching.CacheService
	dealerRepo   repositories.DealerRepository
	vehicleRepo  repositories.VehicleRepository
	jobs         map[string]gocron.Job
	mu           sync.RWMutex
}

func NewJobScheduler(analyticsSvc *analytics.AnalyticsService, cacheSvc caching.CacheService,
	dealerRepo repositories.DealerRepository, vehicleRepo repositories.VehicleRepository) (*JobScheduler, error) {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:    scheduler,
		analyticsSvc: analyticsSvc,
		cacheSvc:     cacheSvc,
		dealerRepo:   dealerRepo,
		vehicleRepo:  vehicleRepo,
		jobs:         make(map[string]gocron.Job),
	}

	js.registerJobs()
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	js.mu.Lock()
	defer js.mu.Unlock()

	analyticsJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.refreshDealerAnalytics, context.Background()),
		gocron.WithName("dealer-analytics-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create analytics job: %v", err)
	} else {
		js.jobs["analytics"] = analyticsJob
	}

	featuredJob, err := js.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.warmFeaturedCache, context.Background()),
		gocron.WithName("featured-cache-warm"),
	)
	if err != nil {
		log.Printf("Failed to create featured cache job: %v", err)
	} else {
		js.jobs["featured"] = featuredJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

// refreshDealerAnalytics snapshots the daily numbers for every dealer. At
// most five snapshots run concurrently.
func (js *JobScheduler) refreshDealerAnalytics(ctx context.Context) error {
	log.Printf("Starting dealer analytics refresh")

	dealers, err := js.dealerRepo.List(ctx, 1000, 0)
	if err != nil {
		log.Printf("Failed to list dealers for analytics refresh: %v", err)
		return err
	}

	semaphore := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for _, dealer := range dealers {
		wg.Add(1)
		go func(dealerID uuid.UUID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if _, err := js.analyticsSvc.Snapshot(ctx, dealerID, models.PeriodDaily); err != nil {
				log.Printf("Failed to refresh analytics for dealer %s: %v", dealerID.String(), err)
			}
		}(dealer.ID)
	}

	wg.Wait()
	log.Printf("Dealer analytics refresh complete for %d dealers", len(dealers))
	return nil
}

func (js *JobScheduler) warmFeaturedCache(ctx context.Context) error {
	vehicles, err := js.vehicleRepo.Featured(ctx)
	if err != nil {
		log.Printf("Failed to load featured vehicles: %v", err)
		return err
	}
	if err := js.cacheSvc.SetFeatured(ctx, vehicles, 15*time.Minute); err != nil {
		log.Printf("Failed to warm featured cache: %v", err)
		return err
	}
	return nil
}
