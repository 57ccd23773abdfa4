package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/profitlens/storefront-analytics-api/infrastructure/repository"
	"github.com/profitlens/storefront-analytics-api/internal/config"
	"github.com/profitlens/storefront-analytics-api/internal/usecases/analyzing"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
	"github.com/profitlens/storefront-analytics-api/pkg/utils"
)

// AnalyticsSyncConfig holds the scheduler knobs for the nightly recompute.
type AnalyticsSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
	RetentionDays     int
}

// AnalyticsSyncService recomputes the daily analytics of every active store on
// a cron schedule, covering the lookback window so late-arriving orders and
// cost edits are folded in.
type AnalyticsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalyticsSyncConfig
	storeRepo           repository.StoreRepository
	analyticsRepo       repository.DailyAnalyticsRepository
	analyzer            analyzing.DayComputer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAnalyticsSyncService(
	storeRepo repository.StoreRepository,
	analyticsRepo repository.DailyAnalyticsRepository,
	analyzer analyzing.DayComputer,
	appConfig *config.Config,
) *AnalyticsSyncService {
	syncConfig := AnalyticsSyncConfig{
		CronSchedule:      appConfig.AnalyticsSync.CronSchedule,
		LookbackDays:      appConfig.AnalyticsSync.LookbackDays,
		MaxConcurrentJobs: appConfig.AnalyticsSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AnalyticsSync.Enabled,
		RetentionDays:     appConfig.AnalyticsSync.RetentionDays,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"retention_days":      syncConfig.RetentionDays,
	}).Info("analytics sync scheduler configured")

	return &AnalyticsSyncService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        syncConfig,
		storeRepo:     storeRepo,
		analyticsRepo: analyticsRepo,
		analyzer:      analyzer,
		syncRunning:   false,
	}
}

// Start schedules the sync and stops it when the context is cancelled.
func (s *AnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("analytics sync disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("starting analytics sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllStores(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule analytics sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping analytics sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllStores recomputes the lookback window for every active store. Only
// one sync runs at a time; overlapping triggers are skipped.
func (s *AnalyticsSyncService) syncAllStores(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("analytics sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	stores, err := s.storeRepo.List(ctx, true)
	if err != nil {
		log.L.WithError(err).Error("failed to list stores for analytics sync")
		return
	}

	if len(stores) == 0 {
		log.L.Info("no active stores to sync")
		return
	}

	windowStart, windowEnd := s.syncWindow()

	log.L.WithFields(log.Fields{
		"stores":     len(stores),
		"start_date": windowStart.Format(time.DateOnly),
		"end_date":   windowEnd.Format(time.DateOnly),
	}).Info("starting analytics sync run")

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, store := range stores {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(storeID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncStore(ctx, storeID, windowStart, windowEnd)
		}(store.ID)
	}

	wg.Wait()

	s.cleanupOldRows(ctx)

	s.lastSyncCompletedAt = time.Now()

	log.L.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"stores":   len(stores),
		"days":     s.config.LookbackDays,
	}).Info("analytics sync run finished")
}

// syncWindow returns the half-open recompute window ending today, so
// yesterday is the last full day recomputed.
func (s *AnalyticsSyncService) syncWindow() (time.Time, time.Time) {
	today := utils.TruncateToDay(time.Now().UTC())
	return today.AddDate(0, 0, -s.config.LookbackDays), today
}

func (s *AnalyticsSyncService) syncStore(ctx context.Context, storeID string, windowStart, windowEnd time.Time) {
	result, err := s.analyzer.ComputeRange(ctx, storeID, windowStart, windowEnd)
	if err != nil {
		log.L.WithFields(log.Fields{
			"store_id": storeID,
		}).Errorf("analytics sync failed for store: %v", err)
		return
	}

	if len(result.Failed) > 0 {
		log.L.WithFields(log.Fields{
			"store_id": storeID,
			"computed": len(result.Computed),
			"failed":   len(result.Failed),
		}).Warn("analytics sync finished with failed dates")
		return
	}

	log.L.WithFields(log.Fields{
		"store_id": storeID,
		"computed": len(result.Computed),
	}).Info("store analytics synced")
}

func (s *AnalyticsSyncService) cleanupOldRows(ctx context.Context) {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.analyticsRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		log.L.WithError(err).Error("failed to delete expired analytics rows")
		return
	}

	if deleted > 0 {
		log.L.WithFields(log.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("expired analytics rows removed")
	}
}

// TriggerManualSync kicks off a sync run outside the cron schedule.
func (s *AnalyticsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("analytics sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("starting manual analytics sync")
	go s.syncAllStores(context.Background())
}

// GetStatus reports the scheduler configuration and last run times.
func (s *AnalyticsSyncService) GetStatus() map[string]any {
	retention := "rows kept forever"
	if s.config.RetentionDays > 0 {
		retention = fmt.Sprintf("rows kept for %d days", s.config.RetentionDays)
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_policy":       retention,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
