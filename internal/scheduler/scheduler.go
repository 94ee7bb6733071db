package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/config"
	"github.com/mamadbah2/wms/internal/domain/models"
)

const jobTimeout = 2 * time.Minute

// ReportRunner produces and delivers the periodic stock report.
type ReportRunner interface {
	RunWeeklyReport(ctx context.Context) (models.StockReport, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	reports  ReportRunner
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a scheduler running in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, reports ReportRunner, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		reports:  reports,
		schedule: cfg.CronSchedule,
		logger:   logger,
	}, nil
}

// Start registers the jobs and starts the cron engine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runStockReport); err != nil {
		return fmt.Errorf("schedule stock report %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("stock_report", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runStockReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.reports.RunWeeklyReport(ctx); err != nil {
		s.logger.Error("stock report finished with errors", zap.Error(err))
		return
	}
	s.logger.Info("stock report delivered")
}
