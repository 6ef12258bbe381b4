package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"affiliateedge/internal/domain"
	"affiliateedge/internal/metrics"
)

const defaultSummaryLimit = 100

type analyticsService struct {
	repo   domain.AnalyticsRepository
	runner domain.TaskRunner
}

// NewAnalyticsService creates an AnalyticsService that appends events on the
// background runner and reads aggregates synchronously.
func NewAnalyticsService(repo domain.AnalyticsRepository, runner domain.TaskRunner) domain.AnalyticsService {
	return &analyticsService{repo: repo, runner: runner}
}

// Record schedules the insert and returns immediately. Persistence failures
// are logged by the runner and never reach the caller: analytics must not
// fail the primary operation.
func (s *analyticsService) Record(e *domain.AnalyticsEvent) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Site == "" {
		e.Site = "unknown"
	}
	if e.Event == "" {
		e.Event = "unknown"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	s.runner.Go("analytics_insert", func(ctx context.Context) error {
		if err := s.repo.Insert(ctx, e); err != nil {
			metrics.ObserveEvent(e.Event, "error")
			return fmt.Errorf("insert analytics event: %w", err)
		}
		metrics.ObserveEvent(e.Event, "ok")
		return nil
	})
}

func (s *analyticsService) Summary(ctx context.Context, site string, limit int) ([]*domain.AnalyticsSummaryRow, error) {
	if limit <= 0 {
		limit = defaultSummaryLimit
	}
	rows, err := s.repo.SummarizeBySite(ctx, site, limit)
	if err != nil {
		return nil, fmt.Errorf("summarize analytics: %w", err)
	}
	return rows, nil
}
