package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"affiliateedge/internal/domain"
)

func TestAnalyticsService_Record_FillsDefaults(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	svc := NewAnalyticsService(repo, &syncRunner{})

	svc.Record(&domain.AnalyticsEvent{})

	require.Len(t, repo.inserted, 1)
	e := repo.inserted[0]
	require.NotEmpty(t, e.ID)
	require.Equal(t, "unknown", e.Site)
	require.Equal(t, "unknown", e.Event)
	require.False(t, e.CreatedAt.IsZero())
}

func TestAnalyticsService_Record_FailureIsSwallowed(t *testing.T) {
	repo := &mockAnalyticsRepo{insertErr: errors.New("db down")}
	runner := &syncRunner{}
	svc := NewAnalyticsService(repo, runner)

	// Record must not panic or surface the failure to the caller.
	svc.Record(&domain.AnalyticsEvent{Site: "swankyboyz", Event: domain.EventAffiliateClick})

	require.Len(t, runner.errs, 1)
	require.Error(t, runner.errs[0])
}

func TestAnalyticsService_Summary(t *testing.T) {
	repo := &mockAnalyticsRepo{rows: []*domain.AnalyticsSummaryRow{
		{Count: 7, AffiliateNetwork: "amazon", Event: domain.EventAffiliateClick},
	}}
	svc := NewAnalyticsService(repo, &syncRunner{})

	rows, err := svc.Summary(context.Background(), "swankyboyz", 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "swankyboyz", repo.lastSite)
	require.Equal(t, 100, repo.lastLimit, "limit defaults to 100")

	_, err = svc.Summary(context.Background(), "swankyboyz", 25)
	require.NoError(t, err)
	require.Equal(t, 25, repo.lastLimit)
}

func TestAnalyticsService_Summary_Error(t *testing.T) {
	repo := &mockAnalyticsRepo{queryErr: errors.New("db down")}
	svc := NewAnalyticsService(repo, &syncRunner{})

	_, err := svc.Summary(context.Background(), "swankyboyz", 10)
	require.Error(t, err)
}
