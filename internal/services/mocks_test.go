package services

import (
	"context"
	"sync"

	"affiliateedge/internal/domain"
)

// syncRunner runs tasks inline so tests observe their effects immediately.
type syncRunner struct {
	mu   sync.Mutex
	errs []error
}

func (r *syncRunner) Go(name string, fn func(ctx context.Context) error) {
	err := fn(context.Background())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// captureRecorder collects recorded events.
type captureRecorder struct {
	mu     sync.Mutex
	events []*domain.AnalyticsEvent
}

func (c *captureRecorder) Record(e *domain.AnalyticsEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

type mockSubscriberRepo struct {
	inserted      []*domain.Subscriber
	insertErr     error
	unsubscribed  [][2]string
	unsubscribeErr error
}

func (m *mockSubscriberRepo) Insert(ctx context.Context, s *domain.Subscriber) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, s)
	return nil
}

func (m *mockSubscriberRepo) Unsubscribe(ctx context.Context, email, site string) error {
	if m.unsubscribeErr != nil {
		return m.unsubscribeErr
	}
	m.unsubscribed = append(m.unsubscribed, [2]string{email, site})
	return nil
}

type mockAnalyticsRepo struct {
	inserted  []*domain.AnalyticsEvent
	insertErr error
	rows      []*domain.AnalyticsSummaryRow
	queryErr  error
	lastSite  string
	lastLimit int
}

func (m *mockAnalyticsRepo) Insert(ctx context.Context, e *domain.AnalyticsEvent) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, e)
	return nil
}

func (m *mockAnalyticsRepo) SummarizeBySite(ctx context.Context, site string, limit int) ([]*domain.AnalyticsSummaryRow, error) {
	m.lastSite, m.lastLimit = site, limit
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.rows, nil
}

type mockEmailService struct {
	welcomes      []*domain.WelcomeEmailData
	notifications []*domain.ContactNotificationEmailData
	sendErr       error
}

func (m *mockEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.welcomes = append(m.welcomes, data)
	return nil
}

func (m *mockEmailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.notifications = append(m.notifications, data)
	return nil
}

type mockTokenCodec struct {
	issued    string
	issueErr  error
	email     string
	site      string
	verifyErr error
}

func (m *mockTokenCodec) Issue(email, site string) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	if m.issued != "" {
		return m.issued, nil
	}
	return "token-" + email + "-" + site, nil
}

func (m *mockTokenCodec) Verify(token string) (string, string, error) {
	if m.verifyErr != nil {
		return "", "", m.verifyErr
	}
	return m.email, m.site, nil
}
