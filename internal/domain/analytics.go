package domain

import (
	"context"
	"time"
)

// Analytics event kinds recorded by the gateway.
const (
	EventAffiliateClick        = "affiliate_click"
	EventNewsletterSignup      = "newsletter_signup"
	EventNewsletterUnsubscribe = "newsletter_unsubscribe"
	EventContactInquiry        = "contact_inquiry"
)

// AnalyticsEvent is one append-only row in the event log. Optional fields
// are empty strings and stored as NULL.
type AnalyticsEvent struct {
	ID               string    `json:"id"`
	Site             string    `json:"site"`
	Event            string    `json:"event"`
	AffiliateNetwork string    `json:"affiliate_network,omitempty"`
	ProductID        string    `json:"product_id,omitempty"`
	ArticleSlug      string    `json:"article_slug,omitempty"`
	DestinationURL   string    `json:"destination_url,omitempty"`
	UTMSource        string    `json:"utm_source,omitempty"`
	UTMMedium        string    `json:"utm_medium,omitempty"`
	UTMCampaign      string    `json:"utm_campaign,omitempty"`
	MetaName         string    `json:"meta_name,omitempty"`
	MetaEmail        string    `json:"meta_email,omitempty"`
	MetaMessage      string    `json:"meta_message,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AnalyticsSummaryRow is one aggregate row for the dashboard, grouped by
// (affiliate network, event kind).
type AnalyticsSummaryRow struct {
	Count            int64  `json:"count"`
	AffiliateNetwork string `json:"affiliate_network"`
	Event            string `json:"event"`
}

// AnalyticsRepository persists and aggregates analytics events.
type AnalyticsRepository interface {
	Insert(ctx context.Context, e *AnalyticsEvent) error
	SummarizeBySite(ctx context.Context, site string, limit int) ([]*AnalyticsSummaryRow, error)
}

// AnalyticsRecorder appends events to the log. Record is fire-and-forget:
// it returns immediately, the write happens on a background task, and any
// persistence failure is logged and discarded. Analytics must never block
// or fail the primary user-facing operation.
type AnalyticsRecorder interface {
	Record(e *AnalyticsEvent)
}

// AnalyticsService is the read side used by the dashboard.
type AnalyticsService interface {
	AnalyticsRecorder
	Summary(ctx context.Context, site string, limit int) ([]*AnalyticsSummaryRow, error)
}
