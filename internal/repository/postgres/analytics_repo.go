package postgres

import (
	"context"
	"database/sql"

	"affiliateedge/internal/domain"
)

type analyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) domain.AnalyticsRepository {
	return &analyticsRepository{DB: db}
}

// Insert appends one event row. Optional fields are stored as NULL when
// empty, matching the original event log schema.
func (r *analyticsRepository) Insert(ctx context.Context, e *domain.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics (
			id, site, event, affiliate_network, product_id, article_slug,
			destination_url, utm_source, utm_medium, utm_campaign,
			meta_name, meta_email, meta_message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Site, e.Event,
		nullIfEmpty(e.AffiliateNetwork),
		nullIfEmpty(e.ProductID),
		nullIfEmpty(e.ArticleSlug),
		nullIfEmpty(e.DestinationURL),
		nullIfEmpty(e.UTMSource),
		nullIfEmpty(e.UTMMedium),
		nullIfEmpty(e.UTMCampaign),
		nullIfEmpty(e.MetaName),
		nullIfEmpty(e.MetaEmail),
		nullIfEmpty(e.MetaMessage),
		e.CreatedAt,
	)
	return err
}

func (r *analyticsRepository) SummarizeBySite(ctx context.Context, site string, limit int) ([]*domain.AnalyticsSummaryRow, error) {
	query := `
		SELECT COUNT(*) AS count, COALESCE(affiliate_network, '') AS affiliate_network, event
		FROM analytics
		WHERE site = $1
		GROUP BY affiliate_network, event
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, site, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.AnalyticsSummaryRow
	for rows.Next() {
		row := &domain.AnalyticsSummaryRow{}
		if err := rows.Scan(&row.Count, &row.AffiliateNetwork, &row.Event); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		result = []*domain.AnalyticsSummaryRow{}
	}
	return result, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
