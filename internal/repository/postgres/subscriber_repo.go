package postgres

import (
	"context"
	"database/sql"

	"affiliateedge/internal/domain"
)

type subscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{DB: db}
}

// Insert stores a subscriber. The (email, site) uniqueness constraint plus
// ON CONFLICT DO NOTHING gives the insert-or-ignore semantics: a duplicate
// signup is a silent no-op.
func (r *subscriberRepository) Insert(ctx context.Context, s *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, site, name, source, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email, site) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Email, s.Site, s.Name, s.Source, s.Status, s.CreatedAt)
	return err
}

func (r *subscriberRepository) Unsubscribe(ctx context.Context, email, site string) error {
	query := `
		UPDATE subscribers
		SET status = $1
		WHERE email = $2 AND site = $3
	`
	res, err := r.DB.ExecContext(ctx, query, domain.SubscriberUnsubscribed, email, site)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
