package domain

import (
	"context"
	"time"
)

// SubscriberStatus enumerates the states a subscriber can be in.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
)

// SourceNewsletterSignup is the fixed acquisition source recorded for
// subscribers created through the signup endpoint.
const SourceNewsletterSignup = "newsletter_signup"

// Subscriber is a newsletter recipient for one tenant site. The email is
// stored normalized (lowercase, trimmed); (email, site) is unique.
type Subscriber struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Site      string           `json:"site"`
	Name      string           `json:"name,omitempty"`
	Source    string           `json:"source"`
	Status    SubscriberStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// SubscriberRepository persists subscribers.
type SubscriberRepository interface {
	// Insert stores the subscriber. A duplicate (email, site) pair is a
	// no-op: no error, no second row.
	Insert(ctx context.Context, s *Subscriber) error
	// Unsubscribe marks the (email, site) subscriber as unsubscribed.
	// Returns ErrNotFound when no such subscriber exists.
	Unsubscribe(ctx context.Context, email, site string) error
}

// NewsletterService handles newsletter signups and unsubscribes.
type NewsletterService interface {
	// Subscribe validates and normalizes the email, persists the subscriber
	// with insert-or-ignore semantics, and schedules the analytics write and
	// welcome email in the background. Returns ErrInvalidEmail for emails
	// that do not match local@domain.tld.
	Subscribe(ctx context.Context, email, site, name string) (*Subscriber, error)
	// Unsubscribe verifies the signed token from a welcome email and marks
	// the subscriber unsubscribed. Returns ErrInvalidToken for bad tokens.
	Unsubscribe(ctx context.Context, token string) error
}

// UnsubscribeTokenCodec issues and verifies the signed tokens embedded in
// unsubscribe links.
type UnsubscribeTokenCodec interface {
	Issue(email, site string) (string, error)
	Verify(token string) (email, site string, err error)
}
