package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"affiliateedge/internal/domain"
)

const defaultNewsletterSite = "swankyboyz"

// Same local@domain.tld shape the signup forms enforce client-side.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type newsletterService struct {
	subscribers domain.SubscriberRepository
	recorder    domain.AnalyticsRecorder
	emails      domain.EmailService
	tokens      domain.UnsubscribeTokenCodec
	runner      domain.TaskRunner
	baseURL     string
}

// NewNewsletterService creates a NewsletterService. baseURL is the public
// base URL used to build unsubscribe links in welcome emails.
func NewNewsletterService(
	subscribers domain.SubscriberRepository,
	recorder domain.AnalyticsRecorder,
	emails domain.EmailService,
	tokens domain.UnsubscribeTokenCodec,
	runner domain.TaskRunner,
	baseURL string,
) domain.NewsletterService {
	return &newsletterService{
		subscribers: subscribers,
		recorder:    recorder,
		emails:      emails,
		tokens:      tokens,
		runner:      runner,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email, site, name string) (*domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if site == "" {
		site = defaultNewsletterSite
	}

	sub := &domain.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		Site:      site,
		Name:      name,
		Source:    domain.SourceNewsletterSignup,
		Status:    domain.SubscriberActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.subscribers.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}

	s.recorder.Record(&domain.AnalyticsEvent{
		Site:      site,
		Event:     domain.EventNewsletterSignup,
		MetaEmail: email,
		MetaName:  name,
	})

	s.runner.Go("welcome_email", func(ctx context.Context) error {
		token, err := s.tokens.Issue(email, site)
		if err != nil {
			return fmt.Errorf("issue unsubscribe token: %w", err)
		}
		return s.emails.SendWelcome(ctx, &domain.WelcomeEmailData{
			Email:          email,
			Name:           name,
			Site:           site,
			UnsubscribeURL: s.baseURL + "/api/newsletter/unsubscribe?token=" + url.QueryEscape(token),
		})
	})

	return sub, nil
}

// Unsubscribe is idempotent: an already-removed subscriber is not an error.
func (s *newsletterService) Unsubscribe(ctx context.Context, token string) error {
	email, site, err := s.tokens.Verify(token)
	if err != nil {
		return domain.ErrInvalidToken
	}

	if err := s.subscribers.Unsubscribe(ctx, email, site); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("unsubscribe: %w", err)
	}

	s.recorder.Record(&domain.AnalyticsEvent{
		Site:      site,
		Event:     domain.EventNewsletterUnsubscribe,
		MetaEmail: email,
	})
	return nil
}
