package services

import (
	"context"

	"affiliateedge/internal/domain"
)

const defaultContactSite = "vaughnsterling"

type contactService struct {
	recorder domain.AnalyticsRecorder
	emails   domain.EmailService
	runner   domain.TaskRunner
}

// NewContactService creates a ContactService that records inquiries as
// analytics events and dispatches operator notifications in the background.
func NewContactService(recorder domain.AnalyticsRecorder, emails domain.EmailService, runner domain.TaskRunner) domain.ContactService {
	return &contactService{recorder: recorder, emails: emails, runner: runner}
}

func (s *contactService) Submit(ctx context.Context, inquiry *domain.ContactInquiry) error {
	if inquiry.Name == "" || inquiry.Email == "" || inquiry.Message == "" {
		return domain.ErrMissingFields
	}
	site := inquiry.Site
	if site == "" {
		site = defaultContactSite
	}
	snippet := truncateRunes(inquiry.Message, domain.ContactMessageLimit)

	s.recorder.Record(&domain.AnalyticsEvent{
		Site:        site,
		Event:       domain.EventContactInquiry,
		MetaName:    inquiry.Name,
		MetaEmail:   inquiry.Email,
		MetaMessage: snippet,
	})

	// Notification delivery is best effort; a mailer failure must not fail
	// the submission.
	name, email, message := inquiry.Name, inquiry.Email, inquiry.Message
	s.runner.Go("contact_notification", func(ctx context.Context) error {
		return s.emails.SendContactNotification(ctx, &domain.ContactNotificationEmailData{
			Site:    site,
			Name:    name,
			Email:   email,
			Message: message,
		})
	})

	return nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
