package services

import (
	"context"
	"fmt"
	"log/slog"

	"affiliateedge/internal/domain"
)

type emailService struct {
	mailer       domain.Mailer
	renderer     domain.EmailTemplateRenderer
	contactInbox string
	logger       *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. contactInbox is where contact notifications are
// delivered; when empty, notifications are skipped.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, contactInbox string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, contactInbox: contactInbox, logger: logger}
}

// SendWelcome sends the newsletter welcome email using the "welcome" template.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	s.logger.Info("welcome email sent", "email", data.Email, "site", data.Site)
	return nil
}

// SendContactNotification forwards a contact inquiry to the configured inbox.
func (s *emailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("contact notification data is nil")
	}
	if s.contactInbox == "" {
		s.logger.Info("contact inbox not configured, skipping notification", "site", data.Site, "from", data.Email)
		return nil
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_notification template: %w", err)
	}
	if err := s.mailer.Send(s.contactInbox, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	s.logger.Info("contact notification sent", "site", data.Site, "from", data.Email)
	return nil
}
