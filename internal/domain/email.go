package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData holds data for the newsletter welcome email.
type WelcomeEmailData struct {
	Email          string
	Name           string
	Site           string
	UnsubscribeURL string
}

// ContactNotificationEmailData holds data for the contact inquiry
// notification sent to the site operator.
type ContactNotificationEmailData struct {
	Site    string
	Name    string
	Email   string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
	SendContactNotification(ctx context.Context, data *ContactNotificationEmailData) error
}
