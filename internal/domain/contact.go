package domain

import "context"

// ContactMessageLimit is the maximum number of characters of a contact
// message kept in the analytics log.
const ContactMessageLimit = 200

// ContactInquiry is a contact form submission. It has no storage of its
// own: it is recorded only as a contact_inquiry analytics event, with the
// message truncated to ContactMessageLimit characters.
type ContactInquiry struct {
	Site    string
	Name    string
	Email   string
	Message string
}

// ContactService handles contact form submissions.
type ContactService interface {
	// Submit records the inquiry as an analytics event and dispatches a
	// notification email, both in the background. Returns ErrMissingFields
	// when name, email, or message is empty.
	Submit(ctx context.Context, inquiry *ContactInquiry) error
}
