package domain

import "context"

// RedirectRequest carries the query parameters of a /r redirect.
// Destination is the already-decoded target URL.
type RedirectRequest struct {
	Site        string
	ProductID   string
	ArticleSlug string
	Destination string
}

// RedirectResult is the outcome of building an affiliate redirect.
type RedirectResult struct {
	Location string
	Network  string
}

// RedirectService builds the final affiliate-tagged redirect URL and
// schedules the click event.
type RedirectService interface {
	// BuildRedirect classifies the destination, injects the affiliate tag
	// and UTM parameters, and records an affiliate_click event in the
	// background. A destination that is not a valid absolute URL fails the
	// whole operation.
	BuildRedirect(ctx context.Context, req *RedirectRequest) (*RedirectResult, error)
}
