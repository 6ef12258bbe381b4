package services

import (
	"context"
	"fmt"

	"affiliateedge/internal/affiliate"
	"affiliateedge/internal/domain"
	"affiliateedge/internal/metrics"
)

const utmMediumAffiliate = "affiliate"

type redirectService struct {
	recorder        domain.AnalyticsRecorder
	creds           affiliate.Credentials
	utmSourcePrefix string
}

// NewRedirectService creates a RedirectService with the given affiliate
// credentials and UTM source prefix (utm_source becomes "<prefix>-<site>").
func NewRedirectService(recorder domain.AnalyticsRecorder, creds affiliate.Credentials, utmSourcePrefix string) domain.RedirectService {
	return &redirectService{
		recorder:        recorder,
		creds:           creds,
		utmSourcePrefix: utmSourcePrefix,
	}
}

func (s *redirectService) BuildRedirect(ctx context.Context, req *domain.RedirectRequest) (*domain.RedirectResult, error) {
	site := req.Site
	if site == "" {
		site = "unknown"
	}

	network := affiliate.DetectNetwork(req.Destination)
	tagged, err := affiliate.InjectTag(req.Destination, network, s.creds)
	if err != nil {
		return nil, fmt.Errorf("inject affiliate tag: %w", err)
	}

	utmSource := s.utmSourcePrefix + "-" + site
	campaign := req.ProductID
	if campaign == "" {
		campaign = "general"
	}
	location, err := affiliate.ApplyUTM(tagged, utmSource, utmMediumAffiliate, campaign)
	if err != nil {
		return nil, fmt.Errorf("apply utm parameters: %w", err)
	}

	s.recorder.Record(&domain.AnalyticsEvent{
		Site:             site,
		Event:            domain.EventAffiliateClick,
		AffiliateNetwork: string(network),
		ProductID:        req.ProductID,
		ArticleSlug:      req.ArticleSlug,
		DestinationURL:   req.Destination,
		UTMSource:        utmSource,
		UTMMedium:        utmMediumAffiliate,
		UTMCampaign:      campaign,
	})
	metrics.ObserveRedirect(site, string(network))

	return &domain.RedirectResult{Location: location, Network: string(network)}, nil
}
