package affiliate

import (
	"fmt"
	"net/url"
	"strings"
)

// Credentials holds the per-network affiliate identifiers used for tag
// injection. Empty values inject empty parameter values rather than failing.
type Credentials struct {
	AmazonTag             string
	BookingAID            string
	AgodaAID              string
	GetYourGuidePartnerID string
	AiraloReferralCode    string
}

// InjectTag returns rawURL with the affiliate parameter for the detected
// network set. SafetyWing, payment, and unknown destinations pass through
// unchanged. The error case is a destination that is not a valid absolute
// URL.
func InjectTag(rawURL string, n Network, c Credentials) (string, error) {
	if err := checkAbsoluteURL(rawURL); err != nil {
		return "", err
	}
	switch n {
	case NetworkAmazon:
		return SetQueryParam(rawURL, "tag", c.AmazonTag), nil
	case NetworkBooking:
		return SetQueryParam(rawURL, "aid", c.BookingAID), nil
	case NetworkAgoda:
		return SetQueryParam(rawURL, "aff", c.AgodaAID), nil
	case NetworkGetYourGuide:
		// GetYourGuide links often carry partner_id already; keep it.
		if strings.Contains(rawURL, "partner_id=") {
			return rawURL, nil
		}
		return SetQueryParam(rawURL, "partner_id", c.GetYourGuidePartnerID), nil
	case NetworkAiralo:
		return SetQueryParam(rawURL, "referralCode", c.AiraloReferralCode), nil
	default:
		return rawURL, nil
	}
}

// ApplyUTM overwrites the three UTM attribution parameters on rawURL,
// regardless of network.
func ApplyUTM(rawURL, source, medium, campaign string) (string, error) {
	if err := checkAbsoluteURL(rawURL); err != nil {
		return "", err
	}
	u := SetQueryParam(rawURL, "utm_source", source)
	u = SetQueryParam(u, "utm_medium", medium)
	u = SetQueryParam(u, "utm_campaign", campaign)
	return u, nil
}

// SetQueryParam sets key=value in rawURL's query string, preserving the
// order and text of unrelated parameters. An existing key is replaced in
// place (later duplicates dropped); a new key is appended at the end.
func SetQueryParam(rawURL, key, value string) string {
	base := rawURL
	fragment := ""
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base, fragment = base[:i], base[i:]
	}
	query := ""
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base, query = base[:i], base[i+1:]
	}

	pair := key + "=" + url.QueryEscape(value)
	var parts []string
	replaced := false
	for _, p := range strings.Split(query, "&") {
		if p == "" {
			continue
		}
		k := p
		if j := strings.IndexByte(p, '='); j >= 0 {
			k = p[:j]
		}
		if decoded, err := url.QueryUnescape(k); err == nil {
			k = decoded
		}
		if k == key {
			if !replaced {
				parts = append(parts, pair)
				replaced = true
			}
			continue
		}
		parts = append(parts, p)
	}
	if !replaced {
		parts = append(parts, pair)
	}
	return base + "?" + strings.Join(parts, "&") + fragment
}

func checkAbsoluteURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid destination url %q: %w", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid destination url %q", rawURL)
	}
	return nil
}
