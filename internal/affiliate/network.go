// Package affiliate classifies destination URLs into affiliate networks and
// rewrites them with affiliate and UTM parameters. Everything here is pure
// string work with no side effects.
package affiliate

import "strings"

// Network identifies the affiliate program a destination URL belongs to.
type Network string

const (
	NetworkAmazon       Network = "amazon"
	NetworkBooking      Network = "booking"
	NetworkAgoda        Network = "agoda"
	NetworkGetYourGuide Network = "getyourguide"
	NetworkSafetyWing   Network = "safetywing"
	NetworkAiralo       Network = "airalo"
	NetworkPayment      Network = "payment"
	NetworkUnknown      Network = "unknown"
)

// networkRule maps domain fragments to a network. First match wins.
type networkRule struct {
	fragments []string
	network   Network
}

// amazon.co covers amazon.com as well as country TLDs like amazon.co.uk.
var networkRules = []networkRule{
	{[]string{"amazon.com", "amazon.co"}, NetworkAmazon},
	{[]string{"booking.com"}, NetworkBooking},
	{[]string{"agoda.com"}, NetworkAgoda},
	{[]string{"getyourguide.com"}, NetworkGetYourGuide},
	{[]string{"safetywing.com"}, NetworkSafetyWing},
	{[]string{"airalo.com"}, NetworkAiralo},
	{[]string{"stripe.com", "paypal.com"}, NetworkPayment},
}

// DetectNetwork returns the affiliate network a destination URL belongs to,
// by case-sensitive substring match against a fixed domain table. URLs that
// match nothing yield NetworkUnknown.
func DetectNetwork(rawURL string) Network {
	for _, rule := range networkRules {
		for _, frag := range rule.fragments {
			if strings.Contains(rawURL, frag) {
				return rule.network
			}
		}
	}
	return NetworkUnknown
}
