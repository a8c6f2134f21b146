package types

import "strings"

// Destination identifies where a cart ships. Country drives zone matching;
// state is carried for display and future regional rates.
type Destination struct {
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
}

// NormalizedCountry returns the country trimmed and lowercased for
// case-insensitive zone matching.
func (d Destination) NormalizedCountry() string {
	return strings.ToLower(strings.TrimSpace(d.Country))
}
