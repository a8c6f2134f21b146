package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var centsFactor = decimal.NewFromInt(100)

// ParsePriceCents converts a display price string ("$12.99", "1,299.00")
// into integer cents. Unparsable input resolves to 0 so a single bad row
// never breaks quote math.
func ParsePriceCents(raw string) int {
	cleaned := cleanPrice(raw)
	if cleaned == "" {
		return 0
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return int(dec.Mul(centsFactor).Round(0).IntPart())
}

// ParseRateCents converts a catalog rate price into cents. Unlike cart
// prices, rate prices must be strictly positive to be usable; anything
// else reports ok=false so callers can treat the rate as misconfigured.
func ParseRateCents(raw string) (int, bool) {
	cleaned := cleanPrice(raw)
	if cleaned == "" {
		return 0, false
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	cents := int(dec.Mul(centsFactor).Round(0).IntPart())
	if cents <= 0 {
		return 0, false
	}
	return cents, true
}

// FormatCents renders integer cents as a plain decimal string ("6.99").
func FormatCents(cents int) string {
	return decimal.NewFromInt(int64(cents)).Div(centsFactor).StringFixed(2)
}

func cleanPrice(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strings.TrimSpace(cleaned)
}
