package shipping

import (
	"sort"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
	"github.com/cyberraf/giftyy-backend/pkg/money"
)

// selectRate picks the rate that prices a partition within its zone. A
// conditioned rate whose subtotal range contains the partition subtotal
// wins over any unconditioned rate; among matching conditioned rates the
// cheapest wins, and the cheapest unconditioned rate is the fallback. When
// only non-matching conditioned rates exist the first rate in catalog
// order is used, surfaced to the trace as a last-resort pick.
func selectRate(rates []models.ShippingRate, subtotalCents int) (models.ShippingRate, Reason) {
	conditioned := make([]models.ShippingRate, 0, len(rates))
	unconditioned := make([]models.ShippingRate, 0, len(rates))
	for _, rate := range rates {
		if rate.HasConditions() {
			conditioned = append(conditioned, rate)
		} else {
			unconditioned = append(unconditioned, rate)
		}
	}

	sortByPrice(conditioned)
	for _, rate := range conditioned {
		if rate.ConditionsContain(subtotalCents) {
			return rate, ReasonConditionMatch
		}
	}

	if len(unconditioned) > 0 {
		sortByPrice(unconditioned)
		return unconditioned[0], ReasonUnconditioned
	}

	return rates[0], ReasonCatalogOrder
}

// sortByPrice orders rates cheapest first; free rates count as zero. The
// sort is stable so catalog order breaks price ties.
func sortByPrice(rates []models.ShippingRate) {
	sort.SliceStable(rates, func(i, j int) bool {
		return effectivePriceCents(rates[i]) < effectivePriceCents(rates[j])
	})
}

func effectivePriceCents(rate models.ShippingRate) int {
	if rate.IsFree {
		return 0
	}
	return money.ParsePriceCents(rate.Price)
}
