package shipping

import (
	"github.com/cyberraf/giftyy-backend/pkg/db/models"
)

// selectZone picks the zone that prices a vendor partition for the given
// destination country (already normalized). Zones must arrive in catalog
// order (position, then creation time); the last-resort branch leans on
// that ordering deliberately so the pick is stable and auditable.
func selectZone(zones []models.ShippingZone, country string) (models.ShippingZone, Reason) {
	for _, zone := range zones {
		if zone.IsRestOfWorld {
			continue
		}
		if !zone.MatchesCountry(country) {
			continue
		}
		if len(zone.Countries) == 0 {
			return zone, ReasonMatchAll
		}
		return zone, ReasonExplicitCountry
	}

	for _, zone := range zones {
		if !zone.IsRestOfWorld {
			continue
		}
		if countryClaimedElsewhere(zones, zone, country) {
			continue
		}
		return zone, ReasonRestOfWorld
	}

	return zones[0], ReasonCatalogOrder
}

// countryClaimedElsewhere reports whether any other zone of the vendor
// explicitly lists the country, which disqualifies a rest-of-world zone.
func countryClaimedElsewhere(zones []models.ShippingZone, candidate models.ShippingZone, country string) bool {
	for _, zone := range zones {
		if zone.ID == candidate.ID {
			continue
		}
		if zone.ListsCountry(country) {
			return true
		}
	}
	return false
}
