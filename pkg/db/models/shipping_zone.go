package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShippingZone groups destination countries sharing one rate table for a
// vendor. A zone with IsRestOfWorld set catches destinations no other zone
// of the vendor claims; a zone with no countries matches any destination.
type ShippingZone struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID      uuid.UUID      `gorm:"column:vendor_id;type:uuid;not null;index:shipping_zones_vendor_id_idx"`
	Name          string         `gorm:"column:name;not null"`
	Countries     pq.StringArray `gorm:"column:countries;type:text[]"`
	IsRestOfWorld bool           `gorm:"column:is_rest_of_world;not null;default:false"`
	Position      int            `gorm:"column:position;not null;default:0"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`

	Rates []ShippingRate `gorm:"foreignKey:ZoneID"`
}

// MatchesCountry reports whether the zone explicitly covers the country.
// The comparison is case-insensitive; an empty country list means the zone
// was configured without scoping and covers everything.
func (z ShippingZone) MatchesCountry(normalizedCountry string) bool {
	if len(z.Countries) == 0 {
		return !z.IsRestOfWorld
	}
	for _, c := range z.Countries {
		if normalizeCountry(c) == normalizedCountry {
			return true
		}
	}
	return false
}

// ListsCountry reports whether the country appears in the zone's explicit
// country list, regardless of the rest-of-world flag.
func (z ShippingZone) ListsCountry(normalizedCountry string) bool {
	for _, c := range z.Countries {
		if normalizeCountry(c) == normalizedCountry {
			return true
		}
	}
	return false
}

func normalizeCountry(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
