package models

import (
	"time"

	"github.com/google/uuid"
)

// ShippingRate prices one shipping option inside a zone. Price is stored as
// the vendor entered it (display text); parsing happens at resolution time
// so a malformed row degrades instead of failing the quote. Min/Max bound
// the order subtotal the rate applies to, inclusive; nil means unbounded.
type ShippingRate struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ZoneID            uuid.UUID `gorm:"column:zone_id;type:uuid;not null;index:shipping_rates_zone_id_idx"`
	Name              string    `gorm:"column:name;not null"`
	Price             string    `gorm:"column:price;not null;default:''"`
	IsFree            bool      `gorm:"column:is_free;not null;default:false"`
	MinSubtotalCents  *int      `gorm:"column:min_subtotal_cents"`
	MaxSubtotalCents  *int      `gorm:"column:max_subtotal_cents"`
	Position          int       `gorm:"column:position;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// HasConditions reports whether the rate is gated by a subtotal range.
func (r ShippingRate) HasConditions() bool {
	return r.MinSubtotalCents != nil || r.MaxSubtotalCents != nil
}

// ConditionsContain reports whether the subtotal falls inside the rate's
// inclusive range.
func (r ShippingRate) ConditionsContain(subtotalCents int) bool {
	if r.MinSubtotalCents != nil && subtotalCents < *r.MinSubtotalCents {
		return false
	}
	if r.MaxSubtotalCents != nil && subtotalCents > *r.MaxSubtotalCents {
		return false
	}
	return true
}
