package shippingconfig

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
)

// ZoneDTO is the API-facing shape of a shipping zone.
type ZoneDTO struct {
	ID            uuid.UUID `json:"id"`
	VendorID      uuid.UUID `json:"vendor_id"`
	Name          string    `json:"name"`
	Countries     []string  `json:"countries"`
	IsRestOfWorld bool      `json:"is_rest_of_world"`
	Position      int       `json:"position"`
	Rates         []RateDTO `json:"rates,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RateDTO is the API-facing shape of a shipping rate.
type RateDTO struct {
	ID               uuid.UUID `json:"id"`
	ZoneID           uuid.UUID `json:"zone_id"`
	Name             string    `json:"name"`
	Price            string    `json:"price"`
	IsFree           bool      `json:"is_free"`
	MinSubtotalCents *int      `json:"min_subtotal_cents,omitempty"`
	MaxSubtotalCents *int      `json:"max_subtotal_cents,omitempty"`
	Position         int       `json:"position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FromZoneModel maps a zone row, including any preloaded rates.
func FromZoneModel(zone *models.ShippingZone) *ZoneDTO {
	if zone == nil {
		return nil
	}
	dto := &ZoneDTO{
		ID:            zone.ID,
		VendorID:      zone.VendorID,
		Name:          zone.Name,
		Countries:     append([]string{}, zone.Countries...),
		IsRestOfWorld: zone.IsRestOfWorld,
		Position:      zone.Position,
		CreatedAt:     zone.CreatedAt,
		UpdatedAt:     zone.UpdatedAt,
	}
	for i := range zone.Rates {
		dto.Rates = append(dto.Rates, *FromRateModel(&zone.Rates[i]))
	}
	return dto
}

// FromRateModel maps a rate row.
func FromRateModel(rate *models.ShippingRate) *RateDTO {
	if rate == nil {
		return nil
	}
	return &RateDTO{
		ID:               rate.ID,
		ZoneID:           rate.ZoneID,
		Name:             rate.Name,
		Price:            rate.Price,
		IsFree:           rate.IsFree,
		MinSubtotalCents: rate.MinSubtotalCents,
		MaxSubtotalCents: rate.MaxSubtotalCents,
		Position:         rate.Position,
		CreatedAt:        rate.CreatedAt,
		UpdatedAt:        rate.UpdatedAt,
	}
}
