package shipping

import (
	"context"

	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
)

// ZoneSource supplies a vendor's shipping zones in catalog order.
type ZoneSource interface {
	ListZones(ctx context.Context, vendorID uuid.UUID) ([]models.ShippingZone, error)
}

// RateSource supplies a zone's rates in catalog order.
type RateSource interface {
	ListRates(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingRate, error)
}

// VendorNameSource resolves vendor IDs to display names for the breakdown.
type VendorNameSource interface {
	GetNames(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
