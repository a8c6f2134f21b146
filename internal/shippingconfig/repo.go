package shippingconfig

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
)

// Repository handles shipping zone and rate persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to shipping catalog operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// ListZones returns a vendor's zones in catalog order. Catalog order is
// position first, then creation time, so the resolver's first-match
// semantics stay stable across restarts.
func (r *Repository) ListZones(ctx context.Context, vendorID uuid.UUID) ([]models.ShippingZone, error) {
	var zones []models.ShippingZone
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("position ASC, created_at ASC").
		Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// ListZonesWithRates returns a vendor's zones with their rates preloaded,
// both in catalog order.
func (r *Repository) ListZonesWithRates(ctx context.Context, vendorID uuid.UUID) ([]models.ShippingZone, error) {
	var zones []models.ShippingZone
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("position ASC, created_at ASC").
		Preload("Rates", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// FindZone loads one zone scoped to its vendor.
func (r *Repository) FindZone(ctx context.Context, vendorID, zoneID uuid.UUID) (*models.ShippingZone, error) {
	var zone models.ShippingZone
	if err := r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", zoneID, vendorID).
		First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

// CreateZone persists a new zone row.
func (r *Repository) CreateZone(ctx context.Context, zone *models.ShippingZone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

// UpdateZone saves the provided zone.
func (r *Repository) UpdateZone(ctx context.Context, zone *models.ShippingZone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

// DeleteZone removes a zone; its rates go with it via the FK cascade.
func (r *Repository) DeleteZone(ctx context.Context, vendorID, zoneID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", zoneID, vendorID).
		Delete(&models.ShippingZone{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountZones reports how many zones a vendor has configured.
func (r *Repository) CountZones(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ShippingZone{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error
	return count, err
}

// ListRates returns a zone's rates in catalog order.
func (r *Repository) ListRates(ctx context.Context, zoneID uuid.UUID) ([]models.ShippingRate, error) {
	var rates []models.ShippingRate
	if err := r.db.WithContext(ctx).
		Where("zone_id = ?", zoneID).
		Order("position ASC, created_at ASC").
		Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// CreateRate persists a new rate row.
func (r *Repository) CreateRate(ctx context.Context, rate *models.ShippingRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

// DeleteRate removes a rate scoped to its zone.
func (r *Repository) DeleteRate(ctx context.Context, zoneID, rateID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND zone_id = ?", rateID, zoneID).
		Delete(&models.ShippingRate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountRates reports how many rates a zone carries.
func (r *Repository) CountRates(ctx context.Context, zoneID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ShippingRate{}).
		Where("zone_id = ?", zoneID).
		Count(&count).Error
	return count, err
}
