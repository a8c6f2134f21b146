package vendors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
	"github.com/cyberraf/giftyy-backend/pkg/pagination"
)

// Repository handles vendor persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to vendor operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a vendor by its UUID. Soft-deleted vendors stay hidden.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FindNames returns the display names for the requested vendors. Missing
// or soft-deleted vendors are simply absent from the result.
func (r *Repository) FindNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	var rows []models.Vendor
	if err := r.db.WithContext(ctx).
		Select("id", "display_name").
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.DisplayName
	}
	return names, nil
}

// List returns active vendors using keyset pagination on (created_at, id).
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Vendor, error) {
	query := r.db.WithContext(ctx).
		Where("deleted_at IS NULL AND is_active = ?", true).
		Order("created_at ASC, id ASC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where(
			"(created_at > ?) OR (created_at = ? AND id > ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var vendorRows []models.Vendor
	if err := query.Find(&vendorRows).Error; err != nil {
		return nil, err
	}
	return vendorRows, nil
}
