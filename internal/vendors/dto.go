package vendors

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberraf/giftyy-backend/pkg/db/models"
)

// VendorDTO is the API-facing shape of a vendor.
type VendorDTO struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Description *string   `json:"description,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Country     *string   `json:"country,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorPage is one page of vendors plus the cursor for the next one.
type VendorPage struct {
	Vendors    []VendorDTO `json:"vendors"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

// FromModel maps a vendor row.
func FromModel(vendor *models.Vendor) *VendorDTO {
	if vendor == nil {
		return nil
	}
	return &VendorDTO{
		ID:          vendor.ID,
		DisplayName: vendor.DisplayName,
		Description: vendor.Description,
		Email:       vendor.Email,
		Country:     vendor.Country,
		LogoURL:     vendor.LogoURL,
		IsActive:    vendor.IsActive,
		CreatedAt:   vendor.CreatedAt,
		UpdatedAt:   vendor.UpdatedAt,
	}
}
