package models

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a seller on the Giftyy marketplace.
type Vendor struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName string     `gorm:"column:display_name;not null"`
	Description *string    `gorm:"column:description"`
	Email       *string    `gorm:"column:email"`
	Country     *string    `gorm:"column:country"`
	LogoURL     *string    `gorm:"column:logo_url"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   *time.Time `gorm:"column:deleted_at;index"`
}
