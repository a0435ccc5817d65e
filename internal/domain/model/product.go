package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product's public identity in the API is the UUID; the int64 pk stays
// internal so order items and images can reference it cheaply.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Name        string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CategoryID  *int64          `gorm:"index" json:"category_id"`
	Category    *Category       `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	InStock     bool            `gorm:"not null;default:true;index" json:"in_stock"`
	Sizes       []string        `gorm:"serializer:json" json:"sizes"`
	Colors      []string        `gorm:"serializer:json" json:"colors"`
	Images      []ProductImage  `gorm:"constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
