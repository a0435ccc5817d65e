package model

import "time"

type ProductImage struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64     `gorm:"not null;index:idx_product_image_order,priority:1" json:"product_id"`
	FilePath   string    `gorm:"type:varchar(255);not null" json:"-"`
	Order      int       `gorm:"column:display_order;not null;default:0;index:idx_product_image_order,priority:2" json:"order"`
	UploadedAt time.Time `gorm:"not null;autoCreateTime" json:"uploaded_at"`
}
