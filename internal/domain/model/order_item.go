package model

import "github.com/shopspring/decimal"

// OrderItem freezes the product name/price at order time. Later product
// edits never touch these snapshots; deleting a referenced product is
// blocked by the RESTRICT constraint.
type OrderItem struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;index" json:"order_id"`
	ProductID     int64           `gorm:"not null;index" json:"product_id"`
	Product       *Product        `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	SelectedSize  *string         `gorm:"type:varchar(50)" json:"selected_size"`
	SelectedColor *string         `gorm:"type:varchar(50)" json:"selected_color"`
	PriceAtOrder  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_at_order"`
	NameAtOrder   string          `gorm:"type:varchar(200);not null" json:"name_at_order"`
}
