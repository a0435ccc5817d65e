package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Number        string          `gorm:"type:varchar(32);uniqueIndex" json:"number"`
	ParentName    string          `gorm:"type:varchar(200);not null" json:"parent_name"`
	ChildrenNames string          `gorm:"type:varchar(500);not null" json:"children_names"`
	Phone         string          `gorm:"type:varchar(15);not null;index" json:"phone"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Comment       *string         `gorm:"type:text" json:"comment"`
	AdminNote     string          `gorm:"type:text" json:"admin_note"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
