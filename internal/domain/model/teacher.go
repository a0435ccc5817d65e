package model

type Teacher struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:varchar(120);not null" json:"name"`
	Subject      string  `gorm:"type:varchar(120)" json:"subject"`
	Bio          string  `gorm:"type:text" json:"bio"`
	Email        string  `gorm:"type:varchar(255)" json:"email"`
	Phone        string  `gorm:"type:varchar(50)" json:"phone"`
	PhotoPath    *string `gorm:"type:varchar(255)" json:"-"`
	IsActive     bool    `gorm:"not null;default:true;index" json:"is_active"`
	DisplayOrder int     `gorm:"not null;default:0" json:"display_order"`
}
