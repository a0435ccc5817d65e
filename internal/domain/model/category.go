package model

import "github.com/google/uuid"

type Category struct {
	ID   int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Name string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	Slug string    `gorm:"type:varchar(140);uniqueIndex;not null" json:"slug"`
}
