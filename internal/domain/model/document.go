package model

import "time"

type Audience string

const (
	AudienceAll      Audience = "ALL"
	AudienceTeachers Audience = "TEACHERS"
	AudienceParents  Audience = "PARENTS"
	AudienceStudents Audience = "STUDENTS"
)

func ValidAudience(a Audience) bool {
	switch a {
	case AudienceAll, AudienceTeachers, AudienceParents, AudienceStudents:
		return true
	}
	return false
}

type Document struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Category     string    `gorm:"type:varchar(120)" json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	Audience     Audience  `gorm:"type:varchar(20);not null;default:'ALL'" json:"audience"`
	FilePath     string    `gorm:"type:varchar(255);not null" json:"-"`
	OriginalName string    `gorm:"type:varchar(255)" json:"original_name"`
	IsPublic     bool      `gorm:"not null;default:true;index" json:"is_public"`
	UploadedAt   time.Time `gorm:"not null;autoCreateTime;index" json:"uploaded_at"`
}
