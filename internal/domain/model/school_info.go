package model

// SchoolInfo is a singleton row (pk 1). The read path creates it on demand
// so the frontend always has something to render.
type SchoolInfo struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Address   string `gorm:"type:varchar(255)" json:"address"`
	Email     string `gorm:"type:varchar(255)" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`
	About     string `gorm:"type:text" json:"about"`
	MapIframe string `gorm:"type:text" json:"map_iframe"`
}
