package models

import "time"

// PersonalInfo is a singleton: the table holds at most one row, maintained
// through upsert only.
type PersonalInfo struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FullNameEn string `gorm:"type:varchar(255)" json:"fullNameEn"`
	FullNameAr string `gorm:"type:varchar(255)" json:"fullNameAr"`
	TitleEn    string `gorm:"type:varchar(255)" json:"titleEn"`
	TitleAr    string `gorm:"type:varchar(255)" json:"titleAr"`
	BioEn      string `gorm:"type:text" json:"bioEn"`
	BioAr      string `gorm:"type:text" json:"bioAr"`
	SummaryEn  string `gorm:"type:text" json:"summaryEn"`
	SummaryAr  string `gorm:"type:text" json:"summaryAr"`

	// Contact fields are language neutral.
	Email       string `gorm:"type:varchar(320)" json:"email"`
	Phone       string `gorm:"type:varchar(50)" json:"phone"`
	Whatsapp    string `gorm:"type:varchar(50)" json:"whatsapp"`
	LinkedinURL string `gorm:"type:varchar(500)" json:"linkedinUrl"`
	LocationEn  string `gorm:"type:varchar(255)" json:"locationEn"`
	LocationAr  string `gorm:"type:varchar(255)" json:"locationAr"`
	AvatarURL   string `gorm:"type:varchar(500)" json:"avatarUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
