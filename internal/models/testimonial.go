package models

import "time"

// Testimonial is an admin-curated quote, never visitor-submitted.
type Testimonial struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	NameEn    string `gorm:"type:varchar(255);not null" json:"nameEn"`
	NameAr    string `gorm:"type:varchar(255)" json:"nameAr"`
	TitleEn   string `gorm:"type:varchar(255);not null" json:"titleEn"`
	TitleAr   string `gorm:"type:varchar(255)" json:"titleAr"`
	CompanyEn string `gorm:"type:varchar(255)" json:"companyEn"`
	CompanyAr string `gorm:"type:varchar(255)" json:"companyAr"`
	ContentEn string `gorm:"type:text;not null" json:"contentEn"`
	ContentAr string `gorm:"type:text" json:"contentAr"`

	AvatarURL   string `gorm:"type:varchar(500)" json:"avatarUrl"`
	LinkedinURL string `gorm:"type:varchar(500)" json:"linkedinUrl"`

	IsFeatured   bool      `gorm:"default:false" json:"isFeatured"`
	DisplayOrder int       `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
