package models

import "time"

type Talent struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TitleEn       string `gorm:"type:varchar(255);not null" json:"titleEn"`
	TitleAr       string `gorm:"type:varchar(255)" json:"titleAr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionAr string `gorm:"type:text" json:"descriptionAr"`

	Icon string `gorm:"type:varchar(100)" json:"icon"` // icon name resolved client-side

	DisplayOrder int       `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
