package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TitleEn       string `gorm:"type:varchar(255);not null" json:"titleEn"`
	TitleAr       string `gorm:"type:varchar(255)" json:"titleAr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionAr string `gorm:"type:text" json:"descriptionAr"`
	ImageURL      string `gorm:"type:varchar(500)" json:"imageUrl"`
	Category      string `gorm:"type:varchar(100)" json:"category"`

	// JSON array of technology names.
	Technologies datatypes.JSON `json:"technologies"`

	ProjectURL   string `gorm:"type:varchar(500)" json:"projectUrl"`
	IsFeatured   bool   `gorm:"default:false" json:"isFeatured"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
