package models

import "time"

type Skill struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	NameEn     string `gorm:"type:varchar(255);not null" json:"nameEn"`
	NameAr     string `gorm:"type:varchar(255)" json:"nameAr"`
	CategoryEn string `gorm:"type:varchar(100)" json:"categoryEn"`
	CategoryAr string `gorm:"type:varchar(100)" json:"categoryAr"`

	Proficiency  int `gorm:"default:80" json:"proficiency"` // 0-100
	DisplayOrder int `gorm:"default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
