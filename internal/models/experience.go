package models

import (
	"time"

	"gorm.io/datatypes"
)

type Experience struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	CompanyEn     string `gorm:"type:varchar(255);not null" json:"companyEn"`
	CompanyAr     string `gorm:"type:varchar(255)" json:"companyAr"`
	PositionEn    string `gorm:"type:varchar(255);not null" json:"positionEn"`
	PositionAr    string `gorm:"type:varchar(255)" json:"positionAr"`
	LocationEn    string `gorm:"type:varchar(255)" json:"locationEn"`
	LocationAr    string `gorm:"type:varchar(255)" json:"locationAr"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionAr string `gorm:"type:text" json:"descriptionAr"`

	// JSON arrays of strings, written only from typed request fields.
	ResponsibilitiesEn datatypes.JSON `json:"responsibilitiesEn"`
	ResponsibilitiesAr datatypes.JSON `json:"responsibilitiesAr"`

	StartDate    *time.Time `gorm:"type:date" json:"startDate"`
	EndDate      *time.Time `gorm:"type:date" json:"endDate"`
	IsCurrent    bool       `gorm:"default:false" json:"isCurrent"`
	DisplayOrder int        `gorm:"default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
