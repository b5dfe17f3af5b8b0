package models

import "time"

type Education struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	InstitutionEn string `gorm:"type:varchar(255);not null" json:"institutionEn"`
	InstitutionAr string `gorm:"type:varchar(255)" json:"institutionAr"`
	DegreeEn      string `gorm:"type:varchar(255);not null" json:"degreeEn"`
	DegreeAr      string `gorm:"type:varchar(255)" json:"degreeAr"`
	FieldEn       string `gorm:"type:varchar(255)" json:"fieldEn"`
	FieldAr       string `gorm:"type:varchar(255)" json:"fieldAr"`

	StartDate    *time.Time `gorm:"type:date" json:"startDate"`
	EndDate      *time.Time `gorm:"type:date" json:"endDate"`
	IsCurrent    bool       `gorm:"default:false" json:"isCurrent"`
	DisplayOrder int        `gorm:"default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Education) TableName() string { return "education" }
