package models

import "time"

// Review is the one visitor-writable entity. A review is created unapproved
// and stays invisible to the public feed until an admin approves it; the
// admin may also unapprove, reply, or delete.
type Review struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReviewerName  string `gorm:"type:varchar(255);not null" json:"reviewerName"`
	ReviewerEmail string `gorm:"type:varchar(320)" json:"reviewerEmail"`
	Rating        int    `gorm:"not null" json:"rating"` // 1-5 stars
	Comment       string `gorm:"type:text;not null" json:"comment"`

	IsApproved bool `gorm:"default:false" json:"isApproved"`
	IsFeatured bool `gorm:"default:false" json:"isFeatured"`

	AdminReply string     `gorm:"type:text" json:"adminReply"`
	RepliedAt  *time.Time `json:"repliedAt"`

	DisplayOrder int       `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
