package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User rows are created and refreshed on every OAuth login, keyed by the
// provider-issued OpenID.
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OpenID      string `gorm:"column:open_id;type:varchar(64);uniqueIndex;not null" json:"openId"`
	Name        string `gorm:"type:text" json:"name"`
	Email       string `gorm:"type:varchar(320)" json:"email"`
	LoginMethod string `gorm:"type:varchar(64)" json:"loginMethod"`
	Role        Role   `gorm:"type:varchar(20);default:'user';not null" json:"role"`

	LastSignedIn time.Time `gorm:"not null" json:"lastSignedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
