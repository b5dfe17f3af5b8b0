package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

// UserUpsert carries the fields supplied by a login. Nil pointers mean
// "leave untouched on update".
type UserUpsert struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *models.Role
	LastSignedIn *time.Time
}

// UpsertUser inserts or refreshes the user row keyed by OpenID. When no
// explicit role is supplied and the OpenID matches the configured owner
// identity, the role is forced to admin. This is the only privilege
// escalation path in the system. LastSignedIn defaults to now, so the
// column is never null after a successful login.
func (s *Store) UpsertUser(u UserUpsert) error {
	if u.OpenID == "" {
		return errors.New("store: openId is required for upsert")
	}
	if s.db == nil {
		return ErrUnavailable
	}

	values := models.User{OpenID: u.OpenID}
	assign := map[string]any{}

	if u.Name != nil {
		values.Name = *u.Name
		assign["name"] = *u.Name
	}
	if u.Email != nil {
		values.Email = *u.Email
		assign["email"] = *u.Email
	}
	if u.LoginMethod != nil {
		values.LoginMethod = *u.LoginMethod
		assign["login_method"] = *u.LoginMethod
	}

	if u.Role != nil {
		values.Role = *u.Role
		assign["role"] = string(*u.Role)
	} else if s.ownerOpenID != "" && u.OpenID == s.ownerOpenID {
		values.Role = models.RoleAdmin
		assign["role"] = string(models.RoleAdmin)
	} else {
		values.Role = models.RoleUser
	}

	signedIn := time.Now()
	if u.LastSignedIn != nil {
		signedIn = *u.LastSignedIn
	}
	values.LastSignedIn = signedIn
	assign["last_signed_in"] = signedIn
	assign["updated_at"] = time.Now()

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(assign),
	}).Create(&values).Error
}

func (s *Store) GetUserByOpenID(openID string) (*models.User, error) {
	if s.db == nil {
		return nil, nil
	}
	var u models.User
	err := s.db.Where("open_id = ?", openID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("store: user lookup failed, treating as absent")
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	if s.db == nil {
		return nil, nil
	}
	var u models.User
	ok, err := s.firstByID(&u, id)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}
