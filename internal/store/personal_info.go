package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

// GetPersonalInfo returns the singleton row, or nil when none exists yet.
// Absence is a valid state, not an error.
func (s *Store) GetPersonalInfo() (*models.PersonalInfo, error) {
	if s.db == nil {
		return nil, nil
	}
	var info models.PersonalInfo
	err := s.db.Limit(1).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("store: personal info lookup failed, treating as absent")
		return nil, nil
	}
	return &info, nil
}

// UpsertPersonalInfo updates the existing singleton row when present,
// otherwise inserts one. values carries the full typed record for the
// insert path; fields is the partial column set actually supplied, applied
// on update so untouched columns stay as they are. The table never grows
// past one row.
func (s *Store) UpsertPersonalInfo(values models.PersonalInfo, fields map[string]any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	var existing models.PersonalInfo
	err := s.db.Limit(1).First(&existing).Error
	switch {
	case err == nil:
		if len(fields) == 0 {
			return nil
		}
		return s.db.Model(&models.PersonalInfo{}).
			Where("id = ?", existing.ID).
			Updates(fields).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		values.ID = 0
		return s.db.Create(&values).Error
	default:
		return err
	}
}
