package store

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

var (
	// ErrUnavailable means no database is configured. Writes surface it;
	// reads degrade to empty results instead.
	ErrUnavailable = errors.New("store: database not available")

	// ErrNotFound is returned by update/delete when the id matches no row.
	ErrNotFound = errors.New("store: record not found")
)

// Store owns all persistence access. It is constructed once at process
// start and injected into every handler; gdb may be nil when no database
// is configured, in which case reads return empty and writes fail.
type Store struct {
	db          *gorm.DB
	ownerOpenID string
	log         zerolog.Logger
}

func New(gdb *gorm.DB, ownerOpenID string, log zerolog.Logger) *Store {
	return &Store{db: gdb, ownerOpenID: ownerOpenID, log: log}
}

func (s *Store) Available() bool { return s.db != nil }

func (s *Store) AutoMigrate() error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.AutoMigrate(
		&models.User{},
		&models.PersonalInfo{},
		&models.Experience{},
		&models.Project{},
		&models.Skill{},
		&models.Education{},
		&models.Review{},
		&models.Testimonial{},
		&models.Talent{},
	)
}

// listInto runs a Find with the given ordering, degrading to an empty
// result when the store is missing or unreachable.
func (s *Store) listInto(dest any, orders ...string) error {
	if s.db == nil {
		return nil
	}
	q := s.db
	for _, o := range orders {
		q = q.Order(o)
	}
	if err := q.Find(dest).Error; err != nil {
		s.log.Warn().Err(err).Msg("store: list query failed, returning empty")
	}
	return nil
}

func (s *Store) firstByID(dest any, id uint) (bool, error) {
	if s.db == nil {
		return false, nil
	}
	err := s.db.First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Uint("id", id).Msg("store: lookup failed, treating as absent")
		return false, nil
	}
	return true, nil
}

func (s *Store) create(value any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	return s.db.Create(value).Error
}

// updateByID applies a partial column set to one row. An empty field set
// still verifies the row exists.
func (s *Store) updateByID(model any, id uint, fields map[string]any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if len(fields) == 0 {
		err := s.db.Select("id").First(model, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	res := s.db.Model(model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) deleteByID(model any, id uint) error {
	if s.db == nil {
		return ErrUnavailable
	}
	res := s.db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
