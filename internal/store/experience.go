package store

import "github.com/yasseriouss/yasser-portfolio-new/internal/models"

// Experiences are ordered by the manual sort key first, newest start date
// as tie-break.
func (s *Store) ListExperiences() ([]models.Experience, error) {
	list := []models.Experience{}
	err := s.listInto(&list, "display_order ASC", "start_date DESC")
	return list, err
}

func (s *Store) GetExperienceByID(id uint) (*models.Experience, error) {
	var e models.Experience
	ok, err := s.firstByID(&e, id)
	if err != nil || !ok {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateExperience(e *models.Experience) error {
	return s.create(e)
}

func (s *Store) UpdateExperience(id uint, fields map[string]any) error {
	return s.updateByID(&models.Experience{}, id, fields)
}

func (s *Store) DeleteExperience(id uint) error {
	return s.deleteByID(&models.Experience{}, id)
}
