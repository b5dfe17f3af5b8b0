package store

import "github.com/yasseriouss/yasser-portfolio-new/internal/models"

func (s *Store) ListEducation() ([]models.Education, error) {
	list := []models.Education{}
	err := s.listInto(&list, "display_order ASC", "start_date DESC")
	return list, err
}

func (s *Store) GetEducationByID(id uint) (*models.Education, error) {
	var e models.Education
	ok, err := s.firstByID(&e, id)
	if err != nil || !ok {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateEducation(e *models.Education) error {
	return s.create(e)
}

func (s *Store) UpdateEducation(id uint, fields map[string]any) error {
	return s.updateByID(&models.Education{}, id, fields)
}

func (s *Store) DeleteEducation(id uint) error {
	return s.deleteByID(&models.Education{}, id)
}
