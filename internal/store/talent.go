package store

import "github.com/yasseriouss/yasser-portfolio-new/internal/models"

func (s *Store) ListTalents() ([]models.Talent, error) {
	list := []models.Talent{}
	err := s.listInto(&list, "display_order ASC")
	return list, err
}

func (s *Store) GetTalentByID(id uint) (*models.Talent, error) {
	var t models.Talent
	ok, err := s.firstByID(&t, id)
	if err != nil || !ok {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTalent(t *models.Talent) error {
	return s.create(t)
}

func (s *Store) UpdateTalent(id uint, fields map[string]any) error {
	return s.updateByID(&models.Talent{}, id, fields)
}

func (s *Store) DeleteTalent(id uint) error {
	return s.deleteByID(&models.Talent{}, id)
}
