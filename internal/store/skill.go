package store

import "github.com/yasseriouss/yasser-portfolio-new/internal/models"

func (s *Store) ListSkills() ([]models.Skill, error) {
	list := []models.Skill{}
	err := s.listInto(&list, "display_order ASC")
	return list, err
}

func (s *Store) GetSkillByID(id uint) (*models.Skill, error) {
	var sk models.Skill
	ok, err := s.firstByID(&sk, id)
	if err != nil || !ok {
		return nil, err
	}
	return &sk, nil
}

func (s *Store) CreateSkill(sk *models.Skill) error {
	return s.create(sk)
}

func (s *Store) UpdateSkill(id uint, fields map[string]any) error {
	return s.updateByID(&models.Skill{}, id, fields)
}

func (s *Store) DeleteSkill(id uint) error {
	return s.deleteByID(&models.Skill{}, id)
}
