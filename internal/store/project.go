package store

import "github.com/yasseriouss/yasser-portfolio-new/internal/models"

func (s *Store) ListProjects() ([]models.Project, error) {
	list := []models.Project{}
	err := s.listInto(&list, "display_order ASC", "created_at DESC")
	return list, err
}

func (s *Store) ListFeaturedProjects() ([]models.Project, error) {
	if s.db == nil {
		return []models.Project{}, nil
	}
	list := []models.Project{}
	if err := s.db.Where("is_featured = ?", true).
		Order("display_order ASC").
		Find(&list).Error; err != nil {
		s.log.Warn().Err(err).Msg("store: featured projects query failed, returning empty")
	}
	return list, nil
}

func (s *Store) GetProjectByID(id uint) (*models.Project, error) {
	var p models.Project
	ok, err := s.firstByID(&p, id)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProject(p *models.Project) error {
	return s.create(p)
}

func (s *Store) UpdateProject(id uint, fields map[string]any) error {
	return s.updateByID(&models.Project{}, id, fields)
}

func (s *Store) DeleteProject(id uint) error {
	return s.deleteByID(&models.Project{}, id)
}
