package store

import "github.com/yasseriouss/yasser-portfolio-new/internal/models"

func (s *Store) ListTestimonials() ([]models.Testimonial, error) {
	list := []models.Testimonial{}
	err := s.listInto(&list, "display_order ASC")
	return list, err
}

// ListFeaturedTestimonials backs the public testimonials feed; the full
// list is admin-only.
func (s *Store) ListFeaturedTestimonials() ([]models.Testimonial, error) {
	if s.db == nil {
		return []models.Testimonial{}, nil
	}
	list := []models.Testimonial{}
	if err := s.db.Where("is_featured = ?", true).
		Order("display_order ASC").
		Find(&list).Error; err != nil {
		s.log.Warn().Err(err).Msg("store: featured testimonials query failed, returning empty")
	}
	return list, nil
}

func (s *Store) GetTestimonialByID(id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	ok, err := s.firstByID(&t, id)
	if err != nil || !ok {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTestimonial(t *models.Testimonial) error {
	return s.create(t)
}

func (s *Store) UpdateTestimonial(id uint, fields map[string]any) error {
	return s.updateByID(&models.Testimonial{}, id, fields)
}

func (s *Store) DeleteTestimonial(id uint) error {
	return s.deleteByID(&models.Testimonial{}, id)
}
