package store

import (
	"math"
	"time"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

// ReviewStats aggregates the whole review table in process. Review volume
// is expected to stay small; this is the known ceiling.
type ReviewStats struct {
	Total    int     `json:"total"`
	Approved int     `json:"approved"`
	Average  float64 `json:"average"`
}

// ListApprovedReviews is the public feed: approved rows only, newest first.
func (s *Store) ListApprovedReviews() ([]models.Review, error) {
	if s.db == nil {
		return []models.Review{}, nil
	}
	list := []models.Review{}
	if err := s.db.Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		s.log.Warn().Err(err).Msg("store: approved reviews query failed, returning empty")
	}
	return list, nil
}

// ListAllReviews returns approved and pending rows alike; admin only.
func (s *Store) ListAllReviews() ([]models.Review, error) {
	list := []models.Review{}
	err := s.listInto(&list, "created_at DESC")
	return list, err
}

func (s *Store) GetReviewByID(id uint) (*models.Review, error) {
	var r models.Review
	ok, err := s.firstByID(&r, id)
	if err != nil || !ok {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateReview(r *models.Review) error {
	return s.create(r)
}

// SetReviewApproval flips the approval flag in either direction; both
// transitions are admin actions and reversible.
func (s *Store) SetReviewApproval(id uint, approved bool) error {
	return s.updateByID(&models.Review{}, id, map[string]any{"is_approved": approved})
}

// ReplyToReview attaches or replaces the admin reply and stamps the reply
// time. Valid in both pending and approved states.
func (s *Store) ReplyToReview(id uint, reply string) error {
	return s.updateByID(&models.Review{}, id, map[string]any{
		"admin_reply": reply,
		"replied_at":  time.Now(),
	})
}

func (s *Store) DeleteReview(id uint) error {
	return s.deleteByID(&models.Review{}, id)
}

// GetReviewStats averages ratings across approved reviews only, rounded to
// one decimal place; zero when nothing is approved yet.
func (s *Store) GetReviewStats() (ReviewStats, error) {
	stats := ReviewStats{}
	if s.db == nil {
		return stats, nil
	}

	all := []models.Review{}
	if err := s.db.Find(&all).Error; err != nil {
		s.log.Warn().Err(err).Msg("store: review stats query failed, returning zeros")
		return stats, nil
	}

	stats.Total = len(all)
	sum := 0
	for _, r := range all {
		if r.IsApproved {
			stats.Approved++
			sum += r.Rating
		}
	}
	if stats.Approved > 0 {
		avg := float64(sum) / float64(stats.Approved)
		stats.Average = math.Round(avg*10) / 10
	}
	return stats, nil
}
