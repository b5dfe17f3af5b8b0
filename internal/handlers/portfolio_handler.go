package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/cache"
	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
	"github.com/yasseriouss/yasser-portfolio-new/internal/store"
)

// PortfolioHandler serves the public read surface plus the single public
// write, review submission. Reads go through the redis cache when one is
// configured.
type PortfolioHandler struct {
	Store *store.Store
	Cache *cache.Cache
}

func NewPortfolioHandler(st *store.Store, ch *cache.Cache) *PortfolioHandler {
	return &PortfolioHandler{Store: st, Cache: ch}
}

func (h *PortfolioHandler) GetPersonalInfo(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyPersonalInfo, func() (*models.PersonalInfo, error) {
		return h.Store.GetPersonalInfo()
	})
	if err != nil {
		return writeError(c, err, "Failed to load personal info")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetExperiences(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyExperiences, func() ([]models.Experience, error) {
		return h.Store.ListExperiences()
	})
	if err != nil {
		return writeError(c, err, "Failed to load experiences")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetProjects(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyProjects, func() ([]models.Project, error) {
		return h.Store.ListProjects()
	})
	if err != nil {
		return writeError(c, err, "Failed to load projects")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetFeaturedProjects(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyFeaturedProj, func() ([]models.Project, error) {
		return h.Store.ListFeaturedProjects()
	})
	if err != nil {
		return writeError(c, err, "Failed to load featured projects")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetSkills(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeySkills, func() ([]models.Skill, error) {
		return h.Store.ListSkills()
	})
	if err != nil {
		return writeError(c, err, "Failed to load skills")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetEducation(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyEducation, func() ([]models.Education, error) {
		return h.Store.ListEducation()
	})
	if err != nil {
		return writeError(c, err, "Failed to load education")
	}
	return okData(c, data)
}

// GetTestimonials serves featured testimonials only; the full list is an
// admin view.
func (h *PortfolioHandler) GetTestimonials(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyTestimonials, func() ([]models.Testimonial, error) {
		return h.Store.ListFeaturedTestimonials()
	})
	if err != nil {
		return writeError(c, err, "Failed to load testimonials")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetTalents(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyTalents, func() ([]models.Talent, error) {
		return h.Store.ListTalents()
	})
	if err != nil {
		return writeError(c, err, "Failed to load talents")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetApprovedReviews(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyApprovedReviews, func() ([]models.Review, error) {
		return h.Store.ListApprovedReviews()
	})
	if err != nil {
		return writeError(c, err, "Failed to load reviews")
	}
	return okData(c, data)
}

func (h *PortfolioHandler) GetReviewStats(c *fiber.Ctx) error {
	data, err := cache.Through(c.Context(), h.Cache, cache.KeyReviewStats, func() (store.ReviewStats, error) {
		return h.Store.GetReviewStats()
	})
	if err != nil {
		return writeError(c, err, "Failed to load review stats")
	}
	return okData(c, data)
}

type SubmitReviewReq struct {
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// SubmitReview is the one write any visitor can perform. The review is
// always stored unapproved; only an explicit admin action publishes it.
func (h *PortfolioHandler) SubmitReview(c *fiber.Ctx) error {
	var req SubmitReviewReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	name := strings.TrimSpace(req.ReviewerName)
	email := strings.TrimSpace(req.ReviewerEmail)
	comment := strings.TrimSpace(req.Comment)

	errs := FieldErrors{}
	if n := utf8.RuneCountInString(name); n < 2 || n > 255 {
		errs.Add("reviewerName", "Name must be 2-255 characters")
	}
	if email != "" {
		// Bare address only, no display-name form.
		if a, err := mail.ParseAddress(email); err != nil || a.Address != email {
			errs.Add("reviewerEmail", "Invalid email format")
		}
	}
	if req.Rating < 1 || req.Rating > 5 {
		errs.Add("rating", "Rating must be between 1 and 5")
	}
	if n := utf8.RuneCountInString(comment); n < 10 || n > 1000 {
		errs.Add("comment", "Comment must be 10-1000 characters")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	review := models.Review{
		ReviewerName:  name,
		ReviewerEmail: email,
		Rating:        req.Rating,
		Comment:       comment,
		IsApproved:    false,
	}
	if err := h.Store.CreateReview(&review); err != nil {
		return writeError(c, err, "Failed to submit review")
	}

	// A new pending review changes the admin-visible totals.
	h.Cache.InvalidatePortfolio(c.Context())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": review.ID},
	})
}
