package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type TestimonialCreateReq struct {
	NameEn       string `json:"nameEn"`
	NameAr       string `json:"nameAr"`
	TitleEn      string `json:"titleEn"`
	TitleAr      string `json:"titleAr"`
	CompanyEn    string `json:"companyEn"`
	CompanyAr    string `json:"companyAr"`
	ContentEn    string `json:"contentEn"`
	ContentAr    string `json:"contentAr"`
	AvatarURL    string `json:"avatarUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	IsFeatured   bool   `json:"isFeatured"`
	DisplayOrder int    `json:"displayOrder"`
}

func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	list, err := h.Store.ListTestimonials()
	if err != nil {
		return writeError(c, err, "Failed to load testimonials")
	}
	return okData(c, list)
}

func (h *ContentHandler) GetTestimonial(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	tm, err := h.Store.GetTestimonialByID(id)
	if err != nil {
		return writeError(c, err, "Failed to load testimonial")
	}
	if tm == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Record not found",
		})
	}
	return okData(c, tm)
}

func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req TestimonialCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.NameEn) == "" {
		errs.Add("nameEn", "Name is required")
	}
	if strings.TrimSpace(req.TitleEn) == "" {
		errs.Add("titleEn", "Title is required")
	}
	if strings.TrimSpace(req.ContentEn) == "" {
		errs.Add("contentEn", "Content is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	t := models.Testimonial{
		NameEn:       strings.TrimSpace(req.NameEn),
		NameAr:       req.NameAr,
		TitleEn:      strings.TrimSpace(req.TitleEn),
		TitleAr:      req.TitleAr,
		CompanyEn:    req.CompanyEn,
		CompanyAr:    req.CompanyAr,
		ContentEn:    strings.TrimSpace(req.ContentEn),
		ContentAr:    req.ContentAr,
		AvatarURL:    req.AvatarURL,
		LinkedinURL:  req.LinkedinURL,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.Store.CreateTestimonial(&t); err != nil {
		return writeError(c, err, "Failed to create testimonial")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": t.ID},
	})
}

type TestimonialUpdateReq struct {
	NameEn       *string `json:"nameEn"`
	NameAr       *string `json:"nameAr"`
	TitleEn      *string `json:"titleEn"`
	TitleAr      *string `json:"titleAr"`
	CompanyEn    *string `json:"companyEn"`
	CompanyAr    *string `json:"companyAr"`
	ContentEn    *string `json:"contentEn"`
	ContentAr    *string `json:"contentAr"`
	AvatarURL    *string `json:"avatarUrl"`
	LinkedinURL  *string `json:"linkedinUrl"`
	IsFeatured   *bool   `json:"isFeatured"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (h *ContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req TestimonialUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if req.NameEn != nil && strings.TrimSpace(*req.NameEn) == "" {
		errs.Add("nameEn", "Name cannot be empty")
	}
	if req.TitleEn != nil && strings.TrimSpace(*req.TitleEn) == "" {
		errs.Add("titleEn", "Title cannot be empty")
	}
	if req.ContentEn != nil && strings.TrimSpace(*req.ContentEn) == "" {
		errs.Add("contentEn", "Content cannot be empty")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	fields := map[string]any{}
	setStr := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setStr("name_en", req.NameEn)
	setStr("name_ar", req.NameAr)
	setStr("title_en", req.TitleEn)
	setStr("title_ar", req.TitleAr)
	setStr("company_en", req.CompanyEn)
	setStr("company_ar", req.CompanyAr)
	setStr("content_en", req.ContentEn)
	setStr("content_ar", req.ContentAr)
	setStr("avatar_url", req.AvatarURL)
	setStr("linkedin_url", req.LinkedinURL)
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	if err := h.Store.UpdateTestimonial(id, fields); err != nil {
		return writeError(c, err, "Failed to update testimonial")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteTestimonial(id); err != nil {
		return writeError(c, err, "Failed to delete testimonial")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
