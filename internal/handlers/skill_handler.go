package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type SkillCreateReq struct {
	NameEn       string `json:"nameEn"`
	NameAr       string `json:"nameAr"`
	CategoryEn   string `json:"categoryEn"`
	CategoryAr   string `json:"categoryAr"`
	Proficiency  *int   `json:"proficiency"`
	DisplayOrder int    `json:"displayOrder"`
}

func (h *ContentHandler) ListSkills(c *fiber.Ctx) error {
	list, err := h.Store.ListSkills()
	if err != nil {
		return writeError(c, err, "Failed to load skills")
	}
	return okData(c, list)
}

func (h *ContentHandler) GetSkill(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	s, err := h.Store.GetSkillByID(id)
	if err != nil {
		return writeError(c, err, "Failed to load skill")
	}
	if s == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Record not found",
		})
	}
	return okData(c, s)
}

func (h *ContentHandler) CreateSkill(c *fiber.Ctx) error {
	var req SkillCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.NameEn) == "" {
		errs.Add("nameEn", "Name is required")
	}
	proficiency := 80
	if req.Proficiency != nil {
		proficiency = *req.Proficiency
		if proficiency < 0 || proficiency > 100 {
			errs.Add("proficiency", "Proficiency must be between 0 and 100")
		}
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	sk := models.Skill{
		NameEn:       strings.TrimSpace(req.NameEn),
		NameAr:       req.NameAr,
		CategoryEn:   req.CategoryEn,
		CategoryAr:   req.CategoryAr,
		Proficiency:  proficiency,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.Store.CreateSkill(&sk); err != nil {
		return writeError(c, err, "Failed to create skill")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": sk.ID},
	})
}

type SkillUpdateReq struct {
	NameEn       *string `json:"nameEn"`
	NameAr       *string `json:"nameAr"`
	CategoryEn   *string `json:"categoryEn"`
	CategoryAr   *string `json:"categoryAr"`
	Proficiency  *int    `json:"proficiency"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (h *ContentHandler) UpdateSkill(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req SkillUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if req.NameEn != nil && strings.TrimSpace(*req.NameEn) == "" {
		errs.Add("nameEn", "Name cannot be empty")
	}
	if req.Proficiency != nil && (*req.Proficiency < 0 || *req.Proficiency > 100) {
		errs.Add("proficiency", "Proficiency must be between 0 and 100")
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
	setStr("category_en", req.CategoryEn)
	setStr("category_ar", req.CategoryAr)
	if req.Proficiency != nil {
		fields["proficiency"] = *req.Proficiency
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	if err := h.Store.UpdateSkill(id, fields); err != nil {
		return writeError(c, err, "Failed to update skill")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteSkill(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteSkill(id); err != nil {
		return writeError(c, err, "Failed to delete skill")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
