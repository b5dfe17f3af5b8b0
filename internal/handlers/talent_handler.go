package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type TalentCreateReq struct {
	TitleEn       string `json:"titleEn"`
	TitleAr       string `json:"titleAr"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionAr string `json:"descriptionAr"`
	Icon          string `json:"icon"`
	DisplayOrder  int    `json:"displayOrder"`
}

func (h *ContentHandler) ListTalents(c *fiber.Ctx) error {
	list, err := h.Store.ListTalents()
	if err != nil {
		return writeError(c, err, "Failed to load talents")
	}
	return okData(c, list)
}

func (h *ContentHandler) GetTalent(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	tl, err := h.Store.GetTalentByID(id)
	if err != nil {
		return writeError(c, err, "Failed to load talent")
	}
	if tl == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Record not found",
		})
	}
	return okData(c, tl)
}

func (h *ContentHandler) CreateTalent(c *fiber.Ctx) error {
	var req TalentCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.TitleEn) == "" {
		errs.Add("titleEn", "Title is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	t := models.Talent{
		TitleEn:       strings.TrimSpace(req.TitleEn),
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Icon:          req.Icon,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := h.Store.CreateTalent(&t); err != nil {
		return writeError(c, err, "Failed to create talent")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": t.ID},
	})
}

type TalentUpdateReq struct {
	TitleEn       *string `json:"titleEn"`
	TitleAr       *string `json:"titleAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
	Icon          *string `json:"icon"`
	DisplayOrder  *int    `json:"displayOrder"`
}

func (h *ContentHandler) UpdateTalent(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req TalentUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if req.TitleEn != nil && strings.TrimSpace(*req.TitleEn) == "" {
		errs.Add("titleEn", "Title cannot be empty")
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
	setStr("title_en", req.TitleEn)
	setStr("title_ar", req.TitleAr)
	setStr("description_en", req.DescriptionEn)
	setStr("description_ar", req.DescriptionAr)
	setStr("icon", req.Icon)
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	if err := h.Store.UpdateTalent(id, fields); err != nil {
		return writeError(c, err, "Failed to update talent")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteTalent(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteTalent(id); err != nil {
		return writeError(c, err, "Failed to delete talent")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
