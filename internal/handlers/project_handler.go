package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type ProjectCreateReq struct {
	TitleEn       string   `json:"titleEn"`
	TitleAr       string   `json:"titleAr"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionAr string   `json:"descriptionAr"`
	ImageURL      string   `json:"imageUrl"`
	Category      string   `json:"category"`
	Technologies  []string `json:"technologies"`
	ProjectURL    string   `json:"projectUrl"`
	IsFeatured    bool     `json:"isFeatured"`
	DisplayOrder  int      `json:"displayOrder"`
}

func (h *ContentHandler) ListProjects(c *fiber.Ctx) error {
	list, err := h.Store.ListProjects()
	if err != nil {
		return writeError(c, err, "Failed to load projects")
	}
	return okData(c, list)
}

func (h *ContentHandler) GetProject(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	p, err := h.Store.GetProjectByID(id)
	if err != nil {
		return writeError(c, err, "Failed to load project")
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Record not found",
		})
	}
	return okData(c, p)
}

func (h *ContentHandler) CreateProject(c *fiber.Ctx) error {
	var req ProjectCreateReq
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

	p := models.Project{
		TitleEn:       strings.TrimSpace(req.TitleEn),
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Technologies:  jsonList(req.Technologies),
		ProjectURL:    req.ProjectURL,
		IsFeatured:    req.IsFeatured,
		DisplayOrder:  req.DisplayOrder,
	}
	if err := h.Store.CreateProject(&p); err != nil {
		return writeError(c, err, "Failed to create project")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": p.ID},
	})
}

type ProjectUpdateReq struct {
	TitleEn       *string   `json:"titleEn"`
	TitleAr       *string   `json:"titleAr"`
	DescriptionEn *string   `json:"descriptionEn"`
	DescriptionAr *string   `json:"descriptionAr"`
	ImageURL      *string   `json:"imageUrl"`
	Category      *string   `json:"category"`
	Technologies  *[]string `json:"technologies"`
	ProjectURL    *string   `json:"projectUrl"`
	IsFeatured    *bool     `json:"isFeatured"`
	DisplayOrder  *int      `json:"displayOrder"`
}

func (h *ContentHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req ProjectUpdateReq
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
	setStr("image_url", req.ImageURL)
	setStr("category", req.Category)
	setStr("project_url", req.ProjectURL)
	if req.Technologies != nil {
		fields["technologies"] = jsonList(*req.Technologies)
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	if err := h.Store.UpdateProject(id, fields); err != nil {
		return writeError(c, err, "Failed to update project")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteProject(id); err != nil {
		return writeError(c, err, "Failed to delete project")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
