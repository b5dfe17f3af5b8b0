package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type ExperienceCreateReq struct {
	CompanyEn          string   `json:"companyEn"`
	CompanyAr          string   `json:"companyAr"`
	PositionEn         string   `json:"positionEn"`
	PositionAr         string   `json:"positionAr"`
	LocationEn         string   `json:"locationEn"`
	LocationAr         string   `json:"locationAr"`
	DescriptionEn      string   `json:"descriptionEn"`
	DescriptionAr      string   `json:"descriptionAr"`
	ResponsibilitiesEn []string `json:"responsibilitiesEn"`
	ResponsibilitiesAr []string `json:"responsibilitiesAr"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	IsCurrent          bool     `json:"isCurrent"`
	DisplayOrder       int      `json:"displayOrder"`
}

func (h *ContentHandler) ListExperiences(c *fiber.Ctx) error {
	list, err := h.Store.ListExperiences()
	if err != nil {
		return writeError(c, err, "Failed to load experiences")
	}
	return okData(c, list)
}

func (h *ContentHandler) GetExperience(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	e, err := h.Store.GetExperienceByID(id)
	if err != nil {
		return writeError(c, err, "Failed to load experience")
	}
	if e == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Record not found",
		})
	}
	return okData(c, e)
}

func (h *ContentHandler) CreateExperience(c *fiber.Ctx) error {
	var req ExperienceCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.CompanyEn) == "" {
		errs.Add("companyEn", "Company is required")
	}
	if strings.TrimSpace(req.PositionEn) == "" {
		errs.Add("positionEn", "Position is required")
	}

	e := models.Experience{
		CompanyEn:          strings.TrimSpace(req.CompanyEn),
		CompanyAr:          req.CompanyAr,
		PositionEn:         strings.TrimSpace(req.PositionEn),
		PositionAr:         req.PositionAr,
		LocationEn:         req.LocationEn,
		LocationAr:         req.LocationAr,
		DescriptionEn:      req.DescriptionEn,
		DescriptionAr:      req.DescriptionAr,
		ResponsibilitiesEn: jsonList(req.ResponsibilitiesEn),
		ResponsibilitiesAr: jsonList(req.ResponsibilitiesAr),
		IsCurrent:          req.IsCurrent,
		DisplayOrder:       req.DisplayOrder,
	}

	if req.StartDate != "" {
		d, err := parseDate(req.StartDate)
		if err != nil {
			errs.Add("startDate", "Expected YYYY-MM-DD")
		} else {
			e.StartDate = d
		}
	}
	// A current position carries no end date.
	if req.EndDate != "" && !req.IsCurrent {
		d, err := parseDate(req.EndDate)
		if err != nil {
			errs.Add("endDate", "Expected YYYY-MM-DD")
		} else {
			e.EndDate = d
		}
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	if err := h.Store.CreateExperience(&e); err != nil {
		return writeError(c, err, "Failed to create experience")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": e.ID},
	})
}

type ExperienceUpdateReq struct {
	CompanyEn          *string   `json:"companyEn"`
	CompanyAr          *string   `json:"companyAr"`
	PositionEn         *string   `json:"positionEn"`
	PositionAr         *string   `json:"positionAr"`
	LocationEn         *string   `json:"locationEn"`
	LocationAr         *string   `json:"locationAr"`
	DescriptionEn      *string   `json:"descriptionEn"`
	DescriptionAr      *string   `json:"descriptionAr"`
	ResponsibilitiesEn *[]string `json:"responsibilitiesEn"`
	ResponsibilitiesAr *[]string `json:"responsibilitiesAr"`
	StartDate          *string   `json:"startDate"`
	EndDate            *string   `json:"endDate"`
	IsCurrent          *bool     `json:"isCurrent"`
	DisplayOrder       *int      `json:"displayOrder"`
}

func (h *ContentHandler) UpdateExperience(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req ExperienceUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	fields := map[string]any{}

	setStr := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setStr("company_en", req.CompanyEn)
	setStr("company_ar", req.CompanyAr)
	setStr("position_en", req.PositionEn)
	setStr("position_ar", req.PositionAr)
	setStr("location_en", req.LocationEn)
	setStr("location_ar", req.LocationAr)
	setStr("description_en", req.DescriptionEn)
	setStr("description_ar", req.DescriptionAr)

	if req.CompanyEn != nil && strings.TrimSpace(*req.CompanyEn) == "" {
		errs.Add("companyEn", "Company cannot be empty")
	}
	if req.PositionEn != nil && strings.TrimSpace(*req.PositionEn) == "" {
		errs.Add("positionEn", "Position cannot be empty")
	}

	if req.ResponsibilitiesEn != nil {
		fields["responsibilities_en"] = jsonList(*req.ResponsibilitiesEn)
	}
	if req.ResponsibilitiesAr != nil {
		fields["responsibilities_ar"] = jsonList(*req.ResponsibilitiesAr)
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			fields["start_date"] = nil
		} else if d, err := parseDate(*req.StartDate); err != nil {
			errs.Add("startDate", "Expected YYYY-MM-DD")
		} else {
			fields["start_date"] = d
		}
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			fields["end_date"] = nil
		} else if d, err := parseDate(*req.EndDate); err != nil {
			errs.Add("endDate", "Expected YYYY-MM-DD")
		} else {
			fields["end_date"] = d
			// An end date closes the position; a row never carries
			// both is_current and an end date.
			if req.IsCurrent == nil {
				fields["is_current"] = false
			}
		}
	}
	if req.IsCurrent != nil {
		fields["is_current"] = *req.IsCurrent
		if *req.IsCurrent {
			fields["end_date"] = nil
		}
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	if err := h.Store.UpdateExperience(id, fields); err != nil {
		return writeError(c, err, "Failed to update experience")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteExperience(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteExperience(id); err != nil {
		return writeError(c, err, "Failed to delete experience")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
