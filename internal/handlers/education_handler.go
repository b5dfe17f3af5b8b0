package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type EducationCreateReq struct {
	InstitutionEn string `json:"institutionEn"`
	InstitutionAr string `json:"institutionAr"`
	DegreeEn      string `json:"degreeEn"`
	DegreeAr      string `json:"degreeAr"`
	FieldEn       string `json:"fieldEn"`
	FieldAr       string `json:"fieldAr"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	IsCurrent     bool   `json:"isCurrent"`
	DisplayOrder  int    `json:"displayOrder"`
}

func (h *ContentHandler) ListEducation(c *fiber.Ctx) error {
	list, err := h.Store.ListEducation()
	if err != nil {
		return writeError(c, err, "Failed to load education")
	}
	return okData(c, list)
}

func (h *ContentHandler) GetEducationEntry(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	e, err := h.Store.GetEducationByID(id)
	if err != nil {
		return writeError(c, err, "Failed to load education")
	}
	if e == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Record not found",
		})
	}
	return okData(c, e)
}

func (h *ContentHandler) CreateEducation(c *fiber.Ctx) error {
	var req EducationCreateReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.InstitutionEn) == "" {
		errs.Add("institutionEn", "Institution is required")
	}
	if strings.TrimSpace(req.DegreeEn) == "" {
		errs.Add("degreeEn", "Degree is required")
	}

	e := models.Education{
		InstitutionEn: strings.TrimSpace(req.InstitutionEn),
		InstitutionAr: req.InstitutionAr,
		DegreeEn:      strings.TrimSpace(req.DegreeEn),
		DegreeAr:      req.DegreeAr,
		FieldEn:       req.FieldEn,
		FieldAr:       req.FieldAr,
		IsCurrent:     req.IsCurrent,
		DisplayOrder:  req.DisplayOrder,
	}
	if req.StartDate != "" {
		d, err := parseDate(req.StartDate)
		if err != nil {
			errs.Add("startDate", "Expected YYYY-MM-DD")
		} else {
			e.StartDate = d
		}
	}
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

	if err := h.Store.CreateEducation(&e); err != nil {
		return writeError(c, err, "Failed to create education")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"id": e.ID},
	})
}

type EducationUpdateReq struct {
	InstitutionEn *string `json:"institutionEn"`
	InstitutionAr *string `json:"institutionAr"`
	DegreeEn      *string `json:"degreeEn"`
	DegreeAr      *string `json:"degreeAr"`
	FieldEn       *string `json:"fieldEn"`
	FieldAr       *string `json:"fieldAr"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	IsCurrent     *bool   `json:"isCurrent"`
	DisplayOrder  *int    `json:"displayOrder"`
}

func (h *ContentHandler) UpdateEducation(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req EducationUpdateReq
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
	setStr("institution_en", req.InstitutionEn)
	setStr("institution_ar", req.InstitutionAr)
	setStr("degree_en", req.DegreeEn)
	setStr("degree_ar", req.DegreeAr)
	setStr("field_en", req.FieldEn)
	setStr("field_ar", req.FieldAr)

	if req.InstitutionEn != nil && strings.TrimSpace(*req.InstitutionEn) == "" {
		errs.Add("institutionEn", "Institution cannot be empty")
	}
	if req.DegreeEn != nil && strings.TrimSpace(*req.DegreeEn) == "" {
		errs.Add("degreeEn", "Degree cannot be empty")
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
			// An end date closes the enrollment; a row never carries
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

	if err := h.Store.UpdateEducation(id, fields); err != nil {
		return writeError(c, err, "Failed to update education")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteEducation(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteEducation(id); err != nil {
		return writeError(c, err, "Failed to delete education")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
