package handlers

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

type PersonalInfoReq struct {
	FullNameEn  *string `json:"fullNameEn"`
	FullNameAr  *string `json:"fullNameAr"`
	TitleEn     *string `json:"titleEn"`
	TitleAr     *string `json:"titleAr"`
	BioEn       *string `json:"bioEn"`
	BioAr       *string `json:"bioAr"`
	SummaryEn   *string `json:"summaryEn"`
	SummaryAr   *string `json:"summaryAr"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Whatsapp    *string `json:"whatsapp"`
	LinkedinURL *string `json:"linkedinUrl"`
	LocationEn  *string `json:"locationEn"`
	LocationAr  *string `json:"locationAr"`
	AvatarURL   *string `json:"avatarUrl"`
}

// UpsertPersonalInfo applies a partial edit to the singleton record,
// inserting it on first use. Only supplied fields are touched.
func (h *ContentHandler) UpsertPersonalInfo(c *fiber.Ctx) error {
	var req PersonalInfoReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if req.Email != nil && *req.Email != "" {
		if a, err := mail.ParseAddress(*req.Email); err != nil || a.Address != *req.Email {
			errs.Add("email", "Invalid email format")
		}
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	values := models.PersonalInfo{}
	fields := map[string]any{}
	set := func(col string, dst *string, v *string) {
		if v != nil {
			*dst = *v
			fields[col] = *v
		}
	}
	set("full_name_en", &values.FullNameEn, req.FullNameEn)
	set("full_name_ar", &values.FullNameAr, req.FullNameAr)
	set("title_en", &values.TitleEn, req.TitleEn)
	set("title_ar", &values.TitleAr, req.TitleAr)
	set("bio_en", &values.BioEn, req.BioEn)
	set("bio_ar", &values.BioAr, req.BioAr)
	set("summary_en", &values.SummaryEn, req.SummaryEn)
	set("summary_ar", &values.SummaryAr, req.SummaryAr)
	set("email", &values.Email, req.Email)
	set("phone", &values.Phone, req.Phone)
	set("whatsapp", &values.Whatsapp, req.Whatsapp)
	set("linkedin_url", &values.LinkedinURL, req.LinkedinURL)
	set("location_en", &values.LocationEn, req.LocationEn)
	set("location_ar", &values.LocationAr, req.LocationAr)
	set("avatar_url", &values.AvatarURL, req.AvatarURL)

	if err := h.Store.UpsertPersonalInfo(values, fields); err != nil {
		return writeError(c, err, "Failed to save personal info")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
