package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Review moderation: every state change here is an explicit admin action.
// Pending and approved are both reachable from each other; delete is
// terminal.

func (h *ContentHandler) ListAllReviews(c *fiber.Ctx) error {
	list, err := h.Store.ListAllReviews()
	if err != nil {
		return writeError(c, err, "Failed to load reviews")
	}
	return okData(c, list)
}

type ApproveReviewReq struct {
	Approved bool `json:"approved"`
}

func (h *ContentHandler) ApproveReview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req ApproveReviewReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.Store.SetReviewApproval(id, req.Approved); err != nil {
		return writeError(c, err, "Failed to update review approval")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

type ReplyReviewReq struct {
	Reply string `json:"reply"`
}

func (h *ContentHandler) ReplyToReview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	var req ReplyReviewReq
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.Reply) == "" {
		errs.Add("reply", "Reply cannot be empty")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	if err := h.Store.ReplyToReview(id, strings.TrimSpace(req.Reply)); err != nil {
		return writeError(c, err, "Failed to reply to review")
	}

	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return badBody(c)
	}
	if err := h.Store.DeleteReview(id); err != nil {
		return writeError(c, err, "Failed to delete review")
	}
	h.Cache.InvalidatePortfolio(c.Context())
	return c.JSON(fiber.Map{"success": true})
}
