package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/iam-david1/shophub/internal/domain"
	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/repos"
	"github.com/iam-david1/shophub/internal/services"
	"github.com/iam-david1/shophub/internal/validate"
)

type HomecareHandler struct {
	Care *services.HomecareService
}

func (h *HomecareHandler) Services(c *fiber.Ctx) error {
	out, err := h.Care.Services()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *HomecareHandler) Service(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Service not found")
	}
	s, err := h.Care.Service(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Service not found")
		}
		return err
	}
	return c.JSON(s)
}

func (h *HomecareHandler) Caregivers(c *fiber.Ctx) error {
	out, err := h.Care.Caregivers()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *HomecareHandler) Caregiver(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Caregiver not found")
	}
	cg, err := h.Care.Caregiver(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Caregiver not found")
		}
		return err
	}
	return c.JSON(cg)
}

func (h *HomecareHandler) Testimonials(c *fiber.Ctx) error {
	out, err := h.Care.Testimonials()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

type testimonialReq struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Image    string `json:"image"`
}

func (h *HomecareHandler) SubmitTestimonial(c *fiber.Ctx) error {
	var req testimonialReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return badRequest(c, "Name is required and must be under 100 characters")
	}
	relation, ok := validate.OptionalText(req.Relation, 100)
	if !ok {
		return badRequest(c, "Relation must be under 100 characters")
	}
	if !validate.Rating(req.Rating) {
		applog.Security(c, "validation.fail", map[string]any{"field": "rating"})
		return badRequest(c, "Rating must be between 1 and 5")
	}
	comment, ok := validate.Comment(req.Comment)
	if !ok {
		return badRequest(c, "Comment is required and must be under 1000 characters")
	}
	image, ok := validate.ImageURL(req.Image)
	if !ok {
		return badRequest(c, "Image must be a valid URL")
	}

	id, err := h.Care.SubmitTestimonial(name, optional(relation), req.Rating, comment, optional(image))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "Testimonial submitted successfully"})
}

type consultationReq struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ServiceID     *int64 `json:"service_id"`
	Message       string `json:"message"`
	PreferredDate string `json:"preferred_date"`
}

func (h *HomecareHandler) RequestConsultation(c *fiber.Ctx) error {
	var req consultationReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return badRequest(c, "Name is required and must be under 100 characters")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return badRequest(c, "Valid email is required")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
		return badRequest(c, "Invalid phone format")
	}
	msg, ok := validate.OptionalText(req.Message, 1000)
	if !ok {
		return badRequest(c, "Message must be under 1000 characters")
	}
	var prefDate string
	if req.PreferredDate != "" {
		prefDate, ok = validate.Date(req.PreferredDate)
		if !ok {
			return badRequest(c, "Invalid date format")
		}
	}

	id, ref, err := h.Care.RequestConsultation(repos.NewConsultation{
		Name:          name,
		Email:         email,
		Phone:         phone,
		ServiceID:     req.ServiceID,
		Message:       optional(msg),
		PreferredDate: optional(prefDate),
	})
	if err != nil {
		return err
	}
	applog.Audit(c, "homecare.consultation", map[string]any{"consultation_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        id,
		"reference": ref,
		"message":   "Consultation request received! Our care coordinator will contact you within 24 hours.",
	})
}

func (h *HomecareHandler) Consultation(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Consultation not found")
	}
	cons, err := h.Care.Consultation(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Consultation not found")
		}
		return err
	}
	return c.JSON(cons)
}

func (h *HomecareHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Care.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *HomecareHandler) Features(c *fiber.Ctx) error {
	return c.JSON(h.Care.Features())
}
