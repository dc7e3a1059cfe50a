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

type SalonHandler struct {
	Salon *services.SalonService
}

func (h *SalonHandler) Services(c *fiber.Ctx) error {
	out, err := h.Salon.Services()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SalonHandler) Service(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Service not found")
	}
	s, err := h.Salon.Service(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Service not found")
		}
		return err
	}
	return c.JSON(s)
}

func (h *SalonHandler) Team(c *fiber.Ctx) error {
	out, err := h.Salon.Team()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SalonHandler) TeamMember(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Team member not found")
	}
	m, err := h.Salon.TeamMember(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Team member not found")
		}
		return err
	}
	return c.JSON(m)
}

func (h *SalonHandler) Gallery(c *fiber.Ctx) error {
	category, ok := validate.OptionalText(c.Query("category"), 50)
	if !ok {
		return badRequest(c, "invalid category")
	}
	out, err := h.Salon.Gallery(category)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SalonHandler) Reviews(c *fiber.Ctx) error {
	out, err := h.Salon.Reviews()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

type reviewReq struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Image   string `json:"image"`
}

func (h *SalonHandler) SubmitReview(c *fiber.Ctx) error {
	var req reviewReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return badRequest(c, "Name and rating are required")
	}
	if !validate.Rating(req.Rating) {
		applog.Security(c, "validation.fail", map[string]any{"field": "rating"})
		return badRequest(c, "Rating must be between 1 and 5")
	}
	comment, ok := validate.OptionalText(req.Comment, 1000)
	if !ok {
		return badRequest(c, "Comment must be under 1000 characters")
	}
	image, ok := validate.ImageURL(req.Image)
	if !ok {
		return badRequest(c, "Image must be a valid URL")
	}

	id, err := h.Salon.SubmitReview(name, req.Rating, optional(comment), optional(image))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "Review submitted successfully"})
}

type bookingReq struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID *int64 `json:"service_id"`
	StylistID *int64 `json:"stylist_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

func (h *SalonHandler) CreateBooking(c *fiber.Ctx) error {
	var req bookingReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return badRequest(c, "Name, email, phone, date, and time are required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return badRequest(c, "Name, email, phone, date, and time are required")
	}
	phone, ok := validate.Phone(req.Phone)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "phone"})
		return badRequest(c, "Name, email, phone, date, and time are required")
	}
	date, ok := validate.Date(req.Date)
	if !ok {
		return badRequest(c, "date must be YYYY-MM-DD")
	}
	at, ok := validate.TimeOfDay(req.Time)
	if !ok {
		return badRequest(c, "time must be HH:MM")
	}
	notes, ok := validate.OptionalText(req.Notes, 1000)
	if !ok {
		return badRequest(c, "Notes must be under 1000 characters")
	}

	id, ref, err := h.Salon.Book(repos.NewBooking{
		Name:      name,
		Email:     email,
		Phone:     phone,
		ServiceID: req.ServiceID,
		StylistID: req.StylistID,
		Date:      date,
		Time:      at,
		Notes:     optional(notes),
	})
	if err != nil {
		return err
	}
	applog.Audit(c, "salon.booking", map[string]any{"booking_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        id,
		"reference": ref,
		"message":   "Booking created successfully! We will contact you shortly to confirm.",
	})
}

func (h *SalonHandler) Booking(c *fiber.Ctx) error {
	id, ok := validate.IntID(c.Params("id"))
	if !ok {
		return notFound(c, "Booking not found")
	}
	b, err := h.Salon.Booking(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Booking not found")
		}
		return err
	}
	return c.JSON(b)
}

func (h *SalonHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Salon.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// optional maps empty strings to NULL-able columns.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
