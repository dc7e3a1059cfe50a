package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"github.com/iam-david1/shophub/internal/http/handlers"
	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/repos"
)

// newTestApp wires the full API surface against a throwaway seeded database,
// mirroring the route table in cmd/shophub.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(filepath.Join(t.TempDir(), "shophub.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/cart", deps.CartHandler.Create)
	api.Get("/cart/:sessionId", deps.CartHandler.List)
	api.Post("/cart/:sessionId/items", deps.CartHandler.AddItem)
	api.Put("/cart/:sessionId/items/:itemId", deps.CartHandler.UpdateItem)
	api.Delete("/cart/:sessionId/items/:itemId", deps.CartHandler.RemoveItem)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Post("/contact", deps.ContactHandler.Submit)

	salon := api.Group("/salon")
	salon.Get("/services", deps.SalonHandler.Services)
	salon.Get("/services/:id", deps.SalonHandler.Service)
	salon.Get("/team", deps.SalonHandler.Team)
	salon.Get("/team/:id", deps.SalonHandler.TeamMember)
	salon.Get("/gallery", deps.SalonHandler.Gallery)
	salon.Get("/reviews", deps.SalonHandler.Reviews)
	salon.Post("/reviews", deps.SalonHandler.SubmitReview)
	salon.Post("/bookings", deps.SalonHandler.CreateBooking)
	salon.Get("/bookings/:id", deps.SalonHandler.Booking)
	salon.Get("/stats", deps.SalonHandler.Stats)

	care := api.Group("/homecare")
	care.Get("/services", deps.HomecareHandler.Services)
	care.Get("/services/:id", deps.HomecareHandler.Service)
	care.Get("/caregivers", deps.HomecareHandler.Caregivers)
	care.Get("/caregivers/:id", deps.HomecareHandler.Caregiver)
	care.Get("/testimonials", deps.HomecareHandler.Testimonials)
	care.Post("/testimonials", deps.HomecareHandler.SubmitTestimonial)
	care.Post("/consultations", deps.HomecareHandler.RequestConsultation)
	care.Get("/consultations/:id", deps.HomecareHandler.Consultation)
	care.Get("/stats", deps.HomecareHandler.Stats)
	care.Get("/features", deps.HomecareHandler.Features)

	return app, db
}

func jsonReq(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
}
