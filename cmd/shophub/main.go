package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/iam-david1/shophub/internal/config"
	"github.com/iam-david1/shophub/internal/http/handlers"
	applog "github.com/iam-david1/shophub/internal/log"
	"github.com/iam-david1/shophub/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Framework errors (404, 405, body too large) keep their status;
			// everything else is logged and surfaced as an opaque 500.
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/api/")
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- API ----------
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

	// ---------- Static frontend build (optional) ----------
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		app.Static("/", cfg.StaticDir)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
