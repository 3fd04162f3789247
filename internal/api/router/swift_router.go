package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	handler "github.com/zdziszkee/swift-registry/internal/api/handlers"
)

// SetupRoutes configures all API routes
func SetupRoutes(swiftHandler *handler.SwiftHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"message": "Internal server error",
			})
		},
	})

	// Add global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	// API versioning
	v1 := app.Group("/v1")

	// SWIFT codes endpoints
	v1.Get("/swift-codes/:swiftCode", swiftHandler.GetByCode)
	v1.Get("/swift-codes/country/:countryISO2code", swiftHandler.GetByCountry)
	v1.Post("/swift-codes", swiftHandler.Create)
	v1.Delete("/swift-codes/:swiftCode", swiftHandler.Delete)

	return app
}
