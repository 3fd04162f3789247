package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	service "github.com/zdziszkee/swift-registry/internal/services"
)

// SwiftHandler handles API requests for SWIFT codes
type SwiftHandler struct {
	service service.SwiftService
}

// NewSwiftHandler creates a new handler instance
func NewSwiftHandler(service service.SwiftService) *SwiftHandler {
	return &SwiftHandler{service: service}
}

// GetByCode handles requests for a specific SWIFT code
func (h *SwiftHandler) GetByCode(c fiber.Ctx) error {
	code := strings.ToUpper(c.Params("swiftCode"))

	details, err := h.service.GetSwiftCodeDetails(c.Context(), code)
	if err != nil {
		log.Printf("INFO: retrieving SWIFT code %s: %v", code, err)
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(details)
}

// GetByCountry handles requests for all SWIFT codes of a country
func (h *SwiftHandler) GetByCountry(c fiber.Ctx) error {
	countryCode := strings.ToUpper(c.Params("countryISO2code"))

	result, err := h.service.GetSwiftCodesByCountry(c.Context(), countryCode)
	if err != nil {
		log.Printf("INFO: retrieving SWIFT codes for country %s: %v", countryCode, err)
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Create handles creation of a new SWIFT code
func (h *SwiftHandler) Create(c fiber.Ctx) error {
	var request service.CreateSwiftCodeRequest

	if err := c.Bind().Body(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.service.CreateSwiftCode(c.Context(), &request); err != nil {
		log.Printf("INFO: creating SWIFT code %s: %v", request.SwiftCode, err)
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "SWIFT code created successfully",
	})
}

// Delete handles deletion of a SWIFT code
func (h *SwiftHandler) Delete(c fiber.Ctx) error {
	code := strings.ToUpper(c.Params("swiftCode"))

	if err := h.service.DeleteSwiftCode(c.Context(), code); err != nil {
		log.Printf("INFO: deleting SWIFT code %s: %v", code, err)
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "SWIFT code deleted successfully",
	})
}

// Helper function for error handling
func handleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "SWIFT code not found",
		})
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input provided",
		})
	case errors.Is(err, service.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "SWIFT code already exists",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
