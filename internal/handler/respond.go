package handler

import (
	"time"

	"go-pos-kasir/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps classified errors onto transport status codes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = fiber.StatusBadRequest
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindConflict:
		status = fiber.StatusConflict
	}

	// Pesan error mentah (driver, SQL) tidak boleh bocor ke klien.
	message := "Internal server error"
	if typed := apperr.As(err); typed != nil {
		message = typed.Message()
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// Helper untuk parse UUID dari path param
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// parseDateQuery reads an optional yyyy-mm-dd query param.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
