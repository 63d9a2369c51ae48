package handler

import (
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetProfitReport(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'from' date, use YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'to' date, use YYYY-MM-DD"})
	}

	report, err := h.service.ProfitReport(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func (h *ReportHandler) GetStockLedger(c *fiber.Ctx) error {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product_id format"})
		}
		productID = &id
	}

	entries, err := h.service.StockLedger(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

func (h *ReportHandler) GetCustomerSummary(c *fiber.Ctx) error {
	summaries, err := h.service.CustomerSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summaries)
}
