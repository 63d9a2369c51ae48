package handler

import (
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req model.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale created", "data": sale})
}

func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	sale, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}
