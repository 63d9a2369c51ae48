package handler

import (
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req model.CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	purchase, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Purchase created", "data": purchase})
}

func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	purchase, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchase)
}
