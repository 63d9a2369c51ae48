package handler

import (
	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DebtHandler struct {
	service service.DebtService
}

func NewDebtHandler(s service.DebtService) *DebtHandler {
	return &DebtHandler{service: s}
}

func (h *DebtHandler) GetDebts(c *fiber.Ctx) error {
	debts, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(debts)
}

func (h *DebtHandler) GetDebt(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	debt, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(debt)
}

func (h *DebtHandler) PayDebt(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	var req model.PayDebtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.Pay(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Payment applied", "data": result})
}
