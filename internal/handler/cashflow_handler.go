package handler

import (
	"time"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type CashFlowHandler struct {
	repo repository.CashRepository
}

func NewCashFlowHandler(repo repository.CashRepository) *CashFlowHandler {
	return &CashFlowHandler{repo: repo}
}

// GetEntries menampilkan arus kas, opsional difilter rentang tanggal (from/to).
func (h *CashFlowHandler) GetEntries(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
	}

	var entries []model.CashEntry
	if from == nil && to == nil {
		entries, err = h.repo.FindAll()
	} else {
		start := time.Time{}
		if from != nil {
			start = *from
		}
		end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
		if to != nil {
			// Batas atas inklusif sampai akhir hari.
			end = to.Add(24*time.Hour - time.Second)
		}
		entries, err = h.repo.FindBetween(start, end)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch cash entries"})
	}

	var totalIn, totalOut int64
	for _, e := range entries {
		if e.Direction == model.CashIn {
			totalIn += e.Amount
		} else {
			totalOut += e.Amount
		}
	}
	return c.JSON(fiber.Map{
		"data":      entries,
		"total_in":  totalIn,
		"total_out": totalOut,
		"balance":   totalIn - totalOut,
	})
}

// CreateEntry mencatat kas masuk/keluar manual di luar transaksi otomatis.
func (h *CashFlowHandler) CreateEntry(c *fiber.Ctx) error {
	var entry model.CashEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if err := validator.Validate(&entry); err != nil {
		return respondError(c, err)
	}
	if err := h.repo.Create(&entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create cash entry"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Cash entry created", "data": entry})
}

func (h *CashFlowHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete cash entry"})
	}
	return c.JSON(fiber.Map{"message": "Cash entry deleted"})
}
