package handler

import (
	"fmt"
	"time"

	"go-pos-kasir/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// BackupJSON mengembalikan seluruh data toko sebagai satu dokumen JSON.
func (h *ExportHandler) BackupJSON(c *fiber.Ctx) error {
	backup, err := h.exportService.BackupJSON()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build backup"})
	}
	filename := fmt.Sprintf("backup-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.JSON(backup)
}

// BackupExcel streams the multi-sheet workbook as a download.
func (h *ExportHandler) BackupExcel(c *fiber.Ctx) error {
	f, err := h.exportService.BackupExcel()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	defer f.Close()

	filename := fmt.Sprintf("backup-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
	}
	return nil
}
