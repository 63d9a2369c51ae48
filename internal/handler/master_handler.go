package handler

import (
	"errors"
	"strings"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerHandler and SupplierHandler serve master data straight from the
// repositories; there is no business logic beyond code generation and
// uniqueness.
type CustomerHandler struct {
	repo repository.CustomerRepository
}

func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// generateCode builds a short display code like PLG-3F2A9C.
func generateCode(prefix string) string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return prefix + "-" + entropy
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if customer.Code == "" {
		customer.Code = generateCode("PLG")
	}
	if err := validator.Validate(&customer); err != nil {
		return respondError(c, err)
	}

	if existing, _ := h.repo.FindByCode(customer.Code); existing != nil && existing.ID != uuid.Nil {
		return c.Status(409).JSON(fiber.Map{"error": "Customer code already exists"})
	}
	if err := h.repo.Create(&customer); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create customer"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customers"})
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	customer, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customer"})
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	existing, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customer"})
	}

	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	existing.Name = req.Name
	existing.Address = req.Address
	existing.Phone = req.Phone
	existing.Email = req.Email
	if req.Code != "" {
		existing.Code = req.Code
	}
	if err := validator.Validate(existing); err != nil {
		return respondError(c, err)
	}
	if err := h.repo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "Customer code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update customer"})
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": existing})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete customer"})
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

type SupplierHandler struct {
	repo repository.SupplierRepository
}

func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if supplier.Code == "" {
		supplier.Code = generateCode("SUP")
	}
	if err := validator.Validate(&supplier); err != nil {
		return respondError(c, err)
	}
	if err := h.repo.Create(&supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "Supplier code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create supplier"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Supplier created", "data": supplier})
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch suppliers"})
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	supplier, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch supplier"})
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	existing, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch supplier"})
	}

	var req model.Supplier
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	existing.Name = req.Name
	existing.Address = req.Address
	existing.Phone = req.Phone
	existing.Email = req.Email
	if req.Code != "" {
		existing.Code = req.Code
	}
	if err := validator.Validate(existing); err != nil {
		return respondError(c, err)
	}
	if err := h.repo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "Supplier code already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update supplier"})
	}
	return c.JSON(fiber.Map{"message": "Supplier updated", "data": existing})
}

func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete supplier"})
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}
