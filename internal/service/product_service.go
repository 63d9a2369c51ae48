package service

import (
	"errors"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/internal/ws"
	"go-pos-kasir/pkg/apperr"
	"go-pos-kasir/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(req *model.Product) error
	Update(id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	GetByBarcode(barcode string) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewProductService(productRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{productRepo: productRepo, hub: hub}
}

func (s *productService) Create(req *model.Product) error {
	// 1. Validasi Struct Dasar
	if err := validator.Validate(req); err != nil {
		return err
	}

	// 2. Cek Duplikasi Barcode (Business Logic Validation)
	existing, _ := s.productRepo.FindByBarcode(req.Barcode)
	if existing != nil && existing.ID != uuid.Nil {
		return apperr.Newf(apperr.KindConflict, "barcode %s already exists", req.Barcode)
	}

	// 3. Simpan ke Database
	if err := s.productRepo.Create(req); err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "create product")
	}

	if s.hub != nil {
		s.hub.PublishStock(ws.StockEvent{
			Action:      "product_created",
			ProductID:   req.ID,
			ProductName: req.Name,
			Barcode:     req.Barcode,
			Stock:       req.Stock,
		})
	}
	return nil
}

func (s *productService) Update(id uuid.UUID, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "product %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read product")
	}

	// Stok tidak diubah lewat endpoint ini; hanya lewat transaksi
	// penjualan/pembelian supaya kartu stok tetap konsisten.
	existing.Barcode = req.Barcode
	existing.Name = req.Name
	existing.PurchasePrice = req.PurchasePrice
	existing.SalePrice = req.SalePrice
	existing.MinStock = req.MinStock
	existing.Category = req.Category
	existing.Unit = req.Unit
	existing.Description = req.Description
	existing.SupplierID = req.SupplierID

	if err := validator.Validate(existing); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Newf(apperr.KindConflict, "barcode %s already exists", req.Barcode)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "update product")
	}

	if s.hub != nil {
		s.hub.PublishStock(ws.StockEvent{
			Action:      "product_updated",
			ProductID:   existing.ID,
			ProductName: existing.Name,
			Barcode:     existing.Barcode,
			Stock:       existing.Stock,
		})
	}
	return existing, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Newf(apperr.KindNotFound, "product %s not found", id)
		}
		return apperr.Wrap(apperr.KindPersistence, err, "read product")
	}
	if err := s.productRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindPersistence, err, "delete product")
	}
	return nil
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "product %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read product")
	}
	return product, nil
}

func (s *productService) GetByBarcode(barcode string) (*model.Product, error) {
	product, err := s.productRepo.FindByBarcode(barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "barcode %s not found", barcode)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read product")
	}
	return product, nil
}
