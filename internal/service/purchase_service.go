package service

import (
	"errors"
	"fmt"
	"time"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/internal/ws"
	"go-pos-kasir/pkg/apperr"
	"go-pos-kasir/pkg/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// defaultMarginPercent is the business default applied to the sale price of
// products provisioned on the fly during a purchase.
const defaultMarginPercent = 20

type PurchaseService interface {
	Create(req *model.CreatePurchaseRequest) (*model.Purchase, error)
	GetAll() ([]model.Purchase, error)
	GetByID(id uuid.UUID) (*model.Purchase, error)
}

type purchaseService struct {
	db           *gorm.DB
	purchaseRepo repository.PurchaseRepository
	ledger       *StockLedger
	hub          *ws.Hub
	log          zerolog.Logger
}

func NewPurchaseService(db *gorm.DB, purchaseRepo repository.PurchaseRepository, ledger *StockLedger, hub *ws.Hub, log zerolog.Logger) PurchaseService {
	return &purchaseService{
		db:           db,
		purchaseRepo: purchaseRepo,
		ledger:       ledger,
		hub:          hub,
		log:          log,
	}
}

// Create records a stock replenishment atomically: purchase header, lines,
// IN ledger rows, purchase-price tracking on known products, inline
// provisioning of unknown ones, and the cash-out entry when already paid.
func (s *purchaseService) Create(req *model.CreatePurchaseRequest) (*model.Purchase, error) {
	// 1. Validasi Input
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var subtotal int64
	for _, item := range req.Items {
		subtotal += item.UnitCost * int64(item.Quantity)
	}

	purchase := &model.Purchase{
		Number:       documentNumber(purchasePrefix),
		SupplierID:   req.SupplierID,
		Date:         time.Now(),
		Subtotal:     subtotal,
		ShippingCost: req.ShippingCost,
		OtherCost:    req.OtherCost,
		GrandTotal:   subtotal + req.ShippingCost + req.OtherCost,
		Status:       req.Status,
		Note:         req.Note,
	}

	var entries []*model.StockLedgerEntry

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier model.Supplier
		if err := tx.First(&supplier, "id = ?", req.SupplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.KindNotFound, "supplier %s not found", req.SupplierID)
			}
			return apperr.Wrap(apperr.KindPersistence, err, "read supplier")
		}

		if err := tx.Create(purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Newf(apperr.KindConflict, "purchase number %s already exists", purchase.Number)
			}
			return apperr.Wrap(apperr.KindPersistence, err, "create purchase")
		}

		for _, item := range req.Items {
			productID, err := s.resolveProduct(tx, item, req.SupplierID)
			if err != nil {
				return err
			}

			entry, err := s.ledger.Apply(tx, productID, model.StockIn, item.Quantity, purchase.Number, "Pembelian dari supplier")
			if err != nil {
				return err
			}
			entries = append(entries, entry)

			line := &model.PurchaseLine{
				PurchaseID: purchase.ID,
				ProductID:  productID,
				Quantity:   item.Quantity,
				UnitCost:   item.UnitCost,
				Subtotal:   item.UnitCost * int64(item.Quantity),
			}
			if err := tx.Create(line).Error; err != nil {
				return apperr.Wrap(apperr.KindPersistence, err, "create purchase line")
			}
		}

		// Cash flow keluar hanya kalau sudah lunas
		if purchase.Status == model.PurchasePaid && purchase.GrandTotal > 0 {
			cash := &model.CashEntry{
				Direction: model.CashOut,
				Category:  model.CashCategoryStockPurchase,
				Amount:    purchase.GrandTotal,
				Note:      fmt.Sprintf("Pembelian %s", purchase.Number),
				Date:      purchase.Date,
			}
			if err := tx.Create(cash).Error; err != nil {
				return apperr.Wrap(apperr.KindPersistence, err, "create cash entry")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("number", purchase.Number).Int64("grand_total", purchase.GrandTotal).Msg("purchase created")

	if s.hub != nil {
		for _, entry := range entries {
			s.hub.PublishStock(ws.StockEvent{
				Action:    "purchase_created",
				ProductID: entry.ProductID,
				Stock:     entry.StockAfter,
				Reference: purchase.Number,
			})
		}
	}

	// Baca ulang lewat jalur terklasifikasi supaya error ikut terbungkus
	return s.GetByID(purchase.ID)
}

// resolveProduct returns the id of an existing product, updating its
// purchase price to the line's unit cost, or provisions a new product when
// the id is unknown. New products keep the client-supplied id when one was
// sent, carry an AUTO barcode, and get the default margin on sale price.
func (s *purchaseService) resolveProduct(tx *gorm.DB, item model.PurchaseItem, supplierID uuid.UUID) (uuid.UUID, error) {
	if item.ProductID != nil {
		var product model.Product
		err := tx.First(&product, "id = ?", *item.ProductID).Error
		if err == nil {
			// Side effect: harga beli mengikuti faktur terakhir
			if err := tx.Model(&product).Update("purchase_price", item.UnitCost).Error; err != nil {
				return uuid.Nil, apperr.Wrap(apperr.KindPersistence, err, "update purchase price")
			}
			return product.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperr.Wrap(apperr.KindPersistence, err, "read product")
		}
	}

	name := item.ProductName
	if name == "" {
		name = "Unknown"
	}
	product := &model.Product{
		Name:          name,
		Barcode:       autoBarcode(),
		PurchasePrice: item.UnitCost,
		SalePrice:     item.UnitCost * (100 + defaultMarginPercent) / 100,
		Stock:         0, // diisi lewat kartu stok
		SupplierID:    &supplierID,
	}
	if item.ProductID != nil {
		product.ID = *item.ProductID
	}
	if err := tx.Create(product).Error; err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindPersistence, err, "provision product")
	}
	return product.ID, nil
}

func (s *purchaseService) GetAll() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *purchaseService) GetByID(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "purchase %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read purchase")
	}
	return purchase, nil
}
