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

type SaleService interface {
	Create(req *model.CreateSaleRequest) (*model.Sale, error)
	GetAll() ([]model.Sale, error)
	GetByID(id uuid.UUID) (*model.Sale, error)
}

type saleService struct {
	db       *gorm.DB
	saleRepo repository.SaleRepository
	ledger   *StockLedger
	hub      *ws.Hub
	log      zerolog.Logger
}

func NewSaleService(db *gorm.DB, saleRepo repository.SaleRepository, ledger *StockLedger, hub *ws.Hub, log zerolog.Logger) SaleService {
	return &saleService{
		db:       db,
		saleRepo: saleRepo,
		ledger:   ledger,
		hub:      hub,
		log:      log,
	}
}

// Create runs the whole checkout as one atomic batch: sale header, line
// snapshots, stock ledger OUT rows, plus a Debt (credit) or CashEntry
// (cash). On any failure none of the writes become visible.
func (s *saleService) Create(req *model.CreateSaleRequest) (*model.Sale, error) {
	// 1. Validasi Input
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if req.PaymentMethod == model.PaymentDebt && req.CustomerID == nil {
		return nil, apperr.New(apperr.KindValidation, "customer is required for a credit sale")
	}

	sale := &model.Sale{
		Number:        documentNumber(salePrefix),
		CustomerID:    req.CustomerID,
		Date:          time.Now(),
		Discount:      req.Discount,
		Tax:           req.Tax,
		PaymentMethod: req.PaymentMethod,
	}

	var entries []*model.StockLedgerEntry

	// Gunakan Transaction Block (Atomic Operation)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.CustomerID != nil {
			var customer model.Customer
			if err := tx.First(&customer, "id = ?", *req.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Newf(apperr.KindNotFound, "customer %s not found", *req.CustomerID)
				}
				return apperr.Wrap(apperr.KindPersistence, err, "read customer")
			}
		}

		// A. Baca produk dan hitung subtotal dengan snapshot harga
		var subtotal int64
		lines := make([]model.SaleLine, 0, len(req.Items))
		for _, item := range req.Items {
			var product model.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Newf(apperr.KindNotFound, "product %s not found", item.ProductID)
				}
				return apperr.Wrap(apperr.KindPersistence, err, "read product")
			}

			lineSubtotal := product.SalePrice * int64(item.Quantity)
			subtotal += lineSubtotal
			lines = append(lines, model.SaleLine{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.SalePrice,
				CostPrice: product.PurchasePrice,
				Subtotal:  lineSubtotal,
			})
		}

		sale.Subtotal = subtotal
		sale.Total = subtotal - req.Discount + req.Tax

		// B. Field bayar/kembalian hanya untuk CASH
		if req.PaymentMethod == model.PaymentCash {
			sale.Paid = req.Paid
			if change := req.Paid - sale.Total; change > 0 {
				sale.Change = change
			}
			sale.Status = model.SalePaid
		} else {
			sale.Status = model.SaleUnpaid
		}
		sale.Lines = lines

		if err := tx.Create(sale).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Newf(apperr.KindConflict, "sale number %s already exists", sale.Number)
			}
			return apperr.Wrap(apperr.KindPersistence, err, "create sale")
		}

		// C. Kartu stok keluar per baris
		for _, item := range req.Items {
			entry, err := s.ledger.Apply(tx, item.ProductID, model.StockOut, item.Quantity, sale.Number, "Penjualan")
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}

		// D. Hutang untuk penjualan kredit, cash flow untuk tunai
		if req.PaymentMethod == model.PaymentDebt {
			debt := &model.Debt{
				CustomerID: *req.CustomerID,
				SaleID:     sale.ID,
				Total:      sale.Total,
				Remaining:  sale.Total,
				DueDate:    req.DueDate,
				Status:     model.DebtOpen,
			}
			if err := tx.Create(debt).Error; err != nil {
				return apperr.Wrap(apperr.KindPersistence, err, "create debt")
			}
		} else {
			amount := sale.Total
			if req.Paid < amount {
				amount = req.Paid
			}
			if amount > 0 {
				cash := &model.CashEntry{
					Direction: model.CashIn,
					Category:  model.CashCategorySale,
					Amount:    amount,
					Note:      fmt.Sprintf("Penjualan %s", sale.Number),
					Date:      sale.Date,
				}
				if err := tx.Create(cash).Error; err != nil {
					return apperr.Wrap(apperr.KindPersistence, err, "create cash entry")
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("number", sale.Number).Int64("total", sale.Total).
		Str("method", string(sale.PaymentMethod)).Msg("sale created")

	// Broadcast stok baru setelah commit
	if s.hub != nil {
		for _, entry := range entries {
			s.hub.PublishStock(ws.StockEvent{
				Action:    "sale_created",
				ProductID: entry.ProductID,
				Stock:     entry.StockAfter,
				Reference: sale.Number,
			})
		}
	}

	// Baca ulang lewat jalur terklasifikasi supaya error ikut terbungkus
	return s.GetByID(sale.ID)
}

func (s *saleService) GetAll() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "sale %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read sale")
	}
	return sale, nil
}
