package service

import (
	"errors"
	"time"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockLedger menulis baris kartu stok dan delta stok produk dalam satu
// transaksi milik pemanggil. Tidak pernah dipanggil di luar transaksi agar
// tidak ada state setengah jadi yang terlihat pembaca lain.
type StockLedger struct {
	productRepo repository.ProductRepository
}

func NewStockLedger(productRepo repository.ProductRepository) *StockLedger {
	return &StockLedger{productRepo: productRepo}
}

// Apply records one stock movement. The product row is updated with an
// atomic delta expression; StockBefore/StockAfter on the ledger row are
// computed from the pre-read and serve as audit data only.
//
// Movements OUT may drive stock negative: oversell is not guarded here,
// the shop reconciles with the next purchase.
func (l *StockLedger) Apply(tx *gorm.DB, productID uuid.UUID, direction model.StockDirection, qty int, reference, note string) (*model.StockLedgerEntry, error) {
	if qty <= 0 {
		return nil, apperr.New(apperr.KindValidation, "quantity must be greater than zero")
	}

	var product model.Product
	if err := tx.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "product %s not found", productID)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read product")
	}

	delta := qty
	if direction == model.StockOut {
		delta = -qty
	}

	if err := l.productRepo.AdjustStock(tx, productID, delta); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "adjust stock")
	}

	entry := &model.StockLedgerEntry{
		ProductID:   productID,
		Date:        time.Now(),
		Direction:   direction,
		Reference:   reference,
		Quantity:    qty,
		StockBefore: product.Stock,
		StockAfter:  product.Stock + delta,
		Note:        note,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, err, "append stock ledger entry")
	}

	return entry, nil
}
