package service

import (
	"testing"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStockLedgerApplyChains(t *testing.T) {
	db := newTestDB(t)
	ledger := NewStockLedger(repository.NewProductRepo(db))
	product := seedProduct(t, db, "Kopi Sachet", 8000, 10000, 5)

	moves := []struct {
		direction model.StockDirection
		qty       int
	}{
		{model.StockIn, 10},
		{model.StockOut, 3},
		{model.StockOut, 4},
		{model.StockIn, 2},
	}

	expected := 5
	for _, move := range moves {
		var entry *model.StockLedgerEntry
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			entry, err = ledger.Apply(tx, product.ID, move.direction, move.qty, "REF-1", "")
			return err
		})
		require.NoError(t, err)

		assert.Equal(t, expected, entry.StockBefore)
		expected += entry.Delta()
		assert.Equal(t, expected, entry.StockAfter)
	}

	// Saldo akhir = saldo awal + jumlah semua mutasi
	var updated model.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, 10, updated.Stock)

	entries, err := repository.NewLedgerRepo(db).FindByProductAsc(product.ID)
	require.NoError(t, err)
	require.Len(t, entries, len(moves))

	total := 5
	for i := range entries {
		total += entries[i].Delta()
	}
	assert.Equal(t, updated.Stock, total)
}

func TestStockLedgerApplyRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	ledger := NewStockLedger(repository.NewProductRepo(db))
	product := seedProduct(t, db, "Teh", 3000, 5000, 5)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ledger.Apply(tx, product.ID, model.StockIn, 0, "REF-2", "")
		return err
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestStockLedgerApplyUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	ledger := NewStockLedger(repository.NewProductRepo(db))

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ledger.Apply(tx, uuid.New(), model.StockIn, 1, "REF-3", "")
		return err
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
