package service

import (
	"testing"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) SaleService {
	productRepo := repository.NewProductRepo(db)
	return NewSaleService(db, repository.NewSaleRepo(db), NewStockLedger(productRepo), nil, zerolog.Nop())
}

func TestCreateSaleCash(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Kopi Sachet", 8000, 10000, 10)

	sale, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 2}},
		PaymentMethod: model.PaymentCash,
		Paid:          20000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20000), sale.Total)
	assert.Equal(t, int64(20000), sale.Paid)
	assert.Equal(t, int64(0), sale.Change)
	assert.Equal(t, model.SalePaid, sale.Status)
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, int64(10000), sale.Lines[0].UnitPrice)
	assert.Equal(t, int64(8000), sale.Lines[0].CostPrice)

	// Stok berkurang dan kartu stok tercatat
	var updated model.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, 8, updated.Stock)

	var entry model.StockLedgerEntry
	require.NoError(t, db.First(&entry, "product_id = ?", product.ID).Error)
	assert.Equal(t, model.StockOut, entry.Direction)
	assert.Equal(t, 2, entry.Quantity)
	assert.Equal(t, 10, entry.StockBefore)
	assert.Equal(t, 8, entry.StockAfter)
	assert.Equal(t, sale.Number, entry.Reference)

	// Kas masuk sebesar total
	var cash model.CashEntry
	require.NoError(t, db.First(&cash, "category = ?", model.CashCategorySale).Error)
	assert.Equal(t, model.CashIn, cash.Direction)
	assert.Equal(t, int64(20000), cash.Amount)
}

func TestCreateSaleCashOverpayment(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Teh Botol", 3000, 5000, 20)

	sale, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 3}},
		PaymentMethod: model.PaymentCash,
		Paid:          20000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15000), sale.Total)
	assert.Equal(t, int64(5000), sale.Change)

	// Kas masuk dibatasi ke total, bukan jumlah yang disetor
	var cash model.CashEntry
	require.NoError(t, db.First(&cash, "category = ?", model.CashCategorySale).Error)
	assert.Equal(t, int64(15000), cash.Amount)
}

func TestCreateSaleDiscountAndTax(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Beras 5kg", 60000, 70000, 50)

	sale, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 2}},
		Discount:      10000,
		Tax:           5000,
		PaymentMethod: model.PaymentCash,
		Paid:          135000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(140000), sale.Subtotal)
	assert.Equal(t, sale.Subtotal-sale.Discount+sale.Tax, sale.Total)
	assert.Equal(t, int64(135000), sale.Total)
}

func TestCreateSaleCredit(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Minyak Goreng", 14000, 17000, 30)
	customer := seedCustomer(t, db, "Bu Siti")

	sale, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 4}},
		CustomerID:    &customer.ID,
		PaymentMethod: model.PaymentDebt,
	})
	require.NoError(t, err)

	assert.Equal(t, model.SaleUnpaid, sale.Status)
	assert.Equal(t, int64(0), sale.Paid)

	var debt model.Debt
	require.NoError(t, db.First(&debt, "sale_id = ?", sale.ID).Error)
	assert.Equal(t, customer.ID, debt.CustomerID)
	assert.Equal(t, int64(68000), debt.Total)
	assert.Equal(t, debt.Total, debt.Remaining)
	assert.Equal(t, model.DebtOpen, debt.Status)

	// Penjualan kredit tidak menyentuh arus kas
	var count int64
	db.Model(&model.CashEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateSaleCreditRequiresCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Gula Pasir", 12000, 14000, 10)

	_, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: model.PaymentDebt,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateSaleEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)

	_, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{},
		PaymentMethod: model.PaymentCash,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateSaleUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Sabun", 2000, 3000, 10)
	missing := uuid.New()

	_, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 1}},
		CustomerID:    &missing,
		PaymentMethod: model.PaymentDebt,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// Jalur baca yang dipakai ulang oleh Create harus mengklasifikasi error.
func TestSaleGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)

	_, err := svc.GetByID(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// TestCreateSaleAtomicity memastikan tidak ada baris tersisa ketika satu item
// di tengah keranjang gagal: seluruh batch harus dibatalkan.
func TestCreateSaleAtomicity(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Rokok", 20000, 25000, 15)

	_, err := svc.Create(&model.CreateSaleRequest{
		Items: []model.CartItem{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1}, // produk tidak dikenal
		},
		PaymentMethod: model.PaymentCash,
		Paid:          100000,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	var sales, lines, ledger, cash int64
	db.Model(&model.Sale{}).Count(&sales)
	db.Model(&model.SaleLine{}).Count(&lines)
	db.Model(&model.StockLedgerEntry{}).Count(&ledger)
	db.Model(&model.CashEntry{}).Count(&cash)
	assert.Zero(t, sales)
	assert.Zero(t, lines)
	assert.Zero(t, ledger)
	assert.Zero(t, cash)

	// Stok produk yang valid tidak boleh berubah
	var updated model.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, 15, updated.Stock)
}

// Oversell dibiarkan: stok boleh minus dan direkonsiliasi lewat pembelian.
func TestCreateSaleOversell(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	product := seedProduct(t, db, "Galon", 15000, 19000, 1)

	_, err := svc.Create(&model.CreateSaleRequest{
		Items:         []model.CartItem{{ProductID: product.ID, Quantity: 3}},
		PaymentMethod: model.PaymentCash,
		Paid:          57000,
	})
	require.NoError(t, err)

	var updated model.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, -2, updated.Stock)
}
