package service

import (
	"testing"
	"time"

	"go-pos-kasir/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExportService(db *gorm.DB) ExportService {
	return NewExportService(
		repository.NewProductRepo(db),
		repository.NewCustomerRepo(db),
		repository.NewSupplierRepo(db),
		repository.NewSaleRepo(db),
		repository.NewPurchaseRepo(db),
		repository.NewDebtRepo(db),
		repository.NewCashRepo(db),
		repository.NewLedgerRepo(db),
		newReportService(db),
	)
}

func TestBackupJSON(t *testing.T) {
	db := newTestDB(t)
	svc := newExportService(db)

	product := seedProduct(t, db, "Kopi Sachet", 8000, 10000, 10)
	customer := seedCustomer(t, db, "Bu Siti")
	seedSupplier(t, db, "PT Sumber")
	seedSale(t, db, product, &customer.ID, 2, time.Now())

	backup, err := svc.BackupJSON()
	require.NoError(t, err)

	assert.Len(t, backup.Products, 1)
	assert.Len(t, backup.Customers, 1)
	assert.Len(t, backup.Suppliers, 1)
	assert.Len(t, backup.Sales, 1)
	assert.Empty(t, backup.Purchases)
	assert.Empty(t, backup.Debts)
}

func TestBackupExcelSheets(t *testing.T) {
	db := newTestDB(t)
	svc := newExportService(db)

	product := seedProduct(t, db, "Teh Botol", 3000, 5000, 20)
	customer := seedCustomer(t, db, "Warung Pak Budi")
	seedSale(t, db, product, &customer.ID, 3, time.Now())

	f, err := svc.BackupExcel()
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Produk")
	assert.Contains(t, sheets, "Transaksi")
	assert.Contains(t, sheets, "Hutang")
	assert.Contains(t, sheets, "Pembelian per Pelanggan")
	assert.NotContains(t, sheets, "Sheet1")

	// Baris data produk terisi
	name, err := f.GetCellValue("Produk", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Teh Botol", name)

	// Ringkasan pelanggan memuat warung dengan total nilainya
	value, err := f.GetCellValue("Pembelian per Pelanggan", "E2")
	require.NoError(t, err)
	assert.Equal(t, "15000", value)
}
