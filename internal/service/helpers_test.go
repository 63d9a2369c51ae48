package service

import (
	"fmt"
	"testing"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
// Each test gets its own named database so state never leaks between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.OpenSQLite(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Satu koneksi supaya database in-memory tidak hilang di tengah test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleLine{},
		&model.Purchase{},
		&model.PurchaseLine{},
		&model.StockLedgerEntry{},
		&model.Debt{},
		&model.DebtPayment{},
		&model.CashEntry{},
		&model.User{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, purchasePrice, salePrice int64, stock int) *model.Product {
	t.Helper()
	product := &model.Product{
		Barcode:       "BC-" + uuid.New().String()[:8],
		Name:          name,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Stock:         stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *model.Customer {
	t.Helper()
	customer := &model.Customer{
		Code: "PLG-" + uuid.New().String()[:6],
		Name: name,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *model.Supplier {
	t.Helper()
	supplier := &model.Supplier{
		Code: "SUP-" + uuid.New().String()[:6],
		Name: name,
	}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}
