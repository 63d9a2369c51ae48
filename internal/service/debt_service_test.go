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

func newDebtService(db *gorm.DB) DebtService {
	return NewDebtService(db, repository.NewDebtRepo(db), zerolog.Nop())
}

func seedDebt(t *testing.T, db *gorm.DB, total int64) *model.Debt {
	t.Helper()
	customer := seedCustomer(t, db, "Pak Budi")
	debt := &model.Debt{
		CustomerID: customer.ID,
		SaleID:     uuid.New(),
		Total:      total,
		Remaining:  total,
		Status:     model.DebtOpen,
	}
	require.NoError(t, db.Create(debt).Error)
	return debt
}

func TestPayDebtPartial(t *testing.T) {
	db := newTestDB(t)
	svc := newDebtService(db)
	debt := seedDebt(t, db, 50000)

	result, err := svc.Pay(debt.ID, &model.PayDebtRequest{Amount: 20000, Note: "cicilan pertama"})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), result.Remaining)
	assert.Equal(t, model.DebtOpen, result.Status)

	var payment model.DebtPayment
	require.NoError(t, db.First(&payment, "debt_id = ?", debt.ID).Error)
	assert.Equal(t, int64(20000), payment.Amount)

	var cash model.CashEntry
	require.NoError(t, db.First(&cash, "category = ?", model.CashCategoryDebtPayment).Error)
	assert.Equal(t, model.CashIn, cash.Direction)
	assert.Equal(t, int64(20000), cash.Amount)
}

func TestPayDebtFullSettles(t *testing.T) {
	db := newTestDB(t)
	svc := newDebtService(db)
	debt := seedDebt(t, db, 50000)

	result, err := svc.Pay(debt.ID, &model.PayDebtRequest{Amount: 50000})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Remaining)
	assert.Equal(t, model.DebtSettled, result.Status)

	var updated model.Debt
	require.NoError(t, db.First(&updated, "id = ?", debt.ID).Error)
	assert.Equal(t, int64(0), updated.Remaining)
	assert.Equal(t, model.DebtSettled, updated.Status)
}

// Kelebihan bayar dicatat utuh di riwayat pembayaran dan kas; sisa hutang
// berhenti di nol.
func TestPayDebtOverpayment(t *testing.T) {
	db := newTestDB(t)
	svc := newDebtService(db)
	debt := seedDebt(t, db, 50000)

	result, err := svc.Pay(debt.ID, &model.PayDebtRequest{Amount: 70000})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Remaining)
	assert.Equal(t, model.DebtSettled, result.Status)

	var payment model.DebtPayment
	require.NoError(t, db.First(&payment, "debt_id = ?", debt.ID).Error)
	assert.Equal(t, int64(70000), payment.Amount)

	var cash model.CashEntry
	require.NoError(t, db.First(&cash, "category = ?", model.CashCategoryDebtPayment).Error)
	assert.Equal(t, int64(70000), cash.Amount)
}

func TestPayDebtSequence(t *testing.T) {
	db := newTestDB(t)
	svc := newDebtService(db)
	debt := seedDebt(t, db, 90000)

	amounts := []int64{30000, 30000, 30000}
	var last *PayDebtResult
	for _, amount := range amounts {
		result, err := svc.Pay(debt.ID, &model.PayDebtRequest{Amount: amount})
		require.NoError(t, err)
		if last != nil {
			// Sisa tidak pernah naik
			assert.LessOrEqual(t, result.Remaining, last.Remaining)
		}
		last = result
	}
	assert.Equal(t, int64(0), last.Remaining)
	assert.Equal(t, model.DebtSettled, last.Status)

	var payments int64
	db.Model(&model.DebtPayment{}).Where("debt_id = ?", debt.ID).Count(&payments)
	assert.Equal(t, int64(3), payments)
}

func TestPayDebtInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newDebtService(db)
	debt := seedDebt(t, db, 10000)

	_, err := svc.Pay(debt.ID, &model.PayDebtRequest{Amount: 0})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestPayDebtNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newDebtService(db)

	_, err := svc.Pay(uuid.New(), &model.PayDebtRequest{Amount: 1000})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// Tidak ada kas atau pembayaran yang ikut tercatat
	var cash, payments int64
	db.Model(&model.CashEntry{}).Count(&cash)
	db.Model(&model.DebtPayment{}).Count(&payments)
	assert.Zero(t, cash)
	assert.Zero(t, payments)
}
