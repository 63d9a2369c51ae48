package service

import (
	"errors"
	"fmt"
	"time"

	"go-pos-kasir/internal/model"
	"go-pos-kasir/internal/repository"
	"go-pos-kasir/pkg/apperr"
	"go-pos-kasir/pkg/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PayDebtResult is what the cashier sees after a payment is applied.
type PayDebtResult struct {
	Remaining int64            `json:"remaining"`
	Status    model.DebtStatus `json:"status"`
}

type DebtService interface {
	Pay(debtID uuid.UUID, req *model.PayDebtRequest) (*PayDebtResult, error)
	GetAll() ([]model.Debt, error)
	GetByID(id uuid.UUID) (*model.Debt, error)
}

type debtService struct {
	db       *gorm.DB
	debtRepo repository.DebtRepository
	log      zerolog.Logger
}

func NewDebtService(db *gorm.DB, debtRepo repository.DebtRepository, log zerolog.Logger) DebtService {
	return &debtService{db: db, debtRepo: debtRepo, log: log}
}

// Pay applies a payment against a debt atomically: payment row, updated
// remaining balance and status, and the matching cash-in entry.
//
// Overpayment is accepted: the payment is recorded in full while the
// remaining balance clamps at zero.
func (s *debtService) Pay(debtID uuid.UUID, req *model.PayDebtRequest) (*PayDebtResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var result PayDebtResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var debt model.Debt
		if err := tx.First(&debt, "id = ?", debtID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.KindNotFound, "debt %s not found", debtID)
			}
			return apperr.Wrap(apperr.KindPersistence, err, "read debt")
		}

		remaining := debt.Remaining - req.Amount
		if remaining < 0 {
			remaining = 0
		}
		status := model.DebtOpen
		if remaining <= 0 {
			status = model.DebtSettled
		}

		payment := &model.DebtPayment{
			DebtID: debt.ID,
			Amount: req.Amount, // jumlah penuh, tidak dipotong
			Date:   time.Now(),
			Note:   req.Note,
		}
		if err := tx.Create(payment).Error; err != nil {
			return apperr.Wrap(apperr.KindPersistence, err, "create debt payment")
		}

		if err := tx.Model(&debt).Updates(map[string]interface{}{
			"remaining": remaining,
			"status":    status,
		}).Error; err != nil {
			return apperr.Wrap(apperr.KindPersistence, err, "update debt")
		}

		cash := &model.CashEntry{
			Direction: model.CashIn,
			Category:  model.CashCategoryDebtPayment,
			Amount:    req.Amount,
			Note:      fmt.Sprintf("Pembayaran hutang %s", req.Note),
			Date:      time.Now(),
		}
		if err := tx.Create(cash).Error; err != nil {
			return apperr.Wrap(apperr.KindPersistence, err, "create cash entry")
		}

		result = PayDebtResult{Remaining: remaining, Status: status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("debt_id", debtID.String()).Int64("amount", req.Amount).
		Int64("remaining", result.Remaining).Msg("debt payment applied")

	return &result, nil
}

func (s *debtService) GetAll() ([]model.Debt, error) {
	return s.debtRepo.FindAll()
}

func (s *debtService) GetByID(id uuid.UUID) (*model.Debt, error) {
	debt, err := s.debtRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "debt %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindPersistence, err, "read debt")
	}
	return debt, nil
}
