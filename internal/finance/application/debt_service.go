package application

import (
	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

// DebtService owns the debt ledger: it creates debts, applies payments
// without ever letting AmountPaid overshoot TotalOwed, and answers
// balance/progress queries derived from the stored fields.
type DebtService struct {
	repo        domain.DebtRepository
	userService UserServiceInterface
}

func NewDebtService(repo domain.DebtRepository, userService UserServiceInterface) *DebtService {
	return &DebtService{repo: repo, userService: userService}
}

func (s *DebtService) GetAllDebts() ([]domain.Debt, error) {
	debts, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if debts == nil {
		return []domain.Debt{}, nil
	}
	return debts, nil
}

func (s *DebtService) GetDebtByID(debtID int) (*domain.Debt, error) {
	debt, err := s.repo.FindByID(debtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, financeErrors.NewNotFoundErrorf("No debt found with ID: %d", debtID)
	}
	return debt, nil
}

// GetDebtsByUserID returns all debts of a user. A user with no debts gets an
// empty list, not an error.
func (s *DebtService) GetDebtsByUserID(userID int) ([]domain.Debt, error) {
	debts, err := s.findUserDebts(userID)
	if err != nil {
		return nil, err
	}
	return debts, nil
}

// GetActiveDebtsByUserID returns the user's debts with AmountPaid < TotalOwed.
func (s *DebtService) GetActiveDebtsByUserID(userID int) ([]domain.Debt, error) {
	debts, err := s.findUserDebts(userID)
	if err != nil {
		return nil, err
	}
	active := []domain.Debt{}
	for _, debt := range debts {
		if !debt.IsPaidOff() {
			active = append(active, debt)
		}
	}
	return active, nil
}

// GetPaidOffDebtsByUserID returns the user's debts with AmountPaid >= TotalOwed.
func (s *DebtService) GetPaidOffDebtsByUserID(userID int) ([]domain.Debt, error) {
	debts, err := s.findUserDebts(userID)
	if err != nil {
		return nil, err
	}
	paidOff := []domain.Debt{}
	for _, debt := range debts {
		if debt.IsPaidOff() {
			paidOff = append(paidOff, debt)
		}
	}
	return paidOff, nil
}

// GetTotalRemainingDebt sums TotalOwed - AmountPaid across the user's active
// debts. Paid-off debts contribute 0; a user with no debts yields 0.
func (s *DebtService) GetTotalRemainingDebt(userID int) (decimal.Decimal, error) {
	debts, err := s.findUserDebts(userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, debt := range debts {
		if !debt.IsPaidOff() {
			total = total.Add(debt.RemainingBalance())
		}
	}
	return total, nil
}

func (s *DebtService) findUserDebts(userID int) ([]domain.Debt, error) {
	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}
	debts, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if debts == nil {
		return []domain.Debt{}, nil
	}
	return debts, nil
}

// CreateDebt records a new debt for the user. An AmountPaid above TotalOwed
// is rejected outright, never clamped.
func (s *DebtService) CreateDebt(userID int, debtName string, totalOwed, amountPaid, monthlyPayment decimal.Decimal) (*domain.Debt, error) {
	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}

	debt := &domain.Debt{
		UserID:         userID,
		Name:           debtName,
		TotalOwed:      totalOwed,
		AmountPaid:     amountPaid,
		MonthlyPayment: monthlyPayment,
	}
	if err := debt.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// UpdateDebt replaces the debt's fields. The resulting AmountPaid must not
// exceed the new TotalOwed. The stored owner is kept; references are not
// re-resolved on update.
func (s *DebtService) UpdateDebt(debtID int, debtName string, totalOwed, amountPaid, monthlyPayment decimal.Decimal) (*domain.Debt, error) {
	existing, err := s.repo.FindByID(debtID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.NewNotFoundErrorf("Cannot update. No debt found with ID: %d", debtID)
	}

	existing.Name = debtName
	existing.TotalOwed = totalOwed
	existing.AmountPaid = amountPaid
	existing.MonthlyPayment = monthlyPayment
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// MakePayment applies a payment towards a debt. The read-check-write runs
// under the repository's per-row lock so concurrent payments against the
// same debt cannot jointly overshoot TotalOwed.
func (s *DebtService) MakePayment(debtID int, paymentAmount decimal.Decimal) (*domain.Debt, error) {
	if !paymentAmount.IsPositive() {
		return nil, financeErrors.NewValidationError("Payment amount must be positive")
	}

	debt, err := s.repo.UpdateWithLock(debtID, func(d *domain.Debt) error {
		newAmountPaid := d.AmountPaid.Add(paymentAmount)
		if newAmountPaid.GreaterThan(d.TotalOwed) {
			return financeErrors.NewValidationErrorf(
				"Payment would exceed total owed. Maximum payment: %s", d.RemainingBalance())
		}
		d.AmountPaid = newAmountPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, financeErrors.NewNotFoundErrorf("No debt found with ID: %d", debtID)
	}
	return debt, nil
}

func (s *DebtService) DeleteDebt(debtID int) error {
	existing, err := s.repo.FindByID(debtID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.NewNotFoundErrorf("Cannot delete. No debt found with ID: %d", debtID)
	}
	// Dependent transactions are not cascaded; the schema nulls their debt
	// reference instead.
	return s.repo.Delete(debtID)
}
