package interfaces

import (
	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

// MockDebtService backs handler tests. It applies the same payment rules as
// the real service against an in-memory slice.
type MockDebtService struct {
	debts      []domain.Debt
	shouldFail bool
}

func (m *MockDebtService) fail() error {
	return financeErrors.NewNotFoundError("forced failure")
}

func (m *MockDebtService) GetAllDebts() ([]domain.Debt, error) {
	if m.shouldFail {
		return nil, m.fail()
	}
	return m.debts, nil
}

func (m *MockDebtService) GetDebtByID(debtID int) (*domain.Debt, error) {
	if m.shouldFail {
		return nil, m.fail()
	}
	for _, debt := range m.debts {
		if debt.ID == debtID {
			found := debt
			return &found, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("No debt found with ID: %d", debtID)
}

func (m *MockDebtService) GetDebtsByUserID(userID int) ([]domain.Debt, error) {
	if m.shouldFail {
		return nil, m.fail()
	}
	debts := []domain.Debt{}
	for _, debt := range m.debts {
		if debt.UserID == userID {
			debts = append(debts, debt)
		}
	}
	return debts, nil
}

func (m *MockDebtService) GetActiveDebtsByUserID(userID int) ([]domain.Debt, error) {
	debts, err := m.GetDebtsByUserID(userID)
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

func (m *MockDebtService) GetPaidOffDebtsByUserID(userID int) ([]domain.Debt, error) {
	debts, err := m.GetDebtsByUserID(userID)
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

func (m *MockDebtService) GetTotalRemainingDebt(userID int) (decimal.Decimal, error) {
	debts, err := m.GetActiveDebtsByUserID(userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, debt := range debts {
		total = total.Add(debt.RemainingBalance())
	}
	return total, nil
}

func (m *MockDebtService) CreateDebt(userID int, debtName string, totalOwed, amountPaid, monthlyPayment decimal.Decimal) (*domain.Debt, error) {
	if m.shouldFail {
		return nil, m.fail()
	}
	debt := domain.Debt{
		ID:             len(m.debts) + 1,
		UserID:         userID,
		Name:           debtName,
		TotalOwed:      totalOwed,
		AmountPaid:     amountPaid,
		MonthlyPayment: monthlyPayment,
	}
	if err := debt.Validate(); err != nil {
		return nil, err
	}
	m.debts = append(m.debts, debt)
	return &debt, nil
}

func (m *MockDebtService) UpdateDebt(debtID int, debtName string, totalOwed, amountPaid, monthlyPayment decimal.Decimal) (*domain.Debt, error) {
	if m.shouldFail {
		return nil, m.fail()
	}
	for i, debt := range m.debts {
		if debt.ID == debtID {
			debt.Name = debtName
			debt.TotalOwed = totalOwed
			debt.AmountPaid = amountPaid
			debt.MonthlyPayment = monthlyPayment
			if err := debt.Validate(); err != nil {
				return nil, err
			}
			m.debts[i] = debt
			return &debt, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("Cannot update. No debt found with ID: %d", debtID)
}

func (m *MockDebtService) MakePayment(debtID int, paymentAmount decimal.Decimal) (*domain.Debt, error) {
	if m.shouldFail {
		return nil, m.fail()
	}
	if !paymentAmount.IsPositive() {
		return nil, financeErrors.NewValidationError("Payment amount must be positive")
	}
	for i, debt := range m.debts {
		if debt.ID == debtID {
			newAmountPaid := debt.AmountPaid.Add(paymentAmount)
			if newAmountPaid.GreaterThan(debt.TotalOwed) {
				return nil, financeErrors.NewValidationErrorf(
					"Payment would exceed total owed. Maximum payment: %s", debt.RemainingBalance())
			}
			debt.AmountPaid = newAmountPaid
			m.debts[i] = debt
			return &debt, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("No debt found with ID: %d", debtID)
}

func (m *MockDebtService) DeleteDebt(debtID int) error {
	if m.shouldFail {
		return m.fail()
	}
	for i, debt := range m.debts {
		if debt.ID == debtID {
			m.debts = append(m.debts[:i], m.debts[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewNotFoundErrorf("Cannot delete. No debt found with ID: %d", debtID)
}
