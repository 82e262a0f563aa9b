package application

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
	"github.com/katzyx/finances-tracker/internal/finance/errors"
	"github.com/katzyx/finances-tracker/internal/finance/infrastructure"
)

func newDebtServiceWithUser(t *testing.T) (*DebtService, *infrastructure.MockDebtRepository, int) {
	t.Helper()
	userRepo := infrastructure.NewMockUserRepository()
	user := &domain.User{}
	require.NoError(t, userRepo.Save(user))

	debtRepo := infrastructure.NewMockDebtRepository()
	return NewDebtService(debtRepo, NewUserService(userRepo)), debtRepo, user.ID
}

func TestCreateDebt_Valid(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	debt, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.Equal(t, 1, debt.ID)
	assert.Equal(t, "Car Loan", debt.Name)
	assert.True(t, debt.RemainingBalance().Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 20.0, debt.PaymentProgress())
	assert.False(t, debt.IsPaidOff())
}

func TestCreateDebt_UnknownUser(t *testing.T) {
	service, _, _ := newDebtServiceWithUser(t)

	_, err := service.CreateDebt(42, "Car Loan",
		decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "User not found with ID: 42", err.Error())
}

func TestCreateDebt_AmountPaidAboveTotalOwed(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	_, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(1500), decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "Amount paid cannot exceed total owed", err.Error())
}

func TestCreateDebt_NonPositiveTotalOwed(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	_, err := service.CreateDebt(userID, "Car Loan",
		decimal.Zero, decimal.Zero, decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestMakePayment_WithinRemainingBalance(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)
	created, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(100))
	require.NoError(t, err)

	debt, err := service.MakePayment(created.ID, decimal.NewFromInt(800))
	require.NoError(t, err)

	assert.True(t, debt.AmountPaid.Equal(decimal.NewFromInt(1000)))
	assert.True(t, debt.RemainingBalance().IsZero())
	assert.True(t, debt.IsPaidOff())
	assert.Equal(t, 100.0, debt.PaymentProgress())
}

func TestMakePayment_ExceedsRemainingBalance(t *testing.T) {
	service, repo, userID := newDebtServiceWithUser(t)
	created, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = service.MakePayment(created.ID, decimal.NewFromFloat(800.01))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "Payment would exceed total owed. Maximum payment: 800", err.Error())

	// The rejected payment must not change the stored debt.
	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.AmountPaid.Equal(decimal.NewFromInt(200)))
}

func TestMakePayment_NonPositiveAmount(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)
	created, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = service.MakePayment(created.ID, decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "Payment amount must be positive", err.Error())
}

func TestMakePayment_UnknownDebt(t *testing.T) {
	service, _, _ := newDebtServiceWithUser(t)

	_, err := service.MakePayment(99, decimal.NewFromInt(50))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "No debt found with ID: 99", err.Error())
}

func TestMakePayment_ConcurrentPaymentsNeverOvershoot(t *testing.T) {
	service, repo, userID := newDebtServiceWithUser(t)
	created, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(100))
	require.NoError(t, err)

	// 20 concurrent payments of 100 against a 1000 debt: exactly 10 may
	// succeed, the rest must be rejected.
	const workers = 20
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.MakePayment(created.ID, decimal.NewFromInt(100))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.IsValidationError(err))
		}
	}
	assert.Equal(t, 10, succeeded)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.AmountPaid.Equal(decimal.NewFromInt(1000)))
}

func TestGetTotalRemainingDebt_SumsActiveOnly(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	_, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(500), decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = service.CreateDebt(userID, "Credit Card",
		decimal.NewFromInt(400), decimal.NewFromInt(100), decimal.NewFromInt(50))
	require.NoError(t, err)
	// Fully paid; contributes nothing.
	_, err = service.CreateDebt(userID, "Old Phone",
		decimal.NewFromInt(300), decimal.NewFromInt(300), decimal.NewFromInt(25))
	require.NoError(t, err)

	total, err := service.GetTotalRemainingDebt(userID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(800)), "expected 800, got %s", total)
}

func TestGetTotalRemainingDebt_NoDebts(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	total, err := service.GetTotalRemainingDebt(userID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestGetActiveAndPaidOffDebts_Classification(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	active, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(500), decimal.NewFromInt(100))
	require.NoError(t, err)
	paidOff, err := service.CreateDebt(userID, "Old Phone",
		decimal.NewFromInt(300), decimal.NewFromInt(300), decimal.NewFromInt(25))
	require.NoError(t, err)

	activeDebts, err := service.GetActiveDebtsByUserID(userID)
	require.NoError(t, err)
	require.Len(t, activeDebts, 1)
	assert.Equal(t, active.ID, activeDebts[0].ID)

	paidOffDebts, err := service.GetPaidOffDebtsByUserID(userID)
	require.NoError(t, err)
	require.Len(t, paidOffDebts, 1)
	assert.Equal(t, paidOff.ID, paidOffDebts[0].ID)
}

func TestGetDebtsByUserID_EmptyListForKnownUser(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)

	debts, err := service.GetDebtsByUserID(userID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Debt{}, debts)
}

func TestGetDebtsByUserID_UnknownUser(t *testing.T) {
	service, _, _ := newDebtServiceWithUser(t)

	_, err := service.GetDebtsByUserID(42)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateDebt_RejectsAmountPaidAboveNewTotal(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)
	created, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(600), decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = service.UpdateDebt(created.ID, "Car Loan",
		decimal.NewFromInt(500), decimal.NewFromInt(600), decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateDebt_KeepsOwner(t *testing.T) {
	service, _, userID := newDebtServiceWithUser(t)
	created, err := service.CreateDebt(userID, "Car Loan",
		decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(100))
	require.NoError(t, err)

	updated, err := service.UpdateDebt(created.ID, "Refinanced Car Loan",
		decimal.NewFromInt(900), decimal.NewFromInt(200), decimal.NewFromInt(75))
	require.NoError(t, err)
	assert.Equal(t, userID, updated.UserID)
	assert.Equal(t, "Refinanced Car Loan", updated.Name)
	assert.True(t, updated.TotalOwed.Equal(decimal.NewFromInt(900)))
}

func TestDeleteDebt_UnknownDebt(t *testing.T) {
	service, _, _ := newDebtServiceWithUser(t)

	err := service.DeleteDebt(7)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "Cannot delete. No debt found with ID: 7", err.Error())
}
