package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

func init() {
	// The API emits money as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Debt is a fixed-principal obligation: TotalOwed is fixed at creation and
// AmountPaid grows monotonically through payments. The invariant
// 0 <= AmountPaid <= TotalOwed holds at rest on every mutation path.
type Debt struct {
	ID             int             `json:"debtId"`
	UserID         int             `json:"userId"`
	Name           string          `json:"debtName"`
	TotalOwed      decimal.Decimal `json:"totalOwed"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
}

// RemainingBalance is TotalOwed - AmountPaid, recomputed from the stored
// fields on every call.
func (d Debt) RemainingBalance() decimal.Decimal {
	return d.TotalOwed.Sub(d.AmountPaid)
}

// PaymentProgress is the percentage paid off, computed with 4-decimal
// half-up division. A zero TotalOwed yields 0 rather than a division error.
func (d Debt) PaymentProgress() float64 {
	if d.TotalOwed.IsZero() {
		return 0.0
	}
	progress, _ := d.AmountPaid.
		DivRound(d.TotalOwed, 4).
		Mul(decimal.NewFromInt(100)).
		Float64()
	return progress
}

// IsPaidOff reports whether the debt is fully paid. Active/paid-off is a
// pure function of AmountPaid vs TotalOwed, not a stored state field.
func (d Debt) IsPaidOff() bool {
	return d.AmountPaid.GreaterThanOrEqual(d.TotalOwed)
}

func (d *Debt) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return financeErrors.NewValidationError("Debt name is mandatory")
	}
	if !d.TotalOwed.IsPositive() {
		return financeErrors.NewValidationError("Total owed must be a positive value")
	}
	if !d.MonthlyPayment.IsPositive() {
		return financeErrors.NewValidationError("Monthly payment must be a positive value")
	}
	if d.AmountPaid.IsNegative() {
		return financeErrors.NewValidationError("Amount paid cannot be negative")
	}
	if d.AmountPaid.GreaterThan(d.TotalOwed) {
		return financeErrors.NewValidationError("Amount paid cannot exceed total owed")
	}
	return nil
}

// MarshalJSON inlines the derived figures so every read path reports
// balances consistent with the stored fields.
func (d Debt) MarshalJSON() ([]byte, error) {
	type alias Debt
	return json.Marshal(struct {
		alias
		RemainingBalance decimal.Decimal `json:"remainingBalance"`
		PaymentProgress  float64         `json:"paymentProgress"`
	}{
		alias:            alias(d),
		RemainingBalance: d.RemainingBalance(),
		PaymentProgress:  d.PaymentProgress(),
	})
}

type DebtRepository interface {
	Save(debt *Debt) error
	FindAll() ([]Debt, error)
	FindByID(debtID int) (*Debt, error)
	FindByUserID(userID int) ([]Debt, error)
	Update(debt Debt) error
	// UpdateWithLock fetches the debt, runs mutate against it and persists
	// the result as one serialized read-check-write per debt row. It returns
	// (nil, nil) when the debt does not exist and mutate's error unchanged
	// when mutate rejects the change.
	UpdateWithLock(debtID int, mutate func(*Debt) error) (*Debt, error)
	Delete(debtID int) error
}
