package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// ValidRecurrences are the accepted cadence tags. Recurrence is
// informational only; nothing schedules on it.
var ValidRecurrences = []string{"weekly", "monthly", "yearly"}

// Transaction is a single dated income or expense event tied to an account
// and a category, and optionally a debt. DebtID and Recurrence are nil when
// absent. TransactionDate is stamped by the recorder at creation, never
// caller-supplied.
type Transaction struct {
	ID              int             `json:"transactionId"`
	AccountID       int             `json:"accountId"`
	UserID          int             `json:"userId"`
	CategoryID      int             `json:"categoryId"`
	DebtID          *int            `json:"debtId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	Recurrence      *string         `json:"recurrence"`
	TransactionDate Date            `json:"transactionDate"`
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

func IsValidRecurrence(recurrence string) bool {
	for _, valid := range ValidRecurrences {
		if recurrence == valid {
			return true
		}
	}
	return false
}

func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return financeErrors.NewValidationError("Amount must be a positive value")
	}
	if strings.TrimSpace(t.Description) == "" {
		return financeErrors.NewValidationError("Description is mandatory")
	}
	if !IsValidTransactionType(t.Type) {
		return financeErrors.ErrInvalidTransactionType
	}
	if t.Recurrence != nil && !IsValidRecurrence(*t.Recurrence) {
		return financeErrors.ErrInvalidRecurrence
	}
	return nil
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindAll() ([]Transaction, error)
	FindByID(transactionID int) (*Transaction, error)
	FindByAccountID(accountID int) ([]Transaction, error)
	FindByCategoryID(categoryID int) ([]Transaction, error)
	FindByDebtID(debtID int) ([]Transaction, error)
	FindByUserID(userID int) ([]Transaction, error)
	FindByDate(date Date) ([]Transaction, error)
	FindByType(transactionType string) ([]Transaction, error)
	FindByRecurrence(recurrence string) ([]Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID int) error
}
