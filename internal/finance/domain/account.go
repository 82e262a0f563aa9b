package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

// Account belongs to exactly one user. Its balance is set at creation and
// changed only by explicit updates; transactions do not adjust it.
type Account struct {
	ID      int             `json:"accountId"`
	UserID  int             `json:"userId"`
	Name    string          `json:"accountName"`
	Balance decimal.Decimal `json:"accountBalance"`
}

func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return financeErrors.NewValidationError("Account name cannot be blank")
	}
	if a.Balance.IsNegative() {
		return financeErrors.NewValidationError("Account balance must be a positive number or zero")
	}
	return nil
}

type AccountRepository interface {
	Save(account *Account) error
	FindAll() ([]Account, error)
	FindByID(accountID int) (*Account, error)
	FindByUserID(userID int) ([]Account, error)
	FindByName(accountName string) (*Account, error)
	Update(account Account) error
	Delete(accountID int) error
}
