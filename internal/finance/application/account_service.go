package application

import (
	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

type AccountService struct {
	repo        domain.AccountRepository
	userService UserServiceInterface
}

func NewAccountService(repo domain.AccountRepository, userService UserServiceInterface) *AccountService {
	return &AccountService{repo: repo, userService: userService}
}

func (s *AccountService) GetAllAccounts() ([]domain.Account, error) {
	accounts, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) GetAccountByID(accountID int) (*domain.Account, error) {
	account, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, financeErrors.NewNotFoundErrorf("Account not found with ID: %d", accountID)
	}
	return account, nil
}

func (s *AccountService) GetAccountsByUserID(userID int) ([]domain.Account, error) {
	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}
	accounts, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) GetAccountByName(accountName string) (*domain.Account, error) {
	account, err := s.repo.FindByName(accountName)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, financeErrors.NewNotFoundErrorf("Account not found with name: %s", accountName)
	}
	return account, nil
}

func (s *AccountService) CreateAccount(userID int, accountName string, accountBalance decimal.Decimal) (*domain.Account, error) {
	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}

	account := &domain.Account{
		UserID:  userID,
		Name:    accountName,
		Balance: accountBalance,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount replaces all account fields. The caller-supplied user id is
// trusted and not re-resolved, matching the weaker update contract.
func (s *AccountService) UpdateAccount(accountID int, details domain.Account) (*domain.Account, error) {
	existing, err := s.repo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.NewNotFoundErrorf("Cannot update. No account found with ID: %d", accountID)
	}

	existing.UserID = details.UserID
	existing.Name = details.Name
	existing.Balance = details.Balance
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *AccountService) DeleteAccount(accountID int) error {
	existing, err := s.repo.FindByID(accountID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.NewNotFoundErrorf("Cannot delete. No account found with ID: %d", accountID)
	}
	return s.repo.Delete(accountID)
}
