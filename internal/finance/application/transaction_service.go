package application

import (
	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

type UserServiceInterface interface {
	GetUserByID(userID int) (*domain.User, error)
}

type AccountServiceInterface interface {
	GetAccountByID(accountID int) (*domain.Account, error)
}

type CategoryServiceInterface interface {
	GetCategoryByID(categoryID int) (*domain.Category, error)
}

type DebtServiceInterface interface {
	GetDebtByID(debtID int) (*domain.Debt, error)
}

// TransactionService records dated income/expense events after resolving
// every referenced entity through the owning service.
type TransactionService struct {
	repo            domain.TransactionRepository
	userService     UserServiceInterface
	accountService  AccountServiceInterface
	categoryService CategoryServiceInterface
	debtService     DebtServiceInterface
}

func NewTransactionService(
	repo domain.TransactionRepository,
	userService UserServiceInterface,
	accountService AccountServiceInterface,
	categoryService CategoryServiceInterface,
	debtService DebtServiceInterface,
) *TransactionService {
	return &TransactionService{
		repo:            repo,
		userService:     userService,
		accountService:  accountService,
		categoryService: categoryService,
		debtService:     debtService,
	}
}

// CreateTransactionInput carries the raw ids and values of a creation
// request; the service resolves the ids before recording anything.
type CreateTransactionInput struct {
	AccountID   int
	UserID      int
	CategoryID  int
	DebtID      *int
	Amount      decimal.Decimal
	Description string
	Type        string
	Recurrence  string
}

// UpdateTransactionInput carries a full-field replacement. Reference ids are
// trusted as-is: update does not re-resolve them (a weaker contract than
// Create, kept deliberately).
type UpdateTransactionInput struct {
	AccountID       int
	UserID          int
	CategoryID      int
	DebtID          *int
	Amount          decimal.Decimal
	Description     string
	Type            string
	Recurrence      string
	TransactionDate domain.Date
}

// TransactionResponse is the denormalized projection returned on creation:
// the referenced names inlined alongside the ids.
type TransactionResponse struct {
	TransactionID   int             `json:"transactionId"`
	AccountID       int             `json:"accountId"`
	AccountName     string          `json:"accountName"`
	UserID          int             `json:"userId"`
	CategoryID      int             `json:"categoryId"`
	CategoryName    string          `json:"categoryName"`
	DebtID          *int            `json:"debtId"`
	DebtName        *string         `json:"debtName"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	TransactionDate domain.Date     `json:"transactionDate"`
	Recurrence      *string         `json:"recurrence"`
}

// CreateTransaction resolves the referenced account, user and category (and
// debt, when a positive debt id is supplied), stamps today's date and
// persists the event. A nil or non-positive debt id means "no debt
// association", not an error.
func (s *TransactionService) CreateTransaction(input CreateTransactionInput) (*TransactionResponse, error) {
	user, err := s.userService.GetUserByID(input.UserID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountService.GetAccountByID(input.AccountID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryService.GetCategoryByID(input.CategoryID)
	if err != nil {
		return nil, err
	}

	var debt *domain.Debt
	if input.DebtID != nil && *input.DebtID > 0 {
		debt, err = s.debtService.GetDebtByID(*input.DebtID)
		if err != nil {
			return nil, err
		}
	}

	transaction := &domain.Transaction{
		AccountID:       account.ID,
		UserID:          user.ID,
		CategoryID:      category.ID,
		Amount:          input.Amount,
		Description:     input.Description,
		Type:            input.Type,
		Recurrence:      normalizeRecurrence(input.Recurrence),
		TransactionDate: domain.Today(),
	}
	if debt != nil {
		transaction.DebtID = &debt.ID
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}

	response := &TransactionResponse{
		TransactionID:   transaction.ID,
		AccountID:       account.ID,
		AccountName:     account.Name,
		UserID:          user.ID,
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		Amount:          transaction.Amount,
		Description:     transaction.Description,
		Type:            transaction.Type,
		TransactionDate: transaction.TransactionDate,
		Recurrence:      transaction.Recurrence,
	}
	if debt != nil {
		response.DebtID = &debt.ID
		response.DebtName = &debt.Name
	}
	return response, nil
}

func (s *TransactionService) GetAllTransactions() ([]domain.Transaction, error) {
	transactions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionByID(transactionID int) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for ID: %d", transactionID)
	}
	return transaction, nil
}

func (s *TransactionService) GetTransactionsByAccountID(accountID int) ([]domain.Transaction, error) {
	if _, err := s.accountService.GetAccountByID(accountID); err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for account: %d", accountID)
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionsByCategoryID(categoryID int) ([]domain.Transaction, error) {
	if _, err := s.categoryService.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for category: %d", categoryID)
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionsByDebtID(debtID int) ([]domain.Transaction, error) {
	if _, err := s.debtService.GetDebtByID(debtID); err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByDebtID(debtID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for debt: %d", debtID)
	}
	return transactions, nil
}

// GetTransactionsByUserID returns an empty list when the user simply has no
// transactions yet; only an unknown user is an error.
func (s *TransactionService) GetTransactionsByUserID(userID int) ([]domain.Transaction, error) {
	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionsByDate(date domain.Date) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByDate(date)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for date: %s", date)
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionsByType(transactionType string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByType(transactionType)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for type: %s", transactionType)
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionsByRecurrence(recurrence string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByRecurrence(recurrence)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, financeErrors.NewNotFoundErrorf("No transactions found for recurrence: %s", recurrence)
	}
	return transactions, nil
}

// UpdateTransaction replaces every field of an existing transaction. A zero
// input date keeps the stored stamp.
func (s *TransactionService) UpdateTransaction(transactionID int, input UpdateTransactionInput) (*domain.Transaction, error) {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.NewNotFoundErrorf("Transaction not found with ID: %d", transactionID)
	}

	existing.AccountID = input.AccountID
	existing.UserID = input.UserID
	existing.CategoryID = input.CategoryID
	existing.DebtID = input.DebtID
	existing.Amount = input.Amount
	existing.Description = input.Description
	existing.Type = input.Type
	existing.Recurrence = normalizeRecurrence(input.Recurrence)
	if !input.TransactionDate.IsZero() {
		existing.TransactionDate = input.TransactionDate
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TransactionService) DeleteTransaction(transactionID int) error {
	existing, err := s.repo.FindByID(transactionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.NewNotFoundErrorf("Transaction not found with ID: %d", transactionID)
	}
	return s.repo.Delete(transactionID)
}

// normalizeRecurrence maps a blank recurrence to "absent" so the empty
// string is never stored or returned.
func normalizeRecurrence(recurrence string) *string {
	if recurrence == "" {
		return nil
	}
	return &recurrence
}
