package interfaces

import (
	"github.com/katzyx/finances-tracker/internal/finance/application"
	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

// MockTransactionService backs handler tests with canned data and
// configurable failures.
type MockTransactionService struct {
	transactions []domain.Transaction
	response     *application.TransactionResponse
	err          error
}

func (m *MockTransactionService) CreateTransaction(application.CreateTransactionInput) (*application.TransactionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockTransactionService) GetAllTransactions() ([]domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}

func (m *MockTransactionService) GetTransactionByID(transactionID int) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, transaction := range m.transactions {
		if transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("No transactions found for ID: %d", transactionID)
}

func (m *MockTransactionService) GetTransactionsByAccountID(int) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) GetTransactionsByCategoryID(int) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) GetTransactionsByDebtID(int) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) GetTransactionsByUserID(int) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) GetTransactionsByDate(domain.Date) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) GetTransactionsByType(string) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) GetTransactionsByRecurrence(string) ([]domain.Transaction, error) {
	return m.list()
}

func (m *MockTransactionService) UpdateTransaction(transactionID int, input application.UpdateTransactionInput) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	transaction := &domain.Transaction{
		ID:              transactionID,
		AccountID:       input.AccountID,
		UserID:          input.UserID,
		CategoryID:      input.CategoryID,
		DebtID:          input.DebtID,
		Amount:          input.Amount,
		Description:     input.Description,
		Type:            input.Type,
		TransactionDate: input.TransactionDate,
	}
	return transaction, nil
}

func (m *MockTransactionService) DeleteTransaction(int) error {
	return m.err
}

func (m *MockTransactionService) list() ([]domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}
