package infrastructure

import (
	"sort"
	"sync"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

// MockTransactionRepository is an in-memory TransactionRepository for tests.
type MockTransactionRepository struct {
	mu           sync.Mutex
	transactions map[int]domain.Transaction
	nextID       int
	Err          error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[int]domain.Transaction), nextID: 1}
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	transaction.ID = m.nextID
	m.nextID++
	m.transactions[transaction.ID] = *transaction
	return nil
}

func (m *MockTransactionRepository) FindAll() ([]domain.Transaction, error) {
	return m.filter(func(domain.Transaction) bool { return true })
}

func (m *MockTransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	transaction, ok := m.transactions[transactionID]
	if !ok {
		return nil, nil
	}
	return &transaction, nil
}

func (m *MockTransactionRepository) FindByAccountID(accountID int) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.AccountID == accountID })
}

func (m *MockTransactionRepository) FindByCategoryID(categoryID int) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.CategoryID == categoryID })
}

func (m *MockTransactionRepository) FindByDebtID(debtID int) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.DebtID != nil && *t.DebtID == debtID })
}

func (m *MockTransactionRepository) FindByUserID(userID int) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.UserID == userID })
}

func (m *MockTransactionRepository) FindByDate(date domain.Date) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.TransactionDate.Equal(date.Time) })
}

func (m *MockTransactionRepository) FindByType(transactionType string) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.Type == transactionType })
}

func (m *MockTransactionRepository) FindByRecurrence(recurrence string) ([]domain.Transaction, error) {
	return m.filter(func(t domain.Transaction) bool { return t.Recurrence != nil && *t.Recurrence == recurrence })
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) Delete(transactionID int) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transactions, transactionID)
	return nil
}

func (m *MockTransactionRepository) filter(keep func(domain.Transaction) bool) ([]domain.Transaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var transactions []domain.Transaction
	for _, transaction := range m.transactions {
		if keep(transaction) {
			transactions = append(transactions, transaction)
		}
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].ID < transactions[j].ID })
	return transactions, nil
}
