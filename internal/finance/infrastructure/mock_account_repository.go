package infrastructure

import (
	"sort"
	"sync"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

// MockAccountRepository is an in-memory AccountRepository for tests.
type MockAccountRepository struct {
	mu       sync.Mutex
	accounts map[int]domain.Account
	nextID   int
	Err      error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[int]domain.Account), nextID: 1}
}

func (m *MockAccountRepository) Save(account *domain.Account) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextID
	m.nextID++
	m.accounts[account.ID] = *account
	return nil
}

func (m *MockAccountRepository) FindAll() ([]domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var accounts []domain.Account
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) FindByID(accountID int) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (m *MockAccountRepository) FindByUserID(userID int) ([]domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var accounts []domain.Account
	for _, account := range m.accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) FindByName(accountName string) (*domain.Account, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Name == accountName {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockAccountRepository) Update(account domain.Account) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) Delete(accountID int) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, accountID)
	return nil
}
