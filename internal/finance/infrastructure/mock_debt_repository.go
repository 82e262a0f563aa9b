package infrastructure

import (
	"sort"
	"sync"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

// MockDebtRepository is an in-memory DebtRepository for tests. UpdateWithLock
// holds the repository mutex across the whole read-check-write, giving the
// same per-debt serialization the SQL implementation gets from row locks.
type MockDebtRepository struct {
	mu     sync.Mutex
	debts  map[int]domain.Debt
	nextID int
	Err    error
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{debts: make(map[int]domain.Debt), nextID: 1}
}

func (m *MockDebtRepository) Save(debt *domain.Debt) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	debt.ID = m.nextID
	m.nextID++
	m.debts[debt.ID] = *debt
	return nil
}

func (m *MockDebtRepository) FindAll() ([]domain.Debt, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var debts []domain.Debt
	for _, debt := range m.debts {
		debts = append(debts, debt)
	}
	sort.Slice(debts, func(i, j int) bool { return debts[i].ID < debts[j].ID })
	return debts, nil
}

func (m *MockDebtRepository) FindByID(debtID int) (*domain.Debt, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	debt, ok := m.debts[debtID]
	if !ok {
		return nil, nil
	}
	return &debt, nil
}

func (m *MockDebtRepository) FindByUserID(userID int) ([]domain.Debt, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var debts []domain.Debt
	for _, debt := range m.debts {
		if debt.UserID == userID {
			debts = append(debts, debt)
		}
	}
	sort.Slice(debts, func(i, j int) bool { return debts[i].ID < debts[j].ID })
	return debts, nil
}

func (m *MockDebtRepository) Update(debt domain.Debt) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockDebtRepository) UpdateWithLock(debtID int, mutate func(*domain.Debt) error) (*domain.Debt, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	debt, ok := m.debts[debtID]
	if !ok {
		return nil, nil
	}
	if err := mutate(&debt); err != nil {
		return nil, err
	}
	m.debts[debtID] = debt
	return &debt, nil
}

func (m *MockDebtRepository) Delete(debtID int) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.debts, debtID)
	return nil
}
