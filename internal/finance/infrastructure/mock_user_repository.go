package infrastructure

import (
	"sync"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

// MockUserRepository is an in-memory UserRepository for tests.
type MockUserRepository struct {
	mu     sync.Mutex
	users  map[int]domain.User
	nextID int
	Err    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[int]domain.User), nextID: 1}
}

func (m *MockUserRepository) Save(user *domain.User) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

func (m *MockUserRepository) FindByID(userID int) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *MockUserRepository) Count() (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}
