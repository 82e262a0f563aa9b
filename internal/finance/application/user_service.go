package application

import (
	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

// UserService handles user lookups. The deployment is single-user; user
// ID 1 exists by convention and is created by the seed.
type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetUserByID(userID int) (*domain.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, financeErrors.NewNotFoundErrorf("User not found with ID: %d", userID)
	}
	return user, nil
}

// GetSingleUser retrieves the well-known single user.
func (s *UserService) GetSingleUser() (*domain.User, error) {
	return s.GetUserByID(domain.SingleUserID)
}
