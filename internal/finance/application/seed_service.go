package application

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

// DefaultCategories are created on first startup alongside the single user
// and a zero-balance chequing account.
var DefaultCategories = []string{"Other", "Rent", "Groceries", "Shopping", "Transportation", "Restaurants"}

// SeedService initializes sample data for an empty store. It replaces the
// hidden construction-time bootstrap of earlier versions with an explicit,
// idempotent operation invoked once at process startup.
type SeedService struct {
	userRepo     domain.UserRepository
	accountRepo  domain.AccountRepository
	categoryRepo domain.CategoryRepository
}

func NewSeedService(userRepo domain.UserRepository, accountRepo domain.AccountRepository, categoryRepo domain.CategoryRepository) *SeedService {
	return &SeedService{
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// Run creates the single user, a "Chequing" account and the default
// categories when no users exist yet. Running against a populated store is
// a no-op.
func (s *SeedService) Run() error {
	count, err := s.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Sample data already exists, skipping initialization", "users", count)
		return nil
	}

	slog.Info("No users found, initializing sample data")

	user := &domain.User{}
	if err := s.userRepo.Save(user); err != nil {
		return err
	}
	slog.Info("Created user", "user_id", user.ID)

	account := &domain.Account{
		UserID:  user.ID,
		Name:    "Chequing",
		Balance: decimal.Zero,
	}
	if err := s.accountRepo.Save(account); err != nil {
		return err
	}
	slog.Info("Created account", "account_name", account.Name)

	for _, name := range DefaultCategories {
		category := &domain.Category{Name: name}
		if err := s.categoryRepo.Save(category); err != nil {
			return err
		}
		slog.Info("Created category", "category_name", category.Name, "category_id", category.ID)
	}

	slog.Info("Sample data initialized successfully")
	return nil
}
