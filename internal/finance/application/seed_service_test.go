package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
	"github.com/katzyx/finances-tracker/internal/finance/infrastructure"
)

func TestSeedService_PopulatesEmptyStore(t *testing.T) {
	userRepo := infrastructure.NewMockUserRepository()
	accountRepo := infrastructure.NewMockAccountRepository()
	categoryRepo := infrastructure.NewMockCategoryRepository()
	seed := NewSeedService(userRepo, accountRepo, categoryRepo)

	require.NoError(t, seed.Run())

	user, err := userRepo.FindByID(domain.SingleUserID)
	require.NoError(t, err)
	require.NotNil(t, user)

	account, err := accountRepo.FindByName("Chequing")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, user.ID, account.UserID)
	assert.True(t, account.Balance.IsZero())

	categories, err := categoryRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, categories, len(DefaultCategories))
}

func TestSeedService_IdempotentOnPopulatedStore(t *testing.T) {
	userRepo := infrastructure.NewMockUserRepository()
	accountRepo := infrastructure.NewMockAccountRepository()
	categoryRepo := infrastructure.NewMockCategoryRepository()
	seed := NewSeedService(userRepo, accountRepo, categoryRepo)

	require.NoError(t, seed.Run())
	require.NoError(t, seed.Run())

	count, err := userRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	accounts, err := accountRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	categories, err := categoryRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, categories, len(DefaultCategories))
}
