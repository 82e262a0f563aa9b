package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzyx/finances-tracker/internal/finance/errors"
	"github.com/katzyx/finances-tracker/internal/finance/infrastructure"
)

func TestCreateCategory_DuplicateNameConflicts(t *testing.T) {
	repo := infrastructure.NewMockCategoryRepository()
	service := NewCategoryService(repo)

	_, err := service.CreateCategory("Groceries")
	require.NoError(t, err)

	_, err = service.CreateCategory("Groceries")
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "A category with the name 'Groceries' already exists.", err.Error())
}

func TestCreateCategory_BlankName(t *testing.T) {
	service := NewCategoryService(infrastructure.NewMockCategoryRepository())

	_, err := service.CreateCategory("   ")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetCategoryByName_NotFound(t *testing.T) {
	service := NewCategoryService(infrastructure.NewMockCategoryRepository())

	_, err := service.GetCategoryByName("Utilities")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "Category not found with name: Utilities", err.Error())
}

func TestUpdateCategory_UnknownCategory(t *testing.T) {
	service := NewCategoryService(infrastructure.NewMockCategoryRepository())

	_, err := service.UpdateCategory(3, "Utilities")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "Cannot update. No category found with ID: 3", err.Error())
}
