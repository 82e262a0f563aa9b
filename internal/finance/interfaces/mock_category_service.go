package interfaces

import (
	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error
}

func (m *MockCategoryService) GetAllCategories() ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategoryByID(categoryID int) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, category := range m.categories {
		if category.ID == categoryID {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("Category not found with ID: %d", categoryID)
}

func (m *MockCategoryService) GetCategoryByName(categoryName string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, category := range m.categories {
		if category.Name == categoryName {
			found := category
			return &found, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("Category not found with name: %s", categoryName)
}

func (m *MockCategoryService) CreateCategory(categoryName string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, category := range m.categories {
		if category.Name == categoryName {
			return nil, financeErrors.NewConflictErrorf("A category with the name '%s' already exists.", categoryName)
		}
	}
	category := domain.Category{ID: len(m.categories) + 1, Name: categoryName}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *MockCategoryService) UpdateCategory(categoryID int, categoryName string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i, category := range m.categories {
		if category.ID == categoryID {
			category.Name = categoryName
			if err := category.Validate(); err != nil {
				return nil, err
			}
			m.categories[i] = category
			return &category, nil
		}
	}
	return nil, financeErrors.NewNotFoundErrorf("Cannot update. No category found with ID: %d", categoryID)
}

func (m *MockCategoryService) DeleteCategory(categoryID int) error {
	if m.err != nil {
		return m.err
	}
	for i, category := range m.categories {
		if category.ID == categoryID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.NewNotFoundErrorf("Cannot delete. No category found with ID: %d", categoryID)
}
