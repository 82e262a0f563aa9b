package application

import (
	"github.com/katzyx/finances-tracker/internal/finance/domain"
	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.NewNotFoundErrorf("Category not found with ID: %d", categoryID)
	}
	return category, nil
}

func (s *CategoryService) GetCategoryByName(categoryName string) (*domain.Category, error) {
	category, err := s.repo.FindByName(categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.NewNotFoundErrorf("Category not found with name: %s", categoryName)
	}
	return category, nil
}

// CreateCategory saves a new category, rejecting duplicate names.
func (s *CategoryService) CreateCategory(categoryName string) (*domain.Category, error) {
	category := &domain.Category{Name: categoryName}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByName(categoryName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, financeErrors.NewConflictErrorf("A category with the name '%s' already exists.", categoryName)
	}

	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(categoryID int, categoryName string) (*domain.Category, error) {
	existing, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, financeErrors.NewNotFoundErrorf("Cannot update. No category found with ID: %d", categoryID)
	}

	existing.Name = categoryName
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CategoryService) DeleteCategory(categoryID int) error {
	existing, err := s.repo.FindByID(categoryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.NewNotFoundErrorf("Cannot delete. No category found with ID: %d", categoryID)
	}
	return s.repo.Delete(categoryID)
}
