package domain

import (
	"strings"

	financeErrors "github.com/katzyx/finances-tracker/internal/finance/errors"
)

// Category is a global spending label, unique by name.
type Category struct {
	ID   int    `json:"categoryId"`
	Name string `json:"categoryName"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return financeErrors.NewValidationError("Category name cannot be blank")
	}
	return nil
}

type CategoryRepository interface {
	Save(category *Category) error
	FindAll() ([]Category, error)
	FindByID(categoryID int) (*Category, error)
	FindByName(categoryName string) (*Category, error)
	Update(category Category) error
	Delete(categoryID int) error
}
