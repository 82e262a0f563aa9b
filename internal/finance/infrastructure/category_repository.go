package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := "INSERT INTO categories (category_name) VALUES ($1) RETURNING category_id"
	return r.db.QueryRow(query, category.Name).Scan(&category.ID)
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query("SELECT category_id, category_name FROM categories ORDER BY category_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	var category domain.Category
	query := "SELECT category_id, category_name FROM categories WHERE category_id = $1"
	err := r.db.QueryRow(query, categoryID).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(categoryName string) (*domain.Category, error) {
	var category domain.Category
	query := "SELECT category_id, category_name FROM categories WHERE category_name = $1"
	err := r.db.QueryRow(query, categoryName).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec("UPDATE categories SET category_name = $1 WHERE category_id = $2", category.Name, category.ID)
	return err
}

func (r *CategoryRepository) Delete(categoryID int) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE category_id = $1", categoryID)
	return err
}
