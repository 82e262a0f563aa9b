package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(user *domain.User) error {
	return r.db.QueryRow("INSERT INTO users DEFAULT VALUES RETURNING user_id").Scan(&user.ID)
}

func (r *UserRepository) FindByID(userID int) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow("SELECT user_id FROM users WHERE user_id = $1", userID).Scan(&user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
