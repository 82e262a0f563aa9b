package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Save(account *domain.Account) error {
	query := `INSERT INTO accounts (user_id, account_name, account_balance)
		VALUES ($1, $2, $3) RETURNING account_id`
	return r.db.QueryRow(query, account.UserID, account.Name, account.Balance).Scan(&account.ID)
}

func (r *AccountRepository) FindAll() ([]domain.Account, error) {
	return r.queryAccounts("SELECT account_id, user_id, account_name, account_balance FROM accounts ORDER BY account_id")
}

func (r *AccountRepository) FindByID(accountID int) (*domain.Account, error) {
	var account domain.Account
	query := "SELECT account_id, user_id, account_name, account_balance FROM accounts WHERE account_id = $1"
	err := r.db.QueryRow(query, accountID).Scan(&account.ID, &account.UserID, &account.Name, &account.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByUserID(userID int) ([]domain.Account, error) {
	return r.queryAccounts(
		"SELECT account_id, user_id, account_name, account_balance FROM accounts WHERE user_id = $1 ORDER BY account_id",
		userID)
}

func (r *AccountRepository) FindByName(accountName string) (*domain.Account, error) {
	var account domain.Account
	query := "SELECT account_id, user_id, account_name, account_balance FROM accounts WHERE account_name = $1"
	err := r.db.QueryRow(query, accountName).Scan(&account.ID, &account.UserID, &account.Name, &account.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Update(account domain.Account) error {
	query := `UPDATE accounts SET user_id = $1, account_name = $2, account_balance = $3
		WHERE account_id = $4`
	_, err := r.db.Exec(query, account.UserID, account.Name, account.Balance, account.ID)
	return err
}

func (r *AccountRepository) Delete(accountID int) error {
	_, err := r.db.Exec("DELETE FROM accounts WHERE account_id = $1", accountID)
	return err
}

func (r *AccountRepository) queryAccounts(query string, args ...interface{}) ([]domain.Account, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.UserID, &account.Name, &account.Balance); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}
