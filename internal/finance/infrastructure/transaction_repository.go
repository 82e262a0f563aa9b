package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

const transactionColumns = `transaction_id, account_id, user_id, category_id, debt_id,
	amount, description, type, recurrence, transaction_date`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `INSERT INTO transactions
		(account_id, user_id, category_id, debt_id, amount, description, type, recurrence, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING transaction_id`
	return r.db.QueryRow(query,
		transaction.AccountID,
		transaction.UserID,
		transaction.CategoryID,
		nullableInt(transaction.DebtID),
		transaction.Amount,
		transaction.Description,
		transaction.Type,
		nullableString(transaction.Recurrence),
		transaction.TransactionDate,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindAll() ([]domain.Transaction, error) {
	return r.queryTransactions("SELECT " + transactionColumns + " FROM transactions ORDER BY transaction_id")
}

func (r *TransactionRepository) FindByID(transactionID int) (*domain.Transaction, error) {
	row := r.db.QueryRow("SELECT "+transactionColumns+" FROM transactions WHERE transaction_id = $1", transactionID)
	transaction, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (r *TransactionRepository) FindByAccountID(accountID int) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE account_id = $1 ORDER BY transaction_id", accountID)
}

func (r *TransactionRepository) FindByCategoryID(categoryID int) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE category_id = $1 ORDER BY transaction_id", categoryID)
}

func (r *TransactionRepository) FindByDebtID(debtID int) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE debt_id = $1 ORDER BY transaction_id", debtID)
}

func (r *TransactionRepository) FindByUserID(userID int) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = $1 ORDER BY transaction_id", userID)
}

func (r *TransactionRepository) FindByDate(date domain.Date) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE transaction_date = $1 ORDER BY transaction_id", date)
}

func (r *TransactionRepository) FindByType(transactionType string) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE type = $1 ORDER BY transaction_id", transactionType)
}

func (r *TransactionRepository) FindByRecurrence(recurrence string) ([]domain.Transaction, error) {
	return r.queryTransactions(
		"SELECT "+transactionColumns+" FROM transactions WHERE recurrence = $1 ORDER BY transaction_id", recurrence)
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	query := `UPDATE transactions SET account_id = $1, user_id = $2, category_id = $3, debt_id = $4,
		amount = $5, description = $6, type = $7, recurrence = $8, transaction_date = $9
		WHERE transaction_id = $10`
	_, err := r.db.Exec(query,
		transaction.AccountID,
		transaction.UserID,
		transaction.CategoryID,
		nullableInt(transaction.DebtID),
		transaction.Amount,
		transaction.Description,
		transaction.Type,
		nullableString(transaction.Recurrence),
		transaction.TransactionDate,
		transaction.ID,
	)
	return err
}

func (r *TransactionRepository) Delete(transactionID int) error {
	_, err := r.db.Exec("DELETE FROM transactions WHERE transaction_id = $1", transactionID)
	return err
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var debtID sql.NullInt64
	var recurrence sql.NullString
	err := row.Scan(
		&transaction.ID,
		&transaction.AccountID,
		&transaction.UserID,
		&transaction.CategoryID,
		&debtID,
		&transaction.Amount,
		&transaction.Description,
		&transaction.Type,
		&recurrence,
		&transaction.TransactionDate,
	)
	if err != nil {
		return nil, err
	}
	if debtID.Valid {
		id := int(debtID.Int64)
		transaction.DebtID = &id
	}
	if recurrence.Valid {
		transaction.Recurrence = &recurrence.String
	}
	return &transaction, nil
}

func nullableInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
