package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

const debtColumns = "debt_id, user_id, debt_name, total_owed, amount_paid, monthly_payment"

type DebtRepository struct {
	db *sql.DB
}

func NewDebtRepository(db *sql.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

func (r *DebtRepository) Save(debt *domain.Debt) error {
	query := `INSERT INTO debts (user_id, debt_name, total_owed, amount_paid, monthly_payment)
		VALUES ($1, $2, $3, $4, $5) RETURNING debt_id`
	return r.db.QueryRow(query, debt.UserID, debt.Name, debt.TotalOwed, debt.AmountPaid, debt.MonthlyPayment).Scan(&debt.ID)
}

func (r *DebtRepository) FindAll() ([]domain.Debt, error) {
	return r.queryDebts("SELECT " + debtColumns + " FROM debts ORDER BY debt_id")
}

func (r *DebtRepository) FindByID(debtID int) (*domain.Debt, error) {
	var debt domain.Debt
	err := r.db.QueryRow("SELECT "+debtColumns+" FROM debts WHERE debt_id = $1", debtID).
		Scan(&debt.ID, &debt.UserID, &debt.Name, &debt.TotalOwed, &debt.AmountPaid, &debt.MonthlyPayment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *DebtRepository) FindByUserID(userID int) ([]domain.Debt, error) {
	return r.queryDebts("SELECT "+debtColumns+" FROM debts WHERE user_id = $1 ORDER BY debt_id", userID)
}

func (r *DebtRepository) Update(debt domain.Debt) error {
	query := `UPDATE debts SET debt_name = $1, total_owed = $2, amount_paid = $3, monthly_payment = $4
		WHERE debt_id = $5`
	_, err := r.db.Exec(query, debt.Name, debt.TotalOwed, debt.AmountPaid, debt.MonthlyPayment, debt.ID)
	return err
}

// UpdateWithLock runs the read-check-write of a payment inside one database
// transaction holding the row lock, so two concurrent payments against the
// same debt serialize instead of both validating against a stale amount.
func (r *DebtRepository) UpdateWithLock(debtID int, mutate func(*domain.Debt) error) (*domain.Debt, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var debt domain.Debt
	err = tx.QueryRow("SELECT "+debtColumns+" FROM debts WHERE debt_id = $1 FOR UPDATE", debtID).
		Scan(&debt.ID, &debt.UserID, &debt.Name, &debt.TotalOwed, &debt.AmountPaid, &debt.MonthlyPayment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := mutate(&debt); err != nil {
		return nil, err
	}

	query := `UPDATE debts SET debt_name = $1, total_owed = $2, amount_paid = $3, monthly_payment = $4
		WHERE debt_id = $5`
	if _, err := tx.Exec(query, debt.Name, debt.TotalOwed, debt.AmountPaid, debt.MonthlyPayment, debt.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *DebtRepository) Delete(debtID int) error {
	_, err := r.db.Exec("DELETE FROM debts WHERE debt_id = $1", debtID)
	return err
}

func (r *DebtRepository) queryDebts(query string, args ...interface{}) ([]domain.Debt, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		var debt domain.Debt
		if err := rows.Scan(&debt.ID, &debt.UserID, &debt.Name, &debt.TotalOwed, &debt.AmountPaid, &debt.MonthlyPayment); err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, rows.Err()
}
