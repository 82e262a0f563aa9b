package infrastructure

import "database/sql"

// EnsureSchema creates the tables on first startup. Deleting a debt nulls
// the reference on its transactions instead of cascading; account, user and
// category references on transactions are intentionally unconstrained so
// historical rows survive entity deletion (dangling ids are an accepted
// limitation of this core).
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users (user_id),
			account_name TEXT NOT NULL,
			account_balance NUMERIC(14, 2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id SERIAL PRIMARY KEY,
			category_name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS debts (
			debt_id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users (user_id),
			debt_name TEXT NOT NULL,
			total_owed NUMERIC(14, 2) NOT NULL,
			amount_paid NUMERIC(14, 2) NOT NULL DEFAULT 0,
			monthly_payment NUMERIC(14, 2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id SERIAL PRIMARY KEY,
			account_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			category_id INTEGER NOT NULL,
			debt_id INTEGER REFERENCES debts (debt_id) ON DELETE SET NULL,
			amount NUMERIC(14, 2) NOT NULL,
			description TEXT NOT NULL,
			type TEXT NOT NULL,
			recurrence TEXT,
			transaction_date DATE NOT NULL
		)`,
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}
