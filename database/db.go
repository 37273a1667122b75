package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Foreign keys stay unenforced: deleting a unit must leave its dependent
	// tenants, payments and obligations in place rather than fail.

	return &DB{db}, nil
}

// Migrate creates the schema. Safe to call repeatedly; tables are created in
// dependency order (units before everything that references them, expense
// categories before expenses).
func (db *DB) Migrate() error {
	queries := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			name TEXT,
			picture TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_login_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Units table; parent_id self-reference forms the hierarchy
		`CREATE TABLE IF NOT EXISTS units (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_id INTEGER,
			user_id TEXT NOT NULL,
			unit_name TEXT NOT NULL,
			unit_type TEXT NOT NULL,
			description TEXT,
			address TEXT,
			is_rentable INTEGER DEFAULT 0,
			is_subleased INTEGER DEFAULT 0,
			rent_amount REAL,
			status TEXT DEFAULT 'vacant',
			floor_number INTEGER,
			area_sqm REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (parent_id) REFERENCES units(id)
		)`,

		// Unit obligations table
		`CREATE TABLE IF NOT EXISTS unit_obligations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL,
			user_id TEXT NOT NULL,
			obligation_type TEXT NOT NULL,
			payee_name TEXT NOT NULL,
			payee_phone TEXT,
			amount REAL NOT NULL,
			frequency TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT,
			next_due_date TEXT NOT NULL,
			auto_reminder INTEGER DEFAULT 1,
			status TEXT DEFAULT 'active',
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (unit_id) REFERENCES units(id)
		)`,

		// Tenants table; owner scoping goes through the unit
		`CREATE TABLE IF NOT EXISTS tenants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL,
			full_name TEXT NOT NULL,
			id_type INTEGER DEFAULT 0,
			national_id TEXT,
			phone TEXT,
			start_date TEXT NOT NULL,
			end_date TEXT,
			rent_amount REAL NOT NULL,
			deposit_amount REAL,
			status TEXT DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (unit_id) REFERENCES units(id)
		)`,

		// Payments table, append-only ledger
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL,
			payment_amount REAL NOT NULL,
			payment_date TEXT NOT NULL,
			payment_type TEXT,
			payment_method TEXT,
			payment_direction TEXT NOT NULL,
			tenant_id INTEGER,
			obligation_id INTEGER,
			payer_name TEXT,
			payee_name TEXT,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (unit_id) REFERENCES units(id),
			FOREIGN KEY (tenant_id) REFERENCES tenants(id),
			FOREIGN KEY (obligation_id) REFERENCES unit_obligations(id)
		)`,

		// Expense categories are global, not per user
		`CREATE TABLE IF NOT EXISTS expense_categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_name TEXT NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Expenses table
		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expense_category_id INTEGER NOT NULL,
			user_id TEXT NOT NULL,
			unit_id INTEGER NOT NULL,
			expense_name TEXT NOT NULL,
			expense_amount REAL NOT NULL,
			expense_date TEXT NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (expense_category_id) REFERENCES expense_categories(id),
			FOREIGN KEY (unit_id) REFERENCES units(id)
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_units_user ON units(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_units_parent ON units(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_obligations_user_due ON unit_obligations(user_id, next_due_date)`,
		`CREATE INDEX IF NOT EXISTS idx_tenants_unit ON tenants(unit_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_unit ON payments(unit_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, expense_date)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
