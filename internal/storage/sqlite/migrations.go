package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Due dates are stored as Unix timestamps with date semantics (midnight UTC).
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS debts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    description TEXT NOT NULL,
    original_amount REAL NOT NULL CHECK (original_amount >= 0),
    current_amount REAL NOT NULL CHECK (current_amount >= 0),
    interest_rate REAL NOT NULL DEFAULT 0 CHECK (interest_rate >= 0),
    remaining_installments INTEGER NOT NULL CHECK (remaining_installments >= 1),
    due_date INTEGER NOT NULL,
    status TEXT NOT NULL DEFAULT 'PENDING',
    debt_type TEXT NOT NULL DEFAULT 'LOAN',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_debts_user_id ON debts(user_id);
CREATE INDEX IF NOT EXISTS idx_debts_user_due_date ON debts(user_id, due_date);
CREATE INDEX IF NOT EXISTS idx_debts_user_status ON debts(user_id, status);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
