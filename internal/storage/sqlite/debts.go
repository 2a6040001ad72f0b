package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Guilherme-dev15/finance-app/internal/models"
)

const debtColumns = `id, user_id, description, original_amount, current_amount,
	interest_rate, remaining_installments, due_date, status, debt_type, created_at`

// CreateDebt persists a new debt, generating ID and CreatedAt when unset.
func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *models.Debt) error {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if debt.CreatedAt == 0 {
		debt.CreatedAt = time.Now().Unix()
	}
	if debt.Status == "" {
		debt.Status = models.StatusPending
	}
	if debt.DebtType == "" {
		debt.DebtType = models.TypeLoan
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO debts (id, user_id, description, original_amount, current_amount,
			interest_rate, remaining_installments, due_date, status, debt_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.ID, debt.UserID, debt.Description, debt.OriginalAmount, debt.CurrentAmount,
		debt.InterestRate, debt.RemainingInstallments, debt.DueDate.Unix(),
		string(debt.Status), string(debt.DebtType), debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

// GetDebt retrieves one debt scoped by owner.
// Returns (nil, nil) when no record matches (id, userID).
func (s *SQLiteStore) GetDebt(ctx context.Context, userID, debtID string) (*models.Debt, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE id = ? AND user_id = ?",
		debtID, userID,
	)
	debt, err := scanDebt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return debt, nil
}

// ListDebts returns all debts owned by userID, optionally filtered by status.
func (s *SQLiteStore) ListDebts(ctx context.Context, userID string, status models.DebtStatus) ([]*models.Debt, error) {
	query := "SELECT " + debtColumns + " FROM debts WHERE user_id = ?"
	args := []any{userID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at"

	return s.queryDebts(ctx, query, args...)
}

// ListDebtsDueBetween returns the user's debts with due_date in [start, end].
func (s *SQLiteStore) ListDebtsDueBetween(ctx context.Context, userID string, start, end time.Time) ([]*models.Debt, error) {
	return s.queryDebts(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE user_id = ? AND due_date >= ? AND due_date <= ? ORDER BY due_date",
		userID, start.Unix(), end.Unix(),
	)
}

// UpdateDebt replaces the mutable fields in a single update scoped to
// (id, user_id). OriginalAmount is intentionally replaceable here: edit is
// a full rewrite of the record within the owner scope. Returns nil when no
// record matched.
func (s *SQLiteStore) UpdateDebt(ctx context.Context, debt *models.Debt) (*models.Debt, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE debts
		SET description = ?, original_amount = ?, current_amount = ?,
			interest_rate = ?, remaining_installments = ?, due_date = ?,
			status = ?, debt_type = ?
		WHERE id = ? AND user_id = ?`,
		debt.Description, debt.OriginalAmount, debt.CurrentAmount,
		debt.InterestRate, debt.RemainingInstallments, debt.DueDate.Unix(),
		string(debt.Status), string(debt.DebtType),
		debt.ID, debt.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return s.GetDebt(ctx, debt.UserID, debt.ID)
}

// ApplyPayment subtracts amount from the balance inside a single UPDATE so
// concurrent payments serialize at the database instead of racing on a
// read-then-write. The balance clamps at 0 and the status flips to PAID
// when it clears. Returns nil when no record matched.
func (s *SQLiteStore) ApplyPayment(ctx context.Context, userID, debtID string, amount float64) (*models.Debt, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE debts
		SET status = CASE WHEN current_amount - ? <= 0 THEN 'PAID' ELSE status END,
			current_amount = MAX(current_amount - ?, 0)
		WHERE id = ? AND user_id = ?`,
		amount, amount, debtID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to apply payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return s.GetDebt(ctx, userID, debtID)
}

// DeleteDebt removes the debt scoped by owner. Returns false when absent.
func (s *SQLiteStore) DeleteDebt(ctx context.Context, userID, debtID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM debts WHERE id = ? AND user_id = ?",
		debtID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete debt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) queryDebts(ctx context.Context, query string, args ...any) ([]*models.Debt, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return debts, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDebt(sc scanner) (*models.Debt, error) {
	var (
		debt             models.Debt
		dueDate          int64
		status, debtType string
	)
	err := sc.Scan(
		&debt.ID, &debt.UserID, &debt.Description, &debt.OriginalAmount,
		&debt.CurrentAmount, &debt.InterestRate, &debt.RemainingInstallments,
		&dueDate, &status, &debtType, &debt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	debt.DueDate = time.Unix(dueDate, 0).UTC()
	debt.Status = models.DebtStatus(status)
	debt.DebtType = models.DebtType(debtType)
	return &debt, nil
}
