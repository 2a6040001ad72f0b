package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Guilherme-dev15/finance-app/internal/models"
	"github.com/Guilherme-dev15/finance-app/internal/storage"
)

// mockStore is an in-memory storage.Store for service tests.
// ForceError makes every call fail, for infrastructure-error paths.
type mockStore struct {
	debts      map[string]*models.Debt
	users      map[string]*models.User
	ForceError bool
}

var _ storage.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{
		debts: make(map[string]*models.Debt),
		users: make(map[string]*models.User),
	}
}

func (m *mockStore) err() error {
	if m.ForceError {
		return fmt.Errorf("store unavailable")
	}
	return nil
}

func (m *mockStore) CreateDebt(_ context.Context, debt *models.Debt) error {
	if err := m.err(); err != nil {
		return err
	}
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
	copy := *debt
	m.debts[debt.ID] = &copy
	return nil
}

func (m *mockStore) GetDebt(_ context.Context, userID, debtID string) (*models.Debt, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	debt, ok := m.debts[debtID]
	if !ok || debt.UserID != userID {
		return nil, nil
	}
	copy := *debt
	return &copy, nil
}

func (m *mockStore) ListDebts(_ context.Context, userID string, status models.DebtStatus) ([]*models.Debt, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	var out []*models.Debt
	for _, debt := range m.debts {
		if debt.UserID != userID {
			continue
		}
		if status != "" && debt.Status != status {
			continue
		}
		copy := *debt
		out = append(out, &copy)
	}
	return out, nil
}

func (m *mockStore) ListDebtsDueBetween(_ context.Context, userID string, start, end time.Time) ([]*models.Debt, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	var out []*models.Debt
	for _, debt := range m.debts {
		if debt.UserID != userID {
			continue
		}
		if debt.DueDate.Before(start) || debt.DueDate.After(end) {
			continue
		}
		copy := *debt
		out = append(out, &copy)
	}
	return out, nil
}

func (m *mockStore) UpdateDebt(_ context.Context, debt *models.Debt) (*models.Debt, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	existing, ok := m.debts[debt.ID]
	if !ok || existing.UserID != debt.UserID {
		return nil, nil
	}
	updated := *debt
	updated.CreatedAt = existing.CreatedAt
	m.debts[debt.ID] = &updated
	copy := updated
	return &copy, nil
}

func (m *mockStore) ApplyPayment(_ context.Context, userID, debtID string, amount float64) (*models.Debt, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	debt, ok := m.debts[debtID]
	if !ok || debt.UserID != userID {
		return nil, nil
	}
	debt.CurrentAmount -= amount
	if debt.CurrentAmount <= 0 {
		debt.CurrentAmount = 0
		debt.Status = models.StatusPaid
	}
	copy := *debt
	return &copy, nil
}

func (m *mockStore) DeleteDebt(_ context.Context, userID, debtID string) (bool, error) {
	if err := m.err(); err != nil {
		return false, err
	}
	debt, ok := m.debts[debtID]
	if !ok || debt.UserID != userID {
		return false, nil
	}
	delete(m.debts, debtID)
	return true, nil
}

func (m *mockStore) CreateUser(_ context.Context, user *models.User) error {
	if err := m.err(); err != nil {
		return err
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	return m.users[id], nil
}

func (m *mockStore) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
