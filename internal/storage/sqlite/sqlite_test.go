package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Guilherme-dev15/finance-app/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "finance-app-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser(email, "$2a$10$notarealhash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func dueOn(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSQLiteStore_Debts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "owner@example.com")
	other := createTestUser(t, store, "other@example.com")

	t.Run("CreateDebt generates ID and defaults", func(t *testing.T) {
		debt := &models.Debt{
			UserID:                user.ID,
			Description:           "Car loan",
			OriginalAmount:        12000,
			CurrentAmount:         9000,
			InterestRate:          7.5,
			RemainingInstallments: 24,
			DueDate:               dueOn(2026, time.December, 31),
		}

		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}
		if debt.ID == "" {
			t.Error("Expected debt ID to be generated")
		}
		if debt.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if debt.Status != models.StatusPending {
			t.Errorf("Status = %s, want PENDING default", debt.Status)
		}
		if debt.DebtType != models.TypeLoan {
			t.Errorf("DebtType = %s, want LOAN default", debt.DebtType)
		}
	})

	t.Run("GetDebt round-trips all fields", func(t *testing.T) {
		original := &models.Debt{
			UserID:                user.ID,
			Description:           "Credit card",
			OriginalAmount:        3000,
			CurrentAmount:         1500,
			InterestRate:          14.9,
			RemainingInstallments: 6,
			DueDate:               dueOn(2026, time.March, 15),
			Status:                models.StatusNegotiated,
			DebtType:              models.TypeCreditCard,
		}
		if err := store.CreateDebt(ctx, original); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}

		got, err := store.GetDebt(ctx, user.ID, original.ID)
		if err != nil {
			t.Fatalf("GetDebt failed: %v", err)
		}
		if got == nil {
			t.Fatal("GetDebt returned nil for existing debt")
		}
		if got.Description != original.Description {
			t.Errorf("Description = %s, want %s", got.Description, original.Description)
		}
		if got.CurrentAmount != original.CurrentAmount {
			t.Errorf("CurrentAmount = %f, want %f", got.CurrentAmount, original.CurrentAmount)
		}
		if !got.DueDate.Equal(original.DueDate) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, original.DueDate)
		}
		if got.Status != models.StatusNegotiated || got.DebtType != models.TypeCreditCard {
			t.Errorf("enums not round-tripped: status=%s type=%s", got.Status, got.DebtType)
		}
	})

	t.Run("GetDebt is scoped by owner", func(t *testing.T) {
		debt := &models.Debt{
			UserID:                user.ID,
			Description:           "Private",
			OriginalAmount:        100,
			CurrentAmount:         100,
			RemainingInstallments: 1,
			DueDate:               dueOn(2026, time.June, 1),
		}
		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}

		got, err := store.GetDebt(ctx, other.ID, debt.ID)
		if err != nil {
			t.Fatalf("GetDebt failed: %v", err)
		}
		if got != nil {
			t.Error("cross-owner lookup returned a record, want nil")
		}
	})

	t.Run("ListDebts filters by status", func(t *testing.T) {
		lister := createTestUser(t, store, "lister@example.com")
		for _, status := range []models.DebtStatus{models.StatusPending, models.StatusPaid, models.StatusPending} {
			debt := &models.Debt{
				UserID:                lister.ID,
				Description:           "d",
				OriginalAmount:        100,
				CurrentAmount:         50,
				RemainingInstallments: 2,
				DueDate:               dueOn(2026, time.May, 10),
				Status:                status,
			}
			if err := store.CreateDebt(ctx, debt); err != nil {
				t.Fatalf("CreateDebt failed: %v", err)
			}
		}

		all, err := store.ListDebts(ctx, lister.ID, "")
		if err != nil {
			t.Fatalf("ListDebts failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("unfiltered list returned %d debts, want 3", len(all))
		}

		pending, err := store.ListDebts(ctx, lister.ID, models.StatusPending)
		if err != nil {
			t.Fatalf("ListDebts failed: %v", err)
		}
		if len(pending) != 2 {
			t.Errorf("PENDING filter returned %d debts, want 2", len(pending))
		}
	})

	t.Run("ListDebtsDueBetween is inclusive", func(t *testing.T) {
		ranger := createTestUser(t, store, "ranger@example.com")
		dates := []time.Time{
			dueOn(2026, time.January, 1),
			dueOn(2026, time.January, 31),
			dueOn(2026, time.February, 1),
		}
		for _, d := range dates {
			debt := &models.Debt{
				UserID:                ranger.ID,
				Description:           "d",
				OriginalAmount:        100,
				CurrentAmount:         100,
				RemainingInstallments: 1,
				DueDate:               d,
			}
			if err := store.CreateDebt(ctx, debt); err != nil {
				t.Fatalf("CreateDebt failed: %v", err)
			}
		}

		got, err := store.ListDebtsDueBetween(ctx, ranger.ID,
			dueOn(2026, time.January, 1), dueOn(2026, time.January, 31))
		if err != nil {
			t.Fatalf("ListDebtsDueBetween failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("range query returned %d debts, want 2 (boundaries included)", len(got))
		}
	})

	t.Run("UpdateDebt respects owner scope", func(t *testing.T) {
		debt := &models.Debt{
			UserID:                user.ID,
			Description:           "Before",
			OriginalAmount:        500,
			CurrentAmount:         500,
			RemainingInstallments: 5,
			DueDate:               dueOn(2026, time.April, 1),
		}
		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}

		debt.Description = "After"
		debt.CurrentAmount = 400
		updated, err := store.UpdateDebt(ctx, debt)
		if err != nil {
			t.Fatalf("UpdateDebt failed: %v", err)
		}
		if updated == nil || updated.Description != "After" || updated.CurrentAmount != 400 {
			t.Errorf("update not applied: %+v", updated)
		}

		stolen := *debt
		stolen.UserID = other.ID
		res, err := store.UpdateDebt(ctx, &stolen)
		if err != nil {
			t.Fatalf("UpdateDebt failed: %v", err)
		}
		if res != nil {
			t.Error("cross-owner update matched a record, want nil")
		}
	})

	t.Run("ApplyPayment clamps at zero and marks PAID", func(t *testing.T) {
		debt := &models.Debt{
			UserID:                user.ID,
			Description:           "Almost done",
			OriginalAmount:        1000,
			CurrentAmount:         300,
			RemainingInstallments: 3,
			DueDate:               dueOn(2026, time.July, 1),
		}
		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}

		partial, err := store.ApplyPayment(ctx, user.ID, debt.ID, 100)
		if err != nil {
			t.Fatalf("ApplyPayment failed: %v", err)
		}
		if partial.CurrentAmount != 200 || partial.Status != models.StatusPending {
			t.Errorf("after partial payment: amount=%f status=%s, want 200/PENDING",
				partial.CurrentAmount, partial.Status)
		}

		final, err := store.ApplyPayment(ctx, user.ID, debt.ID, 500)
		if err != nil {
			t.Fatalf("ApplyPayment failed: %v", err)
		}
		if final.CurrentAmount != 0 {
			t.Errorf("overpayment balance = %f, want clamped 0", final.CurrentAmount)
		}
		if final.Status != models.StatusPaid {
			t.Errorf("status = %s, want PAID", final.Status)
		}
	})

	t.Run("DeleteDebt is scoped by owner", func(t *testing.T) {
		debt := &models.Debt{
			UserID:                user.ID,
			Description:           "Doomed",
			OriginalAmount:        100,
			CurrentAmount:         100,
			RemainingInstallments: 1,
			DueDate:               dueOn(2026, time.August, 1),
		}
		if err := store.CreateDebt(ctx, debt); err != nil {
			t.Fatalf("CreateDebt failed: %v", err)
		}

		if ok, err := store.DeleteDebt(ctx, other.ID, debt.ID); err != nil || ok {
			t.Errorf("cross-owner delete: ok=%v err=%v, want false/nil", ok, err)
		}
		if ok, err := store.DeleteDebt(ctx, user.ID, debt.ID); err != nil || !ok {
			t.Errorf("owner delete: ok=%v err=%v, want true/nil", ok, err)
		}
		if ok, _ := store.DeleteDebt(ctx, user.ID, debt.ID); ok {
			t.Error("second delete reported success for absent record")
		}
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("dup@example.com", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("GetUserByEmail finds existing user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "dup@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Errorf("got %+v, want user %s", got, user.ID)
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("dup@example.com", "hash2")); err == nil {
			t.Error("expected unique constraint violation, got nil")
		}
	})
}
