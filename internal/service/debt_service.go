package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Guilherme-dev15/finance-app/internal/cache"
	"github.com/Guilherme-dev15/finance-app/internal/finance"
	"github.com/Guilherme-dev15/finance-app/internal/models"
	"github.com/Guilherme-dev15/finance-app/internal/storage"
)

// evolutionCacheTTL bounds how long a memoized growth curve is kept.
// Keys embed every input, so entries can go stale but never wrong.
const evolutionCacheTTL = time.Hour

// DebtService orchestrates the debt lifecycle: CRUD, payments, simulations,
// and reports. It owns no math — projections and simulations delegate to the
// finance package — and no state beyond the injected store and cache.
type DebtService struct {
	store  storage.Store
	cache  cache.Cache
	logger *slog.Logger
}

// NewDebtService creates a DebtService. cache may be nil to disable
// simulation memoization.
func NewDebtService(store storage.Store, c cache.Cache, logger *slog.Logger) *DebtService {
	return &DebtService{store: store, cache: c, logger: logger}
}

// DebtInput is the payload for creating or editing a debt.
// Status defaults to PENDING and DebtType to LOAN when empty.
type DebtInput struct {
	Description           string            `json:"description"`
	OriginalAmount        float64           `json:"originalAmount"`
	CurrentAmount         float64           `json:"currentAmount"`
	InterestRate          float64           `json:"interestRate"`
	RemainingInstallments int               `json:"remainingInstallments"`
	DueDate               time.Time         `json:"dueDate"`
	Status                models.DebtStatus `json:"status,omitempty"`
	DebtType              models.DebtType   `json:"debtType,omitempty"`
}

func validateDebtInput(in DebtInput) error {
	if in.OriginalAmount <= 0 {
		return ErrInvalidAmount
	}
	if in.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidDebt)
	}
	if in.CurrentAmount < 0 {
		return fmt.Errorf("%w: current amount cannot be negative", ErrInvalidDebt)
	}
	if in.InterestRate < 0 {
		return fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidDebt)
	}
	if in.RemainingInstallments < 1 {
		return fmt.Errorf("%w: remaining installments must be at least 1", ErrInvalidDebt)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDebt, in.Status)
	}
	if in.DebtType != "" && !in.DebtType.Valid() {
		return fmt.Errorf("%w: unknown debt type %q", ErrInvalidDebt, in.DebtType)
	}
	return nil
}

// CreateDebt validates and persists a new debt owned by userID.
func (s *DebtService) CreateDebt(ctx context.Context, userID string, in DebtInput) (*models.Debt, error) {
	if err := validateDebtInput(in); err != nil {
		return nil, err
	}

	debt := &models.Debt{
		UserID:                userID,
		Description:           in.Description,
		OriginalAmount:        in.OriginalAmount,
		CurrentAmount:         in.CurrentAmount,
		InterestRate:          in.InterestRate,
		RemainingInstallments: in.RemainingInstallments,
		DueDate:               in.DueDate,
		Status:                in.Status,
		DebtType:              in.DebtType,
	}
	if err := s.store.CreateDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	s.logger.Info("Debt created", "user_id", userID, "debt_id", debt.ID, "amount", debt.OriginalAmount)
	return debt, nil
}

// ListDebts returns all debts owned by userID, optionally filtered by exact
// status match. Debts past their due date and still unpaid are logged as a
// notification side channel; the result is unchanged.
func (s *DebtService) ListDebts(ctx context.Context, userID string, status models.DebtStatus) ([]*models.Debt, error) {
	debts, err := s.store.ListDebts(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	now := time.Now()
	for _, debt := range debts {
		if debt.Overdue(now) {
			s.logger.Warn("Debt is overdue",
				"user_id", userID, "debt_id", debt.ID, "due_date", debt.DueDate)
		}
	}
	return debts, nil
}

// GetDebtByID returns the debt if owned by userID, ErrDebtNotFound otherwise.
func (s *DebtService) GetDebtByID(ctx context.Context, userID, debtID string) (*models.Debt, error) {
	debt, err := s.store.GetDebt(ctx, userID, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}
	return debt, nil
}

// EditDebt re-validates and replaces all mutable fields in one conditional
// update scoped to (debtID, userID).
func (s *DebtService) EditDebt(ctx context.Context, userID, debtID string, in DebtInput) (*models.Debt, error) {
	if err := validateDebtInput(in); err != nil {
		return nil, err
	}

	debt := &models.Debt{
		ID:                    debtID,
		UserID:                userID,
		Description:           in.Description,
		OriginalAmount:        in.OriginalAmount,
		CurrentAmount:         in.CurrentAmount,
		InterestRate:          in.InterestRate,
		RemainingInstallments: in.RemainingInstallments,
		DueDate:               in.DueDate,
		Status:                in.Status,
		DebtType:              in.DebtType,
	}
	if debt.Status == "" {
		debt.Status = models.StatusPending
	}
	if debt.DebtType == "" {
		debt.DebtType = models.TypeLoan
	}

	updated, err := s.store.UpdateDebt(ctx, debt)
	if err != nil {
		return nil, fmt.Errorf("failed to edit debt: %w", err)
	}
	if updated == nil {
		return nil, ErrDebtNotFound
	}
	return updated, nil
}

// DeleteDebt removes the record scoped to (debtID, userID). Hard delete.
func (s *DebtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	ok, err := s.store.DeleteDebt(ctx, userID, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	if !ok {
		return ErrDebtNotFound
	}
	s.logger.Info("Debt deleted", "user_id", userID, "debt_id", debtID)
	return nil
}

// PayDebt subtracts paymentAmount from the live balance. The decrement is
// atomic in the store, clamping at 0 and marking the debt PAID when the
// balance clears.
func (s *DebtService) PayDebt(ctx context.Context, userID, debtID string, paymentAmount float64) (*models.Debt, error) {
	if paymentAmount <= 0 {
		return nil, finance.ErrInvalidPayment
	}

	debt, err := s.store.ApplyPayment(ctx, userID, debtID, paymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to apply payment: %w", err)
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}

	s.logger.Info("Payment applied",
		"user_id", userID, "debt_id", debtID,
		"payment", paymentAmount, "remaining", debt.CurrentAmount, "status", debt.Status)
	return debt, nil
}

// InterestUpdateInput is the payload for an interest recalculation.
// A zero InterestRate and empty DebtType fall back to the documented
// defaults (0 and LOAN).
type InterestUpdateInput struct {
	InterestRate float64           `json:"interestRate"`
	DebtType     models.DebtType   `json:"debtType,omitempty"`
	Status       models.DebtStatus `json:"status,omitempty"`
}

// UpdateDebtInterest recomputes the outstanding balance with the type
// formula selected by in.DebtType (default LOAN), the supplied rate
// (default 0), and the debt's remaining installments as the period count.
// Status is overwritten only when supplied.
func (s *DebtService) UpdateDebtInterest(ctx context.Context, userID, debtID string, in InterestUpdateInput) (*models.Debt, error) {
	debt, err := s.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	debtType := in.DebtType
	if debtType == "" {
		debtType = models.TypeLoan
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDebt, in.Status)
	}

	total, err := finance.ProjectByType(debtType, debt.CurrentAmount, in.InterestRate, debt.RemainingInstallments)
	if err != nil {
		return nil, err
	}

	debt.CurrentAmount = total
	debt.InterestRate = in.InterestRate
	debt.DebtType = debtType
	if in.Status != "" {
		debt.Status = in.Status
	}

	updated, err := s.store.UpdateDebt(ctx, debt)
	if err != nil {
		return nil, fmt.Errorf("failed to update debt interest: %w", err)
	}
	if updated == nil {
		return nil, ErrDebtNotFound
	}

	s.logger.Info("Debt interest updated",
		"user_id", userID, "debt_id", debtID, "debt_type", debtType, "new_amount", total)
	return updated, nil
}

// SimulatePayment runs a what-if payoff simulation against the debt's
// current balance and rate. Read-only: stored state is never touched.
func (s *DebtService) SimulatePayment(ctx context.Context, userID, debtID string, paymentAmount float64) (models.SimulationResult, error) {
	debt, err := s.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return models.SimulationResult{}, err
	}
	return finance.Simulate(debt.CurrentAmount, debt.InterestRate, paymentAmount)
}

// SimulatePaymentProjection is SimulatePayment with the rate overridden,
// letting callers explore hypothetical terms. Read-only.
func (s *DebtService) SimulatePaymentProjection(ctx context.Context, userID, debtID string, newPaymentAmount, newInterestRate float64) (models.SimulationResult, error) {
	debt, err := s.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return models.SimulationResult{}, err
	}
	return finance.Simulate(debt.CurrentAmount, newInterestRate, newPaymentAmount)
}

// GetDebtEvolution returns the pure growth curve of the debt's balance over
// its remaining installments. Results are memoized in the cache under a key
// derived from all curve inputs.
func (s *DebtService) GetDebtEvolution(ctx context.Context, userID, debtID string) ([]models.EvolutionPoint, error) {
	debt, err := s.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("evolution:%s:%.6f:%.6f:%d",
		debt.ID, debt.CurrentAmount, debt.InterestRate, debt.RemainingInstallments)

	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var points []models.EvolutionPoint
			if err := json.Unmarshal([]byte(raw), &points); err == nil {
				return points, nil
			}
			// Undecodable entry: fall through and recompute.
		}
	}

	points := finance.Evolve(debt.CurrentAmount, debt.InterestRate, debt.RemainingInstallments)

	if s.cache != nil {
		if raw, err := json.Marshal(points); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), evolutionCacheTTL); err != nil {
				s.logger.Warn("Failed to cache evolution", "debt_id", debt.ID, "error", err)
			}
		}
	}
	return points, nil
}

// GenerateDebtReport aggregates the user's debts with a due date inside
// [startDate, endDate] inclusive. Totals are summed with decimal arithmetic
// so many small balances don't accumulate float drift. An empty match is a
// valid all-zero report, not an error.
func (s *DebtService) GenerateDebtReport(ctx context.Context, userID string, startDate, endDate time.Time) (*models.DebtReport, error) {
	debts, err := s.store.ListDebtsDueBetween(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for report: %w", err)
	}

	totalDebt := decimal.Zero
	totalPaid := decimal.Zero
	summaries := make([]models.DebtSummary, 0, len(debts))

	for _, debt := range debts {
		original := decimal.NewFromFloat(debt.OriginalAmount)
		current := decimal.NewFromFloat(debt.CurrentAmount)
		totalDebt = totalDebt.Add(original)
		totalPaid = totalPaid.Add(original.Sub(current))

		summaries = append(summaries, models.DebtSummary{
			ID:             debt.ID,
			Description:    debt.Description,
			OriginalAmount: debt.OriginalAmount,
			CurrentAmount:  debt.CurrentAmount,
			DueDate:        debt.DueDate,
			Status:         debt.Status,
		})
	}

	return &models.DebtReport{
		TotalDebt: totalDebt.InexactFloat64(),
		TotalPaid: totalPaid.InexactFloat64(),
		Debts:     summaries,
	}, nil
}
