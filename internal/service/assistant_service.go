package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Guilherme-dev15/finance-app/internal/models"
	"github.com/Guilherme-dev15/finance-app/internal/storage"
)

// AssistantService ranks a user's open debts and classifies affordability.
// The ranking encodes the avalanche payoff heuristic: attack the highest
// interest rate first, break ties toward the fastest-to-close debt, then
// toward the soonest due date.
type AssistantService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewAssistantService creates an AssistantService.
func NewAssistantService(store storage.Store, logger *slog.Logger) *AssistantService {
	return &AssistantService{store: store, logger: logger}
}

// DebtAnalysis is the output of AnalyzeDebts.
type DebtAnalysis struct {
	Message                string                   `json:"message"`
	TotalDebts             int                      `json:"totalDebts"`
	AvailableMonthlyAmount float64                  `json:"availableMonthlyAmount"`
	PrioritizedDebts       []models.PrioritizedDebt `json:"prioritizedDebts"`
}

// AnalyzeDebts loads the user's debts with status other than PAID, ranks
// them, and projects each to a PrioritizedDebt. Returns ErrNoActiveDebts
// when the user has nothing open.
func (s *AssistantService) AnalyzeDebts(ctx context.Context, userID string, availableMonthlyAmount float64) (*DebtAnalysis, error) {
	all, err := s.store.ListDebts(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for analysis: %w", err)
	}

	var open []*models.Debt
	for _, debt := range all {
		if debt.Status != models.StatusPaid {
			open = append(open, debt)
		}
	}
	if len(open) == 0 {
		return nil, ErrNoActiveDebts
	}

	prioritizeDebts(open)

	prioritized := make([]models.PrioritizedDebt, len(open))
	for i, debt := range open {
		prioritized[i] = models.PrioritizedDebt{
			ID:                    debt.ID,
			Name:                  debt.Description,
			InterestRate:          debt.InterestRate,
			RemainingInstallments: debt.RemainingInstallments,
			DueDate:               debt.DueDate,
			MonthlyInstallment:    debt.MonthlyInstallment(),
		}
	}

	s.logger.Info("Debts prioritized", "user_id", userID, "count", len(prioritized))

	return &DebtAnalysis{
		Message:                "Debts prioritized by interest rate, remaining installments, and due date.",
		TotalDebts:             len(prioritized),
		AvailableMonthlyAmount: availableMonthlyAmount,
		PrioritizedDebts:       prioritized,
	}, nil
}

// prioritizeDebts orders debts in place: interest rate descending, then
// remaining installments ascending, then due date ascending.
func prioritizeDebts(debts []*models.Debt) {
	sort.SliceStable(debts, func(i, j int) bool {
		a, b := debts[i], debts[j]
		if a.InterestRate != b.InterestRate {
			return a.InterestRate > b.InterestRate
		}
		if a.RemainingInstallments != b.RemainingInstallments {
			return a.RemainingInstallments < b.RemainingInstallments
		}
		return a.DueDate.Before(b.DueDate)
	})
}

// RiskLevel classifies how much of the user's income a debt commits.
type RiskLevel string

const (
	RiskHigh     RiskLevel = "HIGH"
	RiskModerate RiskLevel = "MODERATE"
	RiskLow      RiskLevel = "LOW"
)

// FeasibilityResult is the output of AnalyzeDebtFeasibility.
type FeasibilityResult struct {
	Risk             RiskLevel `json:"risk"`
	CommittedPercent float64   `json:"committedPercent"`
	Message          string    `json:"message"`
}

// AnalyzeDebtFeasibility classifies monthlyInstallment against userIncome:
// above 50% of income is high risk, 30–50% moderate, up to 30% low.
// A zero or negative income means any installment over-commits the budget,
// so it classifies as high risk rather than failing.
func AnalyzeDebtFeasibility(totalDebt, monthlyInstallment, userIncome float64) FeasibilityResult {
	if userIncome <= 0 {
		return FeasibilityResult{
			Risk:             RiskHigh,
			CommittedPercent: 100,
			Message:          "High: no positive income, any installment over-commits the budget.",
		}
	}

	pct := monthlyInstallment / userIncome * 100
	switch {
	case pct > 50:
		return FeasibilityResult{
			Risk:             RiskHigh,
			CommittedPercent: pct,
			Message:          "High: more than 50% of income would be committed to this debt.",
		}
	case pct > 30:
		return FeasibilityResult{
			Risk:             RiskModerate,
			CommittedPercent: pct,
			Message:          "Moderate: between 30% and 50% of income would be committed.",
		}
	default:
		return FeasibilityResult{
			Risk:             RiskLow,
			CommittedPercent: pct,
			Message:          "Low: this debt is feasible within the budget.",
		}
	}
}
