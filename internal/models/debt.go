package models

import "time"

// DebtStatus is the lifecycle status of a debt.
type DebtStatus string

const (
	StatusPending    DebtStatus = "PENDING"
	StatusPaid       DebtStatus = "PAID"
	StatusNegotiated DebtStatus = "NEGOTIATED"
)

// Valid reports whether s is one of the known statuses.
func (s DebtStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusNegotiated:
		return true
	}
	return false
}

// DebtType selects which interest formula applies to a debt.
// The set is closed: the finance engine matches exhaustively on it.
type DebtType string

const (
	TypeLoan       DebtType = "LOAN"
	TypeCreditCard DebtType = "CREDIT_CARD"
	TypePersonal   DebtType = "PERSONAL"
)

// Valid reports whether t is one of the known debt types.
func (t DebtType) Valid() bool {
	switch t {
	case TypeLoan, TypeCreditCard, TypePersonal:
		return true
	}
	return false
}

// Debt represents one tracked financial obligation.
type Debt struct {
	// ID is the unique identifier for the debt (UUID format).
	ID string `json:"id"`

	// UserID is the owner of the debt. Immutable after creation; every
	// lookup is scoped by it, so a debt id alone never resolves.
	UserID string `json:"userId"`

	// Description is a human-readable name for the debt.
	Description string `json:"description"`

	// OriginalAmount is the amount at creation. Historical record, never
	// mutated by payments or interest updates.
	OriginalAmount float64 `json:"originalAmount"`

	// CurrentAmount is the live outstanding balance. Clamped to 0, never
	// negative.
	CurrentAmount float64 `json:"currentAmount"`

	// InterestRate is the annual rate in percent. Defaults to 0.
	InterestRate float64 `json:"interestRate"`

	// RemainingInstallments is the payoff horizon used as the period count
	// for projections. It is not decremented by payments.
	RemainingInstallments int `json:"remainingInstallments"`

	// DueDate is when the debt falls due. Used for report filtering and
	// overdue checks; date semantics, time-of-day ignored.
	DueDate time.Time `json:"dueDate"`

	// Status is PENDING until a payment clears the balance, which sets it
	// to PAID. NEGOTIATED can be set explicitly via edit.
	Status DebtStatus `json:"status"`

	// DebtType defaults to LOAN when not supplied.
	DebtType DebtType `json:"debtType"`

	// CreatedAt is the Unix timestamp when the debt was created. Immutable.
	CreatedAt int64 `json:"createdAt"`
}

// Overdue reports whether the debt is past due and still unpaid.
func (d *Debt) Overdue(now time.Time) bool {
	return now.After(d.DueDate) && d.Status != StatusPaid
}

// MonthlyInstallment is the flat per-period payment implied by the current
// balance and the remaining payoff horizon.
func (d *Debt) MonthlyInstallment() float64 {
	if d.RemainingInstallments <= 0 {
		return d.CurrentAmount
	}
	return d.CurrentAmount / float64(d.RemainingInstallments)
}

// PrioritizedDebt is a projection of a Debt for ranking output.
// Computed on demand by the assistant service, never stored.
type PrioritizedDebt struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	InterestRate          float64   `json:"interestRate"`
	RemainingInstallments int       `json:"remainingInstallments"`
	DueDate               time.Time `json:"dueDate"`
	MonthlyInstallment    float64   `json:"monthlyInstallment"`
}

// DebtSummary is the per-debt line of a report.
type DebtSummary struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	OriginalAmount float64    `json:"originalAmount"`
	CurrentAmount  float64    `json:"currentAmount"`
	DueDate        time.Time  `json:"dueDate"`
	Status         DebtStatus `json:"status"`
}

// DebtReport aggregates a user's debts falling due inside a date range.
type DebtReport struct {
	TotalDebt float64       `json:"totalDebt"`
	TotalPaid float64       `json:"totalPaid"`
	Debts     []DebtSummary `json:"debts"`
}

// EvolutionPoint is one entry of a balance growth curve: the balance after
// the given month of compounding, with no payments applied. Months are
// 1-indexed.
type EvolutionPoint struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// SimulationResult is the outcome of a payoff simulation.
type SimulationResult struct {
	MonthsToPay     int     `json:"monthsToPay"`
	RemainingAmount float64 `json:"remainingAmount"`
}
