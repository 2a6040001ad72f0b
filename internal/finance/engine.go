// Package finance implements the pure financial math behind the debt
// tracker: total-debt projection under simple and compound interest,
// type-specific balance recalculation, iterative payoff simulation, and
// balance evolution curves. Functions here are side-effect free and do no
// I/O; all state lives with the callers.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/Guilherme-dev15/finance-app/internal/models"
)

const (
	// PersonalFee is the flat administrative fee applied to PERSONAL
	// debts instead of interest, in currency units.
	PersonalFee = 20.0

	// CreditCardSurcharge is the fixed surcharge applied on top of
	// compounding for CREDIT_CARD debts (5%).
	CreditCardSurcharge = 0.05

	// MaxSimulationMonths caps the payoff simulation loop. A payment that
	// cannot outpace monthly accrual would otherwise never terminate.
	// 600 months = 50 years, beyond any plausible payoff horizon.
	MaxSimulationMonths = 600
)

var (
	// ErrInvalidInput flags malformed numeric parameters or an unknown
	// interest scheme.
	ErrInvalidInput = errors.New("invalid projection input")

	// ErrInvalidDebtType flags a debt type outside the closed
	// LOAN | CREDIT_CARD | PERSONAL set.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidPayment flags a non-positive payment amount.
	ErrInvalidPayment = errors.New("payment amount must be greater than zero")

	// ErrNonConvergent is returned when a simulated payment never brings
	// the balance down within MaxSimulationMonths.
	ErrNonConvergent = errors.New("payment too small to ever settle the debt")
)

// Scheme selects the interest formula for Project.
type Scheme string

const (
	SchemeSimple   Scheme = "simple"
	SchemeCompound Scheme = "compound"
)

// Project computes the total debt after the given number of periods.
//
//	simple:   amount × (1 + rate/100 × periods)
//	compound: amount × (1 + rate/100)^periods
//
// interestRate is in percent per period. Returns ErrInvalidInput when the
// rate is not a finite number, the scheme is unknown, or the result
// overflows to a non-finite value.
func Project(originalAmount, interestRate float64, periods int, scheme Scheme) (float64, error) {
	if math.IsNaN(interestRate) || math.IsInf(interestRate, 0) {
		return 0, fmt.Errorf("%w: interest rate must be a finite number", ErrInvalidInput)
	}

	var total float64
	switch scheme {
	case SchemeSimple:
		total = originalAmount * (1 + (interestRate/100)*float64(periods))
	case SchemeCompound:
		total = originalAmount * math.Pow(1+interestRate/100, float64(periods))
	default:
		return 0, fmt.Errorf("%w: unknown interest scheme %q", ErrInvalidInput, scheme)
	}

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: projection did not produce a finite amount", ErrInvalidInput)
	}
	return total, nil
}

// ProjectByType recalculates a debt's outstanding balance according to its
// type. The switch is exhaustive over the closed DebtType set; adding a new
// type means adding a case here.
//
//   - LOAN: compound growth on the current balance over the remaining
//     installments.
//   - CREDIT_CARD: one compounding step plus the fixed surcharge.
//   - PERSONAL: flat administrative fee, no interest.
func ProjectByType(debtType models.DebtType, currentAmount, interestRate float64, remainingInstallments int) (float64, error) {
	switch debtType {
	case models.TypeLoan:
		return Project(currentAmount, interestRate, remainingInstallments, SchemeCompound)
	case models.TypeCreditCard:
		grown, err := Project(currentAmount, interestRate, 1, SchemeCompound)
		if err != nil {
			return 0, err
		}
		return grown * (1 + CreditCardSurcharge), nil
	case models.TypePersonal:
		return currentAmount + PersonalFee, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDebtType, debtType)
}

// Simulate runs a month-by-month payoff: each period the balance grows by
// balance × (rate/100/12), then the payment is subtracted. It returns how
// many months are needed to reach zero, with the terminal balance clamped
// to exactly 0.
//
// Returns ErrInvalidPayment when paymentAmount is not positive, and
// ErrNonConvergent when the balance has not reached zero after
// MaxSimulationMonths.
func Simulate(currentAmount, interestRate, paymentAmount float64) (models.SimulationResult, error) {
	if paymentAmount <= 0 {
		return models.SimulationResult{}, ErrInvalidPayment
	}

	monthlyRate := interestRate / 100 / 12
	remaining := currentAmount
	months := 0

	for remaining > 0 {
		if months >= MaxSimulationMonths {
			return models.SimulationResult{}, fmt.Errorf(
				"%w: balance %.2f still open after %d months", ErrNonConvergent, remaining, months)
		}
		remaining += remaining*monthlyRate - paymentAmount
		months++
	}

	return models.SimulationResult{MonthsToPay: months, RemainingAmount: 0}, nil
}

// Evolve produces the pure balance growth curve over the given number of
// months: monthly compounding applied with no payments subtracted, one
// entry per elapsed month, 1-indexed. The curve is recomputed fresh on
// every call.
func Evolve(currentAmount, interestRate float64, periods int) []models.EvolutionPoint {
	monthlyRate := interestRate / 100 / 12
	remaining := currentAmount

	points := make([]models.EvolutionPoint, 0, periods)
	for month := 1; month <= periods; month++ {
		remaining += remaining * monthlyRate
		points = append(points, models.EvolutionPoint{Month: month, Amount: remaining})
	}
	return points
}
