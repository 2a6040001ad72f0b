package service

import "errors"

var (
	// ErrInvalidAmount flags a non-positive original amount on create/edit.
	ErrInvalidAmount = errors.New("original amount must be positive")

	// ErrInvalidDebt flags a structurally invalid debt payload
	// (empty description, bad enum tag, installments below one).
	ErrInvalidDebt = errors.New("invalid debt data")

	// ErrDebtNotFound is returned when no debt matches (id, userID).
	// Cross-owner access is deliberately indistinguishable from a
	// nonexistent id.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrNoActiveDebts is returned when prioritization finds no debts
	// with status other than PAID.
	ErrNoActiveDebts = errors.New("no active debts found for this user")
)
