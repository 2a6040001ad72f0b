// Package models defines the core domain models for the debt tracker.
//
// # Models
//
//   - Debt: a tracked financial obligation owned by one user
//   - User: a registered account (email + bcrypt password hash)
//   - PrioritizedDebt: derived ranking projection, computed on demand
//   - DebtReport / DebtSummary: aggregate reporting output
//
// # Design Principles
//
//  1. **Scoped ownership**: every debt carries its owner's user ID and is
//     never addressable without it.
//  2. **Immutable history**: OriginalAmount and CreatedAt are set at creation
//     and never mutated afterwards; CurrentAmount is the live balance.
//  3. **Closed enums**: DebtStatus and DebtType are closed string sets with
//     explicit validity checks, so an unknown tag fails loudly instead of
//     sliding into a default branch.
//  4. **No storage concerns here**: models are plain structs shared by the
//     storage, service, and transport layers.
package models
