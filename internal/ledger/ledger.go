package ledger

import (
	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

// Entry describes one completed transaction, returned so the owning aggregate
// can emit the matching money_changed / transaction_completed events.
type Entry struct {
	Kind             string // KindCredit or KindDebit
	Amount           float64
	Reason           string
	Balance          float64 // balance after the transaction
	TransactionCount int64
}

// Transaction kinds
const (
	KindCredit = "credit"
	KindDebit  = "debit"
)

// Ledger tracks a money balance with monotonic earn/spend totals.
//
// Balance only changes through Credit and Debit so the invariant
// balance == starting balance + total earned - total spent always holds.
// Ledger is not safe for concurrent use; the owning aggregate serializes access.
type Ledger struct {
	balance          float64
	totalEarned      float64
	totalSpent       float64
	transactionCount int64
}

// New creates a ledger with the given starting balance
func New(startingBalance float64) *Ledger {
	if startingBalance < 0 {
		startingBalance = 0
	}
	return &Ledger{balance: startingBalance}
}

// Credit increases the balance. Non-positive amounts are rejected with
// domain.ErrInvalidAmount.
func (l *Ledger) Credit(amount float64, reason string) (Entry, error) {
	if amount <= 0 {
		return Entry{}, domain.ErrInvalidAmount
	}

	l.balance += amount
	l.totalEarned += amount
	l.transactionCount++

	return Entry{
		Kind:             KindCredit,
		Amount:           amount,
		Reason:           reason,
		Balance:          l.balance,
		TransactionCount: l.transactionCount,
	}, nil
}

// Debit decreases the balance. Non-positive amounts are rejected with
// domain.ErrInvalidAmount; amounts beyond the balance are rejected with
// domain.ErrInsufficientFunds and leave every counter untouched.
func (l *Ledger) Debit(amount float64, reason string) (Entry, error) {
	if amount <= 0 {
		return Entry{}, domain.ErrInvalidAmount
	}
	if l.balance < amount {
		return Entry{}, domain.ErrInsufficientFunds
	}

	l.balance -= amount
	l.totalSpent += amount
	l.transactionCount++

	return Entry{
		Kind:             KindDebit,
		Amount:           amount,
		Reason:           reason,
		Balance:          l.balance,
		TransactionCount: l.transactionCount,
	}, nil
}

// CanAfford reports whether the balance covers the amount
func (l *Ledger) CanAfford(amount float64) bool {
	return l.balance >= amount
}

// Sell credits the revenue of one sold unit. Convenience wrapper used once per
// unit by the sales step so sales stay unit-granular.
func (l *Ledger) Sell(unitPrice float64) (Entry, error) {
	return l.Credit(unitPrice, ReasonSale)
}

// Balance returns the current balance
func (l *Ledger) Balance() float64 { return l.balance }

// TotalEarned returns the monotonic earned total
func (l *Ledger) TotalEarned() float64 { return l.totalEarned }

// TotalSpent returns the monotonic spent total
func (l *Ledger) TotalSpent() float64 { return l.totalSpent }

// TransactionCount returns the number of completed transactions
func (l *Ledger) TransactionCount() int64 { return l.transactionCount }

// Restore rehydrates ledger state from a snapshot without emitting anything
func (l *Ledger) Restore(balance, totalEarned, totalSpent float64, transactionCount int64) {
	if balance < 0 {
		balance = 0
	}
	if totalEarned < 0 {
		totalEarned = 0
	}
	if totalSpent < 0 {
		totalSpent = 0
	}
	l.balance = balance
	l.totalEarned = totalEarned
	l.totalSpent = totalSpent
	l.transactionCount = transactionCount
}

// ResetForPrestige zeroes all mutable economy progress back to the starting
// balance. Lifetime totals live in the prestige state, not here.
func (l *Ledger) ResetForPrestige(startingBalance float64) {
	if startingBalance < 0 {
		startingBalance = 0
	}
	l.balance = startingBalance
	l.totalEarned = 0
	l.totalSpent = 0
	l.transactionCount = 0
}
