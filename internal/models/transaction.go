package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is one of the supported values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry. Amount is in
// cents and signed: expenses are negative, income is positive. The store
// normalizes the sign on every mutation, so callers may pass either.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"category_id"`
	Notes       string          `json:"notes,omitempty"`
}

// AbsAmount returns the magnitude of the transaction amount in cents.
func (t Transaction) AbsAmount() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}
