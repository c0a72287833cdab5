package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zkoymen/Dime-Darling/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date parses a YYYY-MM-DD string into a UTC time.
func Date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return d
}

// Expense builds an expense transaction for the given day. Amount is the
// positive magnitude in cents; the store normalizes the sign.
func Expense(t *testing.T, date string, amount int64, categoryID string) models.Transaction {
	t.Helper()

	return models.Transaction{
		Date:        Date(t, date),
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      amount,
		Type:        models.TransactionTypeExpense,
		CategoryID:  categoryID,
	}
}

// Income builds an income transaction for the given day.
func Income(t *testing.T, date string, amount int64, categoryID string) models.Transaction {
	t.Helper()

	return models.Transaction{
		Date:        Date(t, date),
		Description: fmt.Sprintf("Test Income %d", nextID()),
		Amount:      amount,
		Type:        models.TransactionTypeIncome,
		CategoryID:  categoryID,
	}
}

// UserCategory builds a user-defined category with a unique name.
func UserCategory(name string) models.Category {
	if name == "" {
		name = fmt.Sprintf("Test Category %d", nextID())
	}
	return models.Category{
		Name: name,
		Icon: "Tags",
	}
}

// MonthlyBudget builds a monthly budget starting on the given day. Limit is
// in cents.
func MonthlyBudget(t *testing.T, categoryID string, limit int64, start string) models.Budget {
	t.Helper()

	return models.Budget{
		CategoryID: categoryID,
		Limit:      limit,
		Period:     models.BudgetPeriodMonthly,
		StartDate:  Date(t, start),
	}
}
