package models

import "time"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// Valid reports whether the budget period is one of the supported values.
func (p BudgetPeriod) Valid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodYearly || p == BudgetPeriodCustom
}

// Budget represents a spending limit for a category over a period. Limit is
// in cents. There is deliberately no stored spent amount: spending against
// a budget is always derived from the current transaction set at read time.
type Budget struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"category_id"`
	Limit      int64        `json:"limit"`
	Period     BudgetPeriod `json:"period"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
}

// Window returns the date range the budget covers. When no end date is set
// the window closes at the last instant of the start date's month.
func (b Budget) Window() (start, end time.Time) {
	start = b.StartDate
	if b.EndDate != nil {
		end = *b.EndDate
	} else {
		firstOfNext := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()).AddDate(0, 1, 0)
		end = firstOfNext.Add(-time.Nanosecond)
	}
	return start, end
}
