// Package reports contains the pure derivation functions: budget spending,
// monthly flow buckets, category breakdowns, and trend series. Nothing here
// caches or mutates; callers pass current state and an explicit "now" and
// decide when to recompute.
package reports

import (
	"sort"
	"time"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
	"github.com/zkoymen/Dime-Darling/internal/models"
)

const monthLabelLayout = "Jan 06"

// SpentAmount sums the absolute value of expense transactions in the given
// category with start <= date <= end. A zero end defaults to the last
// instant of start's month. Always recomputed, never cached.
func SpentAmount(txs []models.Transaction, categoryID string, start, end time.Time) int64 {
	if end.IsZero() {
		end = endOfMonth(start)
	}

	var total int64
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense || t.CategoryID != categoryID {
			continue
		}
		if inRange(t.Date, start, end) {
			total += t.AbsAmount()
		}
	}
	return total
}

// BudgetStatus pairs a budget with its derived spending figures.
type BudgetStatus struct {
	models.Budget
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// StatusForBudget derives the spent amount for a budget's window from the
// current transaction set.
func StatusForBudget(b models.Budget, txs []models.Transaction) BudgetStatus {
	start, end := b.Window()
	spent := SpentAmount(txs, b.CategoryID, start, end)

	var pct float64
	if b.Limit > 0 {
		pct = float64(spent) / float64(b.Limit) * 100
	}

	return BudgetStatus{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.Limit - spent,
		Percentage: pct,
	}
}

// MonthlyFlow is one calendar-month bucket of income and expense totals.
// Expenses are reported as a positive magnitude.
type MonthlyFlow struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
}

// MonthlyFlows buckets transactions in the resolved window by calendar
// month. Bucketing starts at the later of the window start and the earliest
// in-range transaction, so an "alltime" query does not emit decades of
// empty months. Buckets with no activity are dropped; an entirely empty
// window yields ErrNoReportData.
func MonthlyFlows(txs []models.Transaction, r TimeRange, now time.Time) ([]MonthlyFlow, error) {
	start, end := ResolveRange(r, now)

	var relevant []models.Transaction
	for _, t := range txs {
		if inRange(t.Date, start, end) {
			relevant = append(relevant, t)
		}
	}
	if len(relevant) == 0 {
		return nil, apperrors.ErrNoReportData
	}

	var flows []MonthlyFlow
	for _, monthStart := range monthBuckets(relevant, start, end) {
		monthEnd := endOfMonth(monthStart)
		flow := MonthlyFlow{Month: monthStart.Format(monthLabelLayout)}

		for _, t := range relevant {
			if !inRange(t.Date, monthStart, monthEnd) {
				continue
			}
			if t.Type == models.TransactionTypeIncome {
				flow.Income += t.Amount
			} else {
				flow.Expenses += t.AbsAmount()
			}
		}

		if flow.Income == 0 && flow.Expenses == 0 {
			continue
		}
		flow.Net = flow.Income - flow.Expenses
		flows = append(flows, flow)
	}

	if len(flows) == 0 {
		return nil, apperrors.ErrNoReportData
	}
	return flows, nil
}

// CategoryTotal is one slice of the spending-by-category breakdown.
type CategoryTotal struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// CategoryBreakdown totals expenses per category name over the resolved
// window, largest first. Transactions referencing an unknown category are
// grouped under "Uncategorized". An empty window yields ErrNoReportData.
func CategoryBreakdown(txs []models.Transaction, cats []models.Category, r TimeRange, now time.Time) ([]CategoryTotal, error) {
	start, end := ResolveRange(r, now)
	names := categoryNames(cats)

	totals := make(map[string]int64)
	var order []string // first-seen order keeps equal totals deterministic
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense || !inRange(t.Date, start, end) {
			continue
		}
		name, ok := names[t.CategoryID]
		if !ok {
			name = "Uncategorized"
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += t.AbsAmount()
	}

	if len(totals) == 0 {
		return nil, apperrors.ErrNoReportData
	}

	result := make([]CategoryTotal, 0, len(totals))
	for _, name := range order {
		result = append(result, CategoryTotal{Name: name, Amount: totals[name]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})
	return result, nil
}

// trendCategoryLimit caps how many category series a trend report carries.
const trendCategoryLimit = 4

// TrendPoint is one month of spending per tracked category.
type TrendPoint struct {
	Month  string           `json:"month"`
	Totals map[string]int64 `json:"totals"`
}

// TrendSeries holds monthly spending for the top expense categories of the
// resolved window.
type TrendSeries struct {
	Categories []string     `json:"categories"`
	Points     []TrendPoint `json:"points"`
}

// CategoryTrends ranks categories by absolute expense within the window,
// keeps the top four (ties broken by first appearance in the transaction
// list), and buckets their spending by calendar month. Months with no
// activity in any tracked category are dropped.
func CategoryTrends(txs []models.Transaction, cats []models.Category, r TimeRange, now time.Time) (*TrendSeries, error) {
	start, end := ResolveRange(r, now)

	var relevant []models.Transaction
	totals := make(map[string]int64)
	var order []string
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense || !inRange(t.Date, start, end) {
			continue
		}
		relevant = append(relevant, t)
		if _, seen := totals[t.CategoryID]; !seen {
			order = append(order, t.CategoryID)
		}
		totals[t.CategoryID] += t.AbsAmount()
	}
	if len(relevant) == 0 {
		return nil, apperrors.ErrNoReportData
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > trendCategoryLimit {
		order = order[:trendCategoryLimit]
	}

	// Category IDs without a known category carry no renderable series.
	names := categoryNames(cats)
	topIDs := make([]string, 0, len(order))
	topNames := make([]string, 0, len(order))
	for _, id := range order {
		if name, ok := names[id]; ok {
			topIDs = append(topIDs, id)
			topNames = append(topNames, name)
		}
	}
	if len(topIDs) == 0 {
		return nil, apperrors.ErrNoReportData
	}

	var points []TrendPoint
	for _, monthStart := range monthBuckets(relevant, start, end) {
		monthEnd := endOfMonth(monthStart)
		point := TrendPoint{
			Month:  monthStart.Format(monthLabelLayout),
			Totals: make(map[string]int64, len(topIDs)),
		}
		for _, name := range topNames {
			point.Totals[name] = 0
		}

		active := false
		for _, t := range relevant {
			if !inRange(t.Date, monthStart, monthEnd) {
				continue
			}
			for i, id := range topIDs {
				if t.CategoryID == id {
					point.Totals[topNames[i]] += t.AbsAmount()
					active = true
				}
			}
		}

		if active {
			points = append(points, point)
		}
	}

	if len(points) == 0 {
		return nil, apperrors.ErrNoReportData
	}
	return &TrendSeries{Categories: topNames, Points: points}, nil
}

// Overview summarizes the current calendar month for the dashboard.
type Overview struct {
	Income      int64   `json:"income"`
	Expenses    int64   `json:"expenses"`
	Net         int64   `json:"net"`
	SavingsRate float64 `json:"savings_rate"`
}

// MonthOverview totals income and expenses for the month containing now.
func MonthOverview(txs []models.Transaction, now time.Time) Overview {
	start := startOfMonth(now)
	end := endOfMonth(now)

	var o Overview
	for _, t := range txs {
		if !inRange(t.Date, start, end) {
			continue
		}
		if t.Type == models.TransactionTypeIncome {
			o.Income += t.Amount
		} else {
			o.Expenses += t.AbsAmount()
		}
	}
	o.Net = o.Income - o.Expenses
	if o.Income > 0 {
		o.SavingsRate = float64(o.Net) / float64(o.Income) * 100
	}
	return o
}

// monthBuckets returns the start of each calendar month between the later
// of (window start, earliest transaction date) and the window end.
func monthBuckets(txs []models.Transaction, start, end time.Time) []time.Time {
	earliest := end
	for _, t := range txs {
		if d := startOfDay(t.Date); d.Before(earliest) {
			earliest = d
		}
	}
	if earliest.After(start) {
		start = earliest
	}

	var months []time.Time
	for m := startOfMonth(start); !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// categoryNames indexes categories by ID.
func categoryNames(cats []models.Category) map[string]string {
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names
}
