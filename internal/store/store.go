// Package store holds the canonical application state for a session:
// transactions, user categories, and budgets. It is the single source of
// truth; the storage adapter only ever sees serialized snapshots.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
	"github.com/zkoymen/Dime-Darling/internal/logger"
	"github.com/zkoymen/Dime-Darling/internal/models"
	"github.com/zkoymen/Dime-Darling/internal/storage"
	"github.com/zkoymen/Dime-Darling/internal/uuid"
)

// NoSpendingDataSummary is returned by PastSpendingSummary when no expense
// transactions exist.
const NoSpendingDataSummary = "No recent spending data."

// pastSpendingCount is how many recent expenses feed the categorization digest.
const pastSpendingCount = 10

// Store owns the three in-memory collections and persists a snapshot after
// every successful mutation. The HTTP layer serves requests concurrently,
// so all access goes through a read-write mutex.
type Store struct {
	mu      sync.RWMutex
	adapter storage.Adapter

	transactions []models.Transaction
	categories   []models.Category // user-defined only
	budgets      []models.Budget
	loaded       bool
}

// New creates a store backed by the given adapter. Call Load before serving.
func New(adapter storage.Adapter) *Store {
	return &Store{adapter: adapter}
}

// Load pulls the persisted snapshot into memory. Until Load has run, saves
// are suppressed so a mutation during startup cannot overwrite the slot
// with empty defaults.
func (s *Store) Load() {
	data := s.adapter.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = data.Transactions
	s.budgets = data.Budgets

	// A stored category whose ID collides with a predefined one is dropped:
	// predefined wins in the merged view.
	s.categories = s.categories[:0]
	for _, c := range data.Categories {
		if models.IsPredefinedID(c.ID) {
			continue
		}
		c.IsPredefined = false
		s.categories = append(s.categories, c)
	}

	sortTransactions(s.transactions)
	s.loaded = true
}

// Loaded reports whether the initial load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// persistLocked writes the current state through the adapter. Persistence
// is fire-and-forget: failures are logged and the mutation stands.
// Callers must hold at least a read lock.
func (s *Store) persistLocked() {
	if !s.loaded {
		return
	}

	data := models.AppData{
		Transactions: append([]models.Transaction(nil), s.transactions...),
		Categories:   append([]models.Category(nil), s.categories...),
		Budgets:      append([]models.Budget(nil), s.budgets...),
	}
	if err := s.adapter.Save(data); err != nil {
		logger.Get().Warnw("failed to persist snapshot", "error", err.Error())
	}
}

// sortTransactions orders transactions by date descending. The sort is
// stable so equal dates keep their insertion order.
func sortTransactions(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

// normalizeTransaction enforces the sign invariant: expenses are negative,
// income is positive, regardless of what the caller passed.
func normalizeTransaction(t *models.Transaction) error {
	switch t.Type {
	case models.TransactionTypeExpense:
		t.Amount = -t.AbsAmount()
	case models.TransactionTypeIncome:
		t.Amount = t.AbsAmount()
	default:
		return apperrors.ErrInvalidTransactionType
	}
	return nil
}

// AddTransaction normalizes and inserts a transaction, assigning an ID when
// absent, and returns the stored value.
func (s *Store) AddTransaction(t models.Transaction) (models.Transaction, error) {
	if t.Date.IsZero() {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	if err := normalizeTransaction(&t); err != nil {
		return models.Transaction{}, err
	}
	if t.ID == "" {
		t.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, t)
	sortTransactions(s.transactions)
	s.persistLocked()
	return t, nil
}

// UpdateTransaction replaces a transaction by ID. Updating a nonexistent ID
// is an explicit not-found error, not a silent no-op.
func (s *Store) UpdateTransaction(t models.Transaction) (models.Transaction, error) {
	if t.Date.IsZero() {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction date is required")
	}
	if err := normalizeTransaction(&t); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == t.ID {
			s.transactions[i] = t
			sortTransactions(s.transactions)
			s.persistLocked()
			return t, nil
		}
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// DeleteTransaction removes a transaction by ID.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return apperrors.ErrTransactionNotFound
}

// TransactionByID returns a transaction by ID.
func (s *Store) TransactionByID(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, apperrors.ErrTransactionNotFound
}

// Transactions returns a copy of the transaction list, most recent first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// Categories returns the merged category view: predefined first, then
// user-defined.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(models.PredefinedCategories(), s.categories...)
}

// CategoryByID returns a category from the merged view.
func (s *Store) CategoryByID(id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryByIDLocked(id)
}

func (s *Store) categoryByIDLocked(id string) (models.Category, error) {
	for _, c := range models.PredefinedCategories() {
		if c.ID == id {
			return c, nil
		}
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, apperrors.ErrCategoryNotFound
}

// AddCategory inserts a user-defined category. IDs colliding with a
// predefined or existing user category are rejected.
func (s *Store) AddCategory(c models.Category) (models.Category, error) {
	if c.Name == "" {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New()
	}
	c.IsPredefined = false

	s.mu.Lock()
	defer s.mu.Unlock()

	if models.IsPredefinedID(c.ID) {
		return models.Category{}, apperrors.ErrDuplicateCategoryID
	}
	for _, existing := range s.categories {
		if existing.ID == c.ID {
			return models.Category{}, apperrors.ErrDuplicateCategoryID
		}
	}

	s.categories = append(s.categories, c)
	s.persistLocked()
	return c, nil
}

// UpdateCategory replaces a user-defined category by ID. Predefined
// categories are immutable.
func (s *Store) UpdateCategory(c models.Category) (models.Category, error) {
	if models.IsPredefinedID(c.ID) {
		return models.Category{}, apperrors.ErrPredefinedCategory
	}
	if c.Name == "" {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	c.IsPredefined = false

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			s.persistLocked()
			return c, nil
		}
	}
	return models.Category{}, apperrors.ErrCategoryNotFound
}

// DeleteCategory removes a user-defined category and reassigns every
// transaction that referenced it to the fallback "Other" category, so no
// transaction is left dangling. Deleting a predefined category is refused.
func (s *Store) DeleteCategory(id string) error {
	if models.IsPredefinedID(id) {
		return apperrors.ErrPredefinedCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrCategoryNotFound
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	for i := range s.transactions {
		if s.transactions[i].CategoryID == id {
			s.transactions[i].CategoryID = models.FallbackCategoryID
		}
	}
	s.persistLocked()
	return nil
}

// validateBudget checks the invariants the mutation layer is responsible
// for before a budget enters the store.
func validateBudget(b models.Budget) error {
	if b.Limit <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget limit must be positive")
	}
	if !b.Period.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget period")
	}
	if b.StartDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget start date is required")
	}
	if b.Period == models.BudgetPeriodCustom && b.EndDate == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "custom budgets require an end date")
	}
	if b.EndDate != nil && b.EndDate.Before(b.StartDate) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget end date must not be before start date")
	}
	return nil
}

// AddBudget inserts a budget after verifying the referenced category exists.
func (s *Store) AddBudget(b models.Budget) (models.Budget, error) {
	if err := validateBudget(b); err != nil {
		return models.Budget{}, err
	}
	if b.ID == "" {
		b.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.categoryByIDLocked(b.CategoryID); err != nil {
		return models.Budget{}, err
	}

	s.budgets = append(s.budgets, b)
	s.persistLocked()
	return b, nil
}

// UpdateBudget replaces a budget by ID.
func (s *Store) UpdateBudget(b models.Budget) (models.Budget, error) {
	if err := validateBudget(b); err != nil {
		return models.Budget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.categoryByIDLocked(b.CategoryID); err != nil {
		return models.Budget{}, err
	}

	for i := range s.budgets {
		if s.budgets[i].ID == b.ID {
			s.budgets[i] = b
			s.persistLocked()
			return b, nil
		}
	}
	return models.Budget{}, apperrors.ErrBudgetNotFound
}

// DeleteBudget removes a budget by ID.
func (s *Store) DeleteBudget(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return apperrors.ErrBudgetNotFound
}

// Budgets returns a copy of the budget list.
func (s *Store) Budgets() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Budget(nil), s.budgets...)
}

// PastSpendingSummary builds a human-readable digest of the ten most recent
// expense transactions for the categorization collaborator.
func (s *Store) PastSpendingSummary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var parts []string
	for _, t := range s.transactions { // already most recent first
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		name := "Uncategorized"
		if c, err := s.categoryByIDLocked(t.CategoryID); err == nil {
			name = c.Name
		}
		parts = append(parts, fmt.Sprintf("%s: %.2f", name, float64(t.AbsAmount())/100))
		if len(parts) == pastSpendingCount {
			break
		}
	}

	if len(parts) == 0 {
		return NoSpendingDataSummary
	}
	return "Recent spending includes: " + strings.Join(parts, ", ") + "."
}
