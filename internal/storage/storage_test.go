package storage

import (
	"path/filepath"
	"testing"

	"github.com/zkoymen/Dime-Darling/internal/models"
	"github.com/zkoymen/Dime-Darling/internal/testutil"
)

func newTestSQLiteAdapter(t *testing.T) *SQLiteAdapter {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshots.db")
	adapter, err := NewSQLiteAdapter(path, "dimeDarlingData")
	testutil.AssertNoError(t, err)
	t.Cleanup(func() {
		if err := adapter.Close(); err != nil {
			t.Errorf("failed to close adapter: %v", err)
		}
	})
	return adapter
}

func sampleData(t *testing.T) models.AppData {
	t.Helper()

	return models.AppData{
		Transactions: []models.Transaction{
			{
				ID:         "tx_1",
				Date:       testutil.Date(t, "2024-01-05"),
				Amount:     -5000,
				Type:       models.TransactionTypeExpense,
				CategoryID: "cat_groceries",
			},
		},
		Categories: []models.Category{
			{ID: "user_1", Name: "Hobbies", Icon: "Tags"},
		},
		Budgets: []models.Budget{
			{
				ID:         "b_1",
				CategoryID: "cat_groceries",
				Limit:      50000,
				Period:     models.BudgetPeriodMonthly,
				StartDate:  testutil.Date(t, "2024-01-01"),
			},
		},
	}
}

func TestSQLiteAdapter(t *testing.T) {
	t.Run("empty_slot_loads_empty_snapshot", func(t *testing.T) {
		adapter := newTestSQLiteAdapter(t)

		data := adapter.Load()
		if len(data.Transactions) != 0 || len(data.Categories) != 0 || len(data.Budgets) != 0 {
			t.Errorf("expected empty snapshot, got %+v", data)
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		adapter := newTestSQLiteAdapter(t)

		testutil.AssertNoError(t, adapter.Save(sampleData(t)))

		got := adapter.Load()
		if len(got.Transactions) != 1 || got.Transactions[0].ID != "tx_1" {
			t.Errorf("transactions did not round trip: %+v", got.Transactions)
		}
		if got.Transactions[0].Amount != -5000 {
			t.Errorf("amount did not round trip: %d", got.Transactions[0].Amount)
		}
		if len(got.Categories) != 1 || got.Categories[0].Name != "Hobbies" {
			t.Errorf("categories did not round trip: %+v", got.Categories)
		}
		if len(got.Budgets) != 1 || got.Budgets[0].Limit != 50000 {
			t.Errorf("budgets did not round trip: %+v", got.Budgets)
		}
	})

	t.Run("save_overwrites_slot", func(t *testing.T) {
		adapter := newTestSQLiteAdapter(t)

		testutil.AssertNoError(t, adapter.Save(sampleData(t)))
		testutil.AssertNoError(t, adapter.Save(models.AppData{
			Categories: []models.Category{{ID: "user_2", Name: "Second", Icon: "Tags"}},
		}))

		got := adapter.Load()
		if len(got.Transactions) != 0 {
			t.Errorf("old transactions survived overwrite: %+v", got.Transactions)
		}
		if len(got.Categories) != 1 || got.Categories[0].ID != "user_2" {
			t.Errorf("expected only the latest snapshot, got %+v", got.Categories)
		}
	})

	t.Run("corrupt_blob_loads_empty_snapshot", func(t *testing.T) {
		adapter := newTestSQLiteAdapter(t)

		testutil.AssertNoError(t, adapter.Save(sampleData(t)))
		err := adapter.db.Model(&snapshotRow{}).
			Where("slot = ?", adapter.slot).
			Update("data", []byte("{not json")).Error
		testutil.AssertNoError(t, err)

		data := adapter.Load()
		if len(data.Transactions) != 0 {
			t.Errorf("expected empty snapshot for corrupt blob, got %+v", data)
		}
	})

	t.Run("slots_are_isolated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshots.db")
		first, err := NewSQLiteAdapter(path, "slotA")
		testutil.AssertNoError(t, err)
		defer first.Close()

		testutil.AssertNoError(t, first.Save(sampleData(t)))

		second, err := NewSQLiteAdapter(path, "slotB")
		testutil.AssertNoError(t, err)
		defer second.Close()

		if got := second.Load(); len(got.Transactions) != 0 {
			t.Errorf("slot leaked across names: %+v", got)
		}
	})
}

func TestMemoryAdapter(t *testing.T) {
	t.Run("round_trip_counts_saves", func(t *testing.T) {
		adapter := NewMemoryAdapter()

		testutil.AssertNoError(t, adapter.Save(sampleData(t)))
		if adapter.Saves() != 1 {
			t.Errorf("expected 1 save, got %d", adapter.Saves())
		}

		got := adapter.Load()
		if len(got.Transactions) != 1 || got.Transactions[0].ID != "tx_1" {
			t.Errorf("snapshot did not round trip: %+v", got)
		}
	})

	t.Run("corrupt_blob_loads_empty_snapshot", func(t *testing.T) {
		adapter := NewMemoryAdapter()
		adapter.SetBlob([]byte("{not json"))

		if got := adapter.Load(); len(got.Transactions) != 0 {
			t.Errorf("expected empty snapshot, got %+v", got)
		}
	})
}
