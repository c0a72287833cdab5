package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zkoymen/Dime-Darling/internal/store"
	"github.com/zkoymen/Dime-Darling/internal/testutil"
)

func newTransactionRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	st := newTestStore(t)
	h := NewTransactionHandler(st)

	r := gin.New()
	r.POST("/transactions", h.CreateTransaction)
	r.GET("/transactions", h.GetTransactions)
	r.GET("/transactions/:id", h.GetTransaction)
	r.PUT("/transactions/:id", h.UpdateTransaction)
	r.DELETE("/transactions/:id", h.DeleteTransaction)
	return r, st
}

func TestCreateTransactionEndpoint(t *testing.T) {
	t.Run("creates_and_normalizes_sign", func(t *testing.T) {
		r, _ := newTransactionRouter(t)

		w := performRequest(r, http.MethodPost, "/transactions", gin.H{
			"date":        "2024-01-05T00:00:00Z",
			"description": "Weekly groceries",
			"amount":      5000,
			"type":        "expense",
			"category_id": "cat_groceries",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		tx := body["transaction"].(map[string]any)
		if tx["amount"].(float64) != -5000 {
			t.Errorf("expected stored amount -5000, got %v", tx["amount"])
		}
		if tx["id"] == "" {
			t.Error("expected a generated ID")
		}
	})

	t.Run("rejects_missing_fields", func(t *testing.T) {
		r, _ := newTransactionRouter(t)

		w := performRequest(r, http.MethodPost, "/transactions", gin.H{
			"description": "No date or amount",
			"type":        "expense",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		r, _ := newTransactionRouter(t)

		w := performRequest(r, http.MethodPost, "/transactions", gin.H{
			"date":        "2024-01-05T00:00:00Z",
			"description": "Transfer",
			"amount":      5000,
			"type":        "transfer",
			"category_id": "cat_groceries",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetTransactionsEndpoint(t *testing.T) {
	t.Run("lists_most_recent_first", func(t *testing.T) {
		r, st := newTransactionRouter(t)
		st.AddTransaction(testutil.Expense(t, "2024-01-10", 100, "cat_groceries"))
		st.AddTransaction(testutil.Expense(t, "2024-03-01", 200, "cat_groceries"))

		w := performRequest(r, http.MethodGet, "/transactions", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		body := decodeBody(t, w)
		data := body["data"].([]any)
		if len(data) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(data))
		}
		first := data[0].(map[string]any)
		if first["date"].(string)[:10] != "2024-03-01" {
			t.Errorf("expected most recent first, got %v", first["date"])
		}
	})

	t.Run("filters_by_type_and_category", func(t *testing.T) {
		r, st := newTransactionRouter(t)
		st.AddTransaction(testutil.Expense(t, "2024-01-10", 100, "cat_groceries"))
		st.AddTransaction(testutil.Expense(t, "2024-01-11", 100, "cat_dining"))
		st.AddTransaction(testutil.Income(t, "2024-01-12", 100, "cat_salary"))

		w := performRequest(r, http.MethodGet, "/transactions?type=expense&category_id=cat_dining", nil)
		body := decodeBody(t, w)
		if n := len(body["data"].([]any)); n != 1 {
			t.Errorf("expected 1 filtered transaction, got %d", n)
		}
	})

	t.Run("filters_by_date_window", func(t *testing.T) {
		r, st := newTransactionRouter(t)
		st.AddTransaction(testutil.Expense(t, "2024-01-10", 100, "cat_groceries"))
		st.AddTransaction(testutil.Expense(t, "2024-02-10", 100, "cat_groceries"))
		st.AddTransaction(testutil.Expense(t, "2024-03-10", 100, "cat_groceries"))

		w := performRequest(r, http.MethodGet, "/transactions?from=2024-02-01&to=2024-02-28", nil)
		body := decodeBody(t, w)
		if n := len(body["data"].([]any)); n != 1 {
			t.Errorf("expected 1 transaction in window, got %d", n)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		r, st := newTransactionRouter(t)
		for i := 0; i < 5; i++ {
			st.AddTransaction(testutil.Expense(t, fmt.Sprintf("2024-01-0%d", i+1), 100, "cat_groceries"))
		}

		w := performRequest(r, http.MethodGet, "/transactions?page=2&page_size=2", nil)
		body := decodeBody(t, w)
		if n := len(body["data"].([]any)); n != 2 {
			t.Errorf("expected 2 items on page 2, got %d", n)
		}
		if body["total_items"].(float64) != 5 {
			t.Errorf("expected 5 total items, got %v", body["total_items"])
		}
		if body["total_pages"].(float64) != 3 {
			t.Errorf("expected 3 total pages, got %v", body["total_pages"])
		}
	})

	t.Run("rejects_bad_date_filter", func(t *testing.T) {
		r, _ := newTransactionRouter(t)
		w := performRequest(r, http.MethodGet, "/transactions?from=yesterday", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestGetTransactionEndpoint(t *testing.T) {
	r, st := newTransactionRouter(t)
	tx, _ := st.AddTransaction(testutil.Expense(t, "2024-01-10", 100, "cat_groceries"))

	t.Run("found", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/transactions/"+tx.ID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		w := performRequest(r, http.MethodGet, "/transactions/missing", nil)
		assertErrorCode(t, w, http.StatusNotFound, "TRANSACTION_NOT_FOUND")
	})
}

func TestUpdateTransactionEndpoint(t *testing.T) {
	r, st := newTransactionRouter(t)
	tx, _ := st.AddTransaction(testutil.Expense(t, "2024-01-10", 100, "cat_groceries"))

	t.Run("updates", func(t *testing.T) {
		w := performRequest(r, http.MethodPut, "/transactions/"+tx.ID, gin.H{
			"date":        "2024-01-12T00:00:00Z",
			"description": "Updated groceries",
			"amount":      250,
			"type":        "expense",
			"category_id": "cat_groceries",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		updated := body["transaction"].(map[string]any)
		if updated["amount"].(float64) != -250 {
			t.Errorf("expected amount -250, got %v", updated["amount"])
		}
	})

	t.Run("not_found", func(t *testing.T) {
		w := performRequest(r, http.MethodPut, "/transactions/missing", gin.H{
			"date":        "2024-01-12T00:00:00Z",
			"description": "Ghost",
			"amount":      250,
			"type":        "expense",
			"category_id": "cat_groceries",
		})
		assertErrorCode(t, w, http.StatusNotFound, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransactionEndpoint(t *testing.T) {
	r, st := newTransactionRouter(t)
	tx, _ := st.AddTransaction(testutil.Expense(t, "2024-01-10", 100, "cat_groceries"))

	w := performRequest(r, http.MethodDelete, "/transactions/"+tx.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = performRequest(r, http.MethodDelete, "/transactions/"+tx.ID, nil)
	assertErrorCode(t, w, http.StatusNotFound, "TRANSACTION_NOT_FOUND")
}
