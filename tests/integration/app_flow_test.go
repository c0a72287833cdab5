package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/zkoymen/Dime-Darling/internal/handlers"
	"github.com/zkoymen/Dime-Darling/internal/storage"
	"github.com/zkoymen/Dime-Darling/internal/store"
	"github.com/zkoymen/Dime-Darling/internal/suggest"
	"github.com/zkoymen/Dime-Darling/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Register()
	os.Exit(m.Run())
}

type staticSuggester struct{}

func (staticSuggester) Suggest(context.Context, suggest.Request) (*suggest.Suggestion, error) {
	return &suggest.Suggestion{SuggestedCategory: "Groceries", Confidence: 0.8}, nil
}

// newApp wires a router against a SQLite snapshot database at path.
func newApp(t *testing.T, path string) (*gin.Engine, *storage.SQLiteAdapter) {
	t.Helper()

	adapter, err := storage.NewSQLiteAdapter(path, "dimeDarlingData")
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}

	st := store.New(adapter)
	st.Load()
	return handlers.NewRouter(st, staticSuggester{}), adapter
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return body
}

func TestApplicationFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	router, adapter := newApp(t, path)

	// Health reports the completed initial load.
	w := do(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health check failed: %d", w.Code)
	}
	if body := decode(t, w); body["loaded"] != true {
		t.Fatalf("expected loaded store, got %v", body["loaded"])
	}

	// Create a user category.
	w = do(t, router, http.MethodPost, "/api/v1/categories", gin.H{
		"name":  "Hobbies",
		"icon":  "Target",
		"color": "#FF5722",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create category: %d %s", w.Code, w.Body.String())
	}
	catID := decode(t, w)["category"].(map[string]any)["id"].(string)

	// Record spending against it.
	w = do(t, router, http.MethodPost, "/api/v1/transactions", gin.H{
		"date":        "2024-06-05T00:00:00Z",
		"description": "Model paints",
		"amount":      3500,
		"type":        "expense",
		"category_id": catID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create transaction: %d %s", w.Code, w.Body.String())
	}
	txID := decode(t, w)["transaction"].(map[string]any)["id"].(string)

	// Budget the category and check the derived status.
	w = do(t, router, http.MethodPost, "/api/v1/budgets", gin.H{
		"category_id": catID,
		"limit":       10000,
		"period":      "monthly",
		"start_date":  "2024-06-01T00:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create budget: %d %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/v1/budgets", nil)
	budgets := decode(t, w)["budgets"].([]any)
	if spent := budgets[0].(map[string]any)["spent"].(float64); spent != 3500 {
		t.Fatalf("expected derived spent 3500, got %v", spent)
	}

	// Ask for a category suggestion.
	w = do(t, router, http.MethodPost, "/api/v1/suggest-category", gin.H{
		"description": "Hobby store purchase",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("suggestion failed: %d %s", w.Code, w.Body.String())
	}

	// Simulate an application restart: everything must come back from disk.
	if err := adapter.Close(); err != nil {
		t.Fatalf("failed to close adapter: %v", err)
	}
	router, adapter = newApp(t, path)
	defer adapter.Close()

	w = do(t, router, http.MethodGet, "/api/v1/transactions/"+txID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("transaction did not survive restart: %d", w.Code)
	}
	tx := decode(t, w)["transaction"].(map[string]any)
	if tx["amount"].(float64) != -3500 {
		t.Fatalf("amount did not survive restart: %v", tx["amount"])
	}

	// Deleting the category reassigns its transactions to the fallback.
	w = do(t, router, http.MethodDelete, "/api/v1/categories/"+catID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("failed to delete category: %d %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/v1/transactions/"+txID, nil)
	tx = decode(t, w)["transaction"].(map[string]any)
	if tx["category_id"] != "cat_other" {
		t.Fatalf("expected reassignment to cat_other, got %v", tx["category_id"])
	}
}
