package storage

import (
	"encoding/json"
	"sync"

	"github.com/zkoymen/Dime-Darling/internal/models"
)

// MemoryAdapter keeps the serialized snapshot in memory. It goes through
// the same JSON round trip as the SQLite adapter so tests exercise the
// real persisted shape.
type MemoryAdapter struct {
	mu    sync.Mutex
	blob  []byte
	saves int
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

// Load parses the held blob, or returns an empty snapshot when nothing has
// been saved or the blob does not parse.
func (a *MemoryAdapter) Load() models.AppData {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.blob == nil {
		return models.AppData{}
	}
	var data models.AppData
	if err := json.Unmarshal(a.blob, &data); err != nil {
		return models.AppData{}
	}
	return data
}

// Save serializes and replaces the held blob.
func (a *MemoryAdapter) Save(data models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.blob = raw
	a.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (a *MemoryAdapter) Saves() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saves
}

// SetBlob replaces the raw stored bytes, bypassing serialization. Used by
// tests to simulate corrupt persisted data.
func (a *MemoryAdapter) SetBlob(raw []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blob = raw
}
