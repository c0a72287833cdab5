// Package storage persists the full application snapshot to local durable
// storage. One named slot holds one JSON blob; there is no versioning or
// migration scheme, so schema changes are breaking.
package storage

import "github.com/zkoymen/Dime-Darling/internal/models"

// Adapter reads and writes the application snapshot.
//
// Load degrades to an empty snapshot when the slot is absent, unreadable,
// or corrupt. It never returns an error: missing persisted state must not
// prevent the application from starting.
type Adapter interface {
	Load() models.AppData
	Save(data models.AppData) error
}
