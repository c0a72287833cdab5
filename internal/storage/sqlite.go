package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zkoymen/Dime-Darling/internal/logger"
	"github.com/zkoymen/Dime-Darling/internal/models"
)

// snapshotRow is the single-table key-value layout backing the snapshot slot.
type snapshotRow struct {
	Slot      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (snapshotRow) TableName() string { return "snapshots" }

// SQLiteAdapter stores the snapshot as a JSON blob in a SQLite database.
type SQLiteAdapter struct {
	db   *gorm.DB
	slot string
}

// NewSQLiteAdapter opens (or creates) the database at path and migrates the
// snapshot table. The slot names the entry this adapter reads and writes.
func NewSQLiteAdapter(path, slot string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}

	return &SQLiteAdapter{db: db, slot: slot}, nil
}

// Load reads and parses the snapshot slot. Absent or corrupt data yields an
// empty snapshot; the condition is logged, never surfaced.
func (a *SQLiteAdapter) Load() models.AppData {
	var row snapshotRow
	if err := a.db.First(&row, "slot = ?", a.slot).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Get().Warnw("failed to read snapshot, starting with empty state",
				"slot", a.slot,
				"error", err.Error(),
			)
		}
		return models.AppData{}
	}

	var data models.AppData
	if err := json.Unmarshal(row.Data, &data); err != nil {
		logger.Get().Warnw("snapshot is corrupt, starting with empty state",
			"slot", a.slot,
			"error", err.Error(),
		)
		return models.AppData{}
	}
	return data
}

// Save serializes the snapshot and overwrites the slot.
func (a *SQLiteAdapter) Save(data models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	row := snapshotRow{Slot: a.slot, Data: raw, UpdatedAt: time.Now()}
	if err := a.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
