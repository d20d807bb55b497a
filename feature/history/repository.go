package history

import (
	"context"
	"errors"
	"fmt"

	"stock-audit/core/database"
	"stock-audit/core/report"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("audit record not found")

	// ErrNoDatabase is returned when the archive has no database connection.
	ErrNoDatabase = errors.New("database not connected")
)

// DefaultLimit caps List when no limit is given.
const DefaultLimit = 50

// Repository stores audit records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db. db may be nil.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the archive table and returns any expected
// columns still absent afterwards.
func (r *Repository) Migrate() ([]string, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}
	if err := r.db.AutoMigrate(&AuditRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit records: %w", err)
	}
	return database.MissingColumns(r.db, AuditRecord{}.TableName(), recordColumns...)
}

// Save archives an exported report.
func (r *Repository) Save(ctx context.Context, rep report.Report, objectKey string, format report.Format) error {
	if r.db == nil {
		return ErrNoDatabase
	}
	rec := NewRecord(rep, objectKey, format)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save audit record: %w", err)
	}
	return nil
}

// List returns the newest records first.
func (r *Repository) List(ctx context.Context, limit int) ([]AuditRecord, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var records []AuditRecord
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return records, nil
}

// Get returns the record with id.
func (r *Repository) Get(ctx context.Context, id string) (*AuditRecord, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}

	var rec AuditRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit record: %w", err)
	}
	return &rec, nil
}
