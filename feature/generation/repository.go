package generation

import (
	"context"
	"errors"
	"fmt"

	"item-bias/core/database"

	"gorm.io/gorm"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Repository stores generation reports.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a Repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the report table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Report{}); err != nil {
		return fmt.Errorf("migrate %s: %w", Report{}.TableName(), err)
	}
	return nil
}

// Check verifies that the report table has every column the service uses.
func (r *Repository) Check(ctx context.Context) error {
	table := Report{}.TableName()
	missing, err := database.MissingColumns(r.db.WithContext(ctx), table, reportColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s lacks %v: %w", table, missing, ErrStaleSchema)
	}
	return nil
}

// Save inserts a report.
func (r *Repository) Save(ctx context.Context, report *Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return nil
}

// Get returns the report with id, or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*Report, error) {
	var report Report
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	return &report, nil
}

// List returns the most recent reports, newest first. Out of range limits
// fall back to the default.
func (r *Repository) List(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	var reports []Report
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// Delete removes the report with id, or returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Report{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete report %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return nil
}
