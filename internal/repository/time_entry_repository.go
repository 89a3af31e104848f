package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Aadithya-J/time_management/internal/models"
)

var ErrNotFound = errors.New("time entry not found")

type TimeEntryRepository struct {
	db    *gorm.DB
	table string
}

func NewTimeEntryRepository(db *gorm.DB, table string) *TimeEntryRepository {
	return &TimeEntryRepository{db: db, table: table}
}

func (r *TimeEntryRepository) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *TimeEntryRepository) Create(ctx context.Context, entry *models.TimeEntry) error {
	return r.query(ctx).Create(entry).Error
}

// List returns every entry, oldest first.
func (r *TimeEntryRepository) List(ctx context.Context) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	err := r.query(ctx).Order("created_at asc").Order("id asc").Find(&entries).Error
	return entries, err
}

func (r *TimeEntryRepository) GetByID(ctx context.Context, id string) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := r.query(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Delete removes the entry with the given id. Deleting an absent id is not an error.
func (r *TimeEntryRepository) Delete(ctx context.Context, id string) error {
	return r.query(ctx).Where("id = ?", id).Delete(&models.TimeEntry{}).Error
}
