package db

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/Aadithya-J/time_management/internal/models"
)

func Migrations(table string) []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20250914_create_time_entries_table",
			Migrate: func(tx *gorm.DB) error {
				return tx.Table(table).AutoMigrate(&models.TimeEntry{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(table)
			},
		},
	}
}

// Migrate applies all pending migrations for the entry table.
func Migrate(gdb *gorm.DB, table string) error {
	m := gormigrate.New(gdb, gormigrate.DefaultOptions, Migrations(table))
	return m.Migrate()
}
