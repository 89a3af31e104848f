package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect("mysql", "dsn")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported db driver")
}

func TestMigrate_CreatesTable(t *testing.T) {
	gdb, err := Connect("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(gdb, "entries_under_test"))
	require.True(t, gdb.Migrator().HasTable("entries_under_test"))

	// running again is a no-op
	require.NoError(t, Migrate(gdb, "entries_under_test"))
}
