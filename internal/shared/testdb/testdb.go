// Package testdb opens a migrated, file-backed SQLite database for
// integration tests.
package testdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"leaveflow/internal/shared/connection"
	"leaveflow/internal/shared/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type DB struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

func Open(t testing.TB) DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leaveflow.db")
	gdb, err := connection.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return DB{Gorm: gdb, SQL: sqlDB}
}
