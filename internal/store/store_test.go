package store

import (
	"path/filepath"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"

	"brasserie/internal/database"
)

// testDB opens a throwaway sqlite database migrated to the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}
