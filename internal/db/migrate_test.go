package db_test

import (
	"testing"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{
		"persons", "projects", "flat_types", "project_officers",
		"applications", "officer_registrations", "enquiries",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Re-running the full set must not fail.
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_EnforcesProjectNameUniqueness(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO persons (nric, name, age, marital_status, role, created_at, updated_at)
		VALUES ('T0000001M', 'M', 40, 'MARRIED', 'MANAGER', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	insert := `INSERT INTO projects (id, name, manager_nric, neighborhood, open_date, close_date, created_at, updated_at)
		VALUES (?, ?, 'T0000001M', 'Yishun', '2024-01-01', '2024-12-31', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`

	_, err = database.Exec(insert, "p1", "Yishun Meadows")
	require.NoError(t, err)

	_, err = database.Exec(insert, "p2", "YISHUN MEADOWS")
	assert.Error(t, err, "project names are unique case-insensitively")
}
