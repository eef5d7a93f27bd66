package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions_Embedded(t *testing.T) {
	files, err := MigrationVersions(migrationFiles)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_create_employees.sql", "0002_create_attendance.sql"}, files)
}

func TestMigrationVersions_SortsAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0003_c.sql":   {Data: []byte("SELECT 1")},
		"migrations/0001_a.sql":   {Data: []byte("SELECT 1")},
		"migrations/README.md":    {Data: []byte("notes")},
		"migrations/sub/0002.sql": {Data: []byte("SELECT 1")},
	}

	files, err := MigrationVersions(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.sql", "0003_c.sql"}, files)
}
