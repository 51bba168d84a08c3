package database

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSQLite_CreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "leads.db")

	db, err := InitializeSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var tables []string
	err = db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('leads_table', 'api_records_table') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"api_records_table", "leads_table"}, tables)

	var seeded int
	require.NoError(t, db.Get(&seeded, "SELECT COUNT(*) FROM leads_table WHERE lead_id = ?", "1234567890"))
	assert.Equal(t, 1, seeded)

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "leads.db")

	db, err := InitializeSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))

	versions, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0001_create_leads_table",
		"0002_create_api_records_table",
		"0003_seed_example_lead",
	}, versions)
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_b.sql": {Data: []byte("SELECT 2;")},
		"m/0001_a.sql": {Data: []byte("SELECT 1;")},
		"m/readme.txt": {Data: []byte("ignored")},
	}

	migrations, err := loadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "0001_a", migrations[0].Version)
	assert.Equal(t, "0002_b.sql", migrations[1].Filename)
	assert.Equal(t, "SELECT 2;", migrations[1].SQL)
}

func TestLoadMigrations_EmptyDir(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{}, "m")
	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(Options{Driver: "postgres"})
	assert.Error(t, err)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(Options{
		Host:     "solar-db.example.internal",
		Port:     3306,
		Name:     "solar_db",
		Username: "admin",
		Password: "s3cret",
	})

	assert.True(t, strings.HasPrefix(dsn, "admin:s3cret@tcp(solar-db.example.internal:3306)/solar_db?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
}

func TestOpenMySQL_RequiresHost(t *testing.T) {
	_, err := OpenMySQL(Options{Driver: DriverMySQL, Name: "solar_db"})
	assert.Error(t, err)
}
