package recording_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"na15"
	"na15/debug"
	"na15/recording"
)

func setupTestDB(t *testing.T) (recording.Recorder, *sql.DB) {
	path := filepath.Join(t.TempDir(), "test.sqlite3")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)

	rec := recording.NewWithDB(db)
	t.Cleanup(func() { _ = rec.Close() })

	return rec, db
}

func TestRecorder_CreateTable(t *testing.T) {
	rec, db := setupTestDB(t)

	task := struct {
		ID   int
		Name string
	}{}

	require.NoError(t, rec.CreateTable("test_table", task))

	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='test_table';").Scan(&tableName)
	require.NoError(t, err, "Table should be created")
	assert.Equal(t, "test_table", tableName)
	assert.Equal(t, []string{"test_table"}, rec.ListTables())

	assert.Error(t, rec.CreateTable("test_table", task), "duplicate table")
	assert.Error(t, rec.CreateTable("bad name;", task), "invalid name")
	assert.Error(t, rec.CreateTable("slices", struct{ V []float64 }{}), "slice field")
	assert.Error(t, rec.CreateTable("scalar", 3), "not a struct")
}

func TestRecorder_InsertAndFlush(t *testing.T) {
	rec, db := setupTestDB(t)

	type task struct {
		ID   int
		Name string
	}

	require.NoError(t, rec.CreateTable("test_table", task{}))
	require.NoError(t, rec.InsertData("test_table", task{1, "Task1"}))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM test_table").Scan(&count))
	assert.Equal(t, 0, count, "Data should be buffered before Flush")

	require.NoError(t, rec.Flush())

	var id int
	var name string
	err := db.QueryRow("SELECT ID, Name FROM test_table WHERE ID=1;").Scan(&id, &name)
	require.NoError(t, err, "Data should be inserted")
	assert.Equal(t, 1, id)
	assert.Equal(t, "Task1", name)

	assert.Error(t, rec.InsertData("missing", task{}))
	assert.Error(t, rec.InsertData("test_table", struct{ ID int }{}))
}

func TestNew_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.sqlite3")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := recording.New(path)
	assert.Error(t, err)
}

func TestRecordSweep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep")
	rec, err := recording.New(path)
	require.NoError(t, err)

	list := &debug.Record{}
	ch := na15.NewChannel()
	ch.Debug = list
	require.NoError(t, ch.Sweep(-120, -60, 20, 24, nil))

	runID, err := recording.RecordSweep(rec, "steady_state", "", list)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	again, err := recording.RecordSweep(rec, "steady_state", "second", list)
	require.NoError(t, err)
	assert.Equal(t, "second", again)
	require.NoError(t, rec.Close())

	db, err := sql.Open("sqlite3", path+".sqlite3")
	require.NoError(t, err)
	defer db.Close()

	rows, err := recording.ReadRows(db, "steady_state", runID)
	require.NoError(t, err)
	require.Len(t, rows, list.Len())
	for i, r := range rows {
		assert.Equal(t, list.Voltage[i], r.Voltage)
		assert.Equal(t, 24.0, r.Celsius)
		assert.Equal(t, list.Occupancy[i], r.Occupancy())
		assert.InDelta(t, list.Occupancy[i].Available(), r.Available, 1e-15)
	}

	_, err = recording.ReadRows(db, "drop table;", runID)
	assert.Error(t, err)
}
