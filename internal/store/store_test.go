// Lifecycle tests: open, close, reopen, and additive column repair.
package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

// setupStore opens a store in a fresh temp directory and schedules its
// close.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "deckhand.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "deckhand.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
	assert.FileExists(t, path)
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "deckhand.db"))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestOperationsAfterClose(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "deckhand.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.ListShips()
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.CreateShip(types.Ship{Manufacturer: "RSI", Model: "Aurora"})
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	assert.ErrorIs(t, s.ClearData(), types.ErrStoreClosed)
}

func TestReopenPreservesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckhand.db")

	s, err := Open(path)
	require.NoError(t, err)
	created, err := s.CreateShip(types.Ship{Manufacturer: "Drake", Model: "Cutlass", IsOwned: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetShip(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cutlass", got.Model)
	assert.True(t, got.IsOwned)
}

func TestColumnRepairOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckhand.db")

	// Simulate a database created before ships carried a wiki_url column.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE ships (
		id TEXT PRIMARY KEY,
		manufacturer TEXT NOT NULL,
		model TEXT NOT NULL,
		nickname TEXT,
		variant TEXT,
		role TEXT,
		is_owned INTEGER DEFAULT 1,
		acquired_at INTEGER,
		acquired_price INTEGER,
		notes TEXT,
		image_path TEXT,
		created_at INTEGER,
		updated_at INTEGER
	)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	url := "https://example.com/wiki/aurora"
	created, err := s.CreateShip(types.Ship{Manufacturer: "RSI", Model: "Aurora", WikiURL: &url})
	require.NoError(t, err)

	got, err := s.GetShip(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.WikiURL)
	assert.Equal(t, url, *got.WikiURL)
}
