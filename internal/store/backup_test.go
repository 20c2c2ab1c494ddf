// Export/import round-trip and failure-atomicity tests.
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

// seedStore populates one row in most tables so round-trip tests cover
// nullable columns, list columns, and derived fields together.
func seedStore(t *testing.T, s *Store) {
	t.Helper()

	ship, err := s.CreateShip(types.Ship{
		Manufacturer: "Drake", Model: "Cutlass Black",
		Nickname: strPtr("Rustbucket"), IsOwned: true,
	})
	require.NoError(t, err)

	loc, err := s.CreateLocation(types.Location{
		Name: "Port Olisar", Services: []string{"refuel", "repair"},
	})
	require.NoError(t, err)

	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "docked for the night", ShipID: &ship.ID, LocationID: &loc.ID,
		Tags: []string{"travel"},
	})
	require.NoError(t, err)

	_, err = s.CreateTransaction(types.Transaction{
		Amount: -1200, Category: types.CategoryFuel, LocationID: &loc.ID,
	})
	require.NoError(t, err)

	run, err := s.CreateCargoRun(types.CargoRun{Commodity: "Laranite", Quantity: 96, BuyPrice: 28})
	require.NoError(t, err)
	_, err = s.CompleteCargoRun(run.ID, 31)
	require.NoError(t, err)

	_, err = s.CreateMission(types.Mission{Title: "Clear Kareah", Reward: int64Ptr(9000)})
	require.NoError(t, err)

	_, err = s.CreateScreenshot(types.Screenshot{
		FilePath: "/captures/olisar.png", LocationID: &loc.ID,
	})
	require.NoError(t, err)

	_, err = s.StartSession(int64Ptr(100_000))
	require.NoError(t, err)
}

func TestExportData(t *testing.T) {
	s := setupStore(t)
	seedStore(t, s)

	b, err := s.ExportData()
	require.NoError(t, err)

	assert.Equal(t, types.BackupVersion, b.Version)
	assert.NotEmpty(t, b.ExportedAt)
	assert.Len(t, b.Data.Ships, 1)
	assert.Len(t, b.Data.Locations, 1)
	assert.Len(t, b.Data.JournalEntries, 1)
	assert.Len(t, b.Data.Transactions, 1)
	assert.Len(t, b.Data.CargoRuns, 1)
	assert.Len(t, b.Data.Missions, 1)
	assert.Len(t, b.Data.Screenshots, 1)
	assert.Len(t, b.Data.Sessions, 1)
}

func TestExportImportRoundTrip(t *testing.T) {
	s := setupStore(t)
	seedStore(t, s)

	before, err := s.ExportData()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err = s.ExportToFile(path)
	require.NoError(t, err)

	require.NoError(t, s.ClearData())
	empty, err := s.ExportData()
	require.NoError(t, err)
	assert.Empty(t, empty.Data.Ships)
	assert.Empty(t, empty.Data.Sessions)

	require.NoError(t, s.ImportFromFile(path))

	after, err := s.ExportData()
	require.NoError(t, err)
	// Entity data survives byte-for-byte; only the envelope timestamp moves.
	assert.Equal(t, before.Data, after.Data)
}

func TestImportRejectsInvalidBackup(t *testing.T) {
	s := setupStore(t)
	seedStore(t, s)

	err := s.ImportData(nil)
	assert.ErrorIs(t, err, types.ErrInvalidBackup)

	err = s.ImportData(&types.Backup{})
	assert.ErrorIs(t, err, types.ErrInvalidBackup)

	dir := t.TempDir()

	path := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	err = s.ImportFromFile(path)
	assert.ErrorIs(t, err, types.ErrInvalidBackup)

	// A version tag alone is not a backup; a document without a data
	// object must be rejected, not imported as an empty snapshot.
	path = filepath.Join(dir, "no-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0"}`), 0o644))
	err = s.ImportFromFile(path)
	assert.ErrorIs(t, err, types.ErrInvalidBackup)

	path = filepath.Join(dir, "null-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","data":null}`), 0o644))
	err = s.ImportFromFile(path)
	assert.ErrorIs(t, err, types.ErrInvalidBackup)

	// The rejected imports touched nothing.
	ships, err := s.ListShips()
	require.NoError(t, err)
	assert.Len(t, ships, 1)
}

func TestImportReplacesExistingData(t *testing.T) {
	s := setupStore(t)
	seedStore(t, s)

	b := &types.Backup{
		Version: types.BackupVersion,
		Data: types.BackupData{
			Ships: []types.Ship{{
				ID: "ship-1", Manufacturer: "Anvil", Model: "Carrack",
				CreatedAt: 1000, UpdatedAt: 1000,
			}},
		},
	}
	require.NoError(t, s.ImportData(b))

	ships, err := s.ListShips()
	require.NoError(t, err)
	require.Len(t, ships, 1)
	// Imported rows keep their original ids.
	assert.Equal(t, "ship-1", ships[0].ID)

	// Every other table was wiped.
	missions, err := s.ListMissions(types.QueryOptions{})
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestClearData(t *testing.T) {
	s := setupStore(t)
	seedStore(t, s)

	require.NoError(t, s.ClearData())

	count, err := s.CountJournalEntries()
	require.NoError(t, err)
	assert.Zero(t, count)

	balance, err := s.Balance()
	require.NoError(t, err)
	assert.Zero(t, balance)
}
