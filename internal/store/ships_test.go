// Ship handler tests, including the journal-derived location queries.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestCreateShip(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateShip(types.Ship{
		Manufacturer: "Drake",
		Model:        "Cutlass Black",
		Nickname:     strPtr("Rustbucket"),
		IsOwned:      true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.GetShip(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestCreateShipRequiresFields(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateShip(types.Ship{Model: "Aurora"})
	assert.ErrorIs(t, err, types.ErrMissingField)

	_, err = s.CreateShip(types.Ship{Manufacturer: "RSI"})
	assert.ErrorIs(t, err, types.ErrMissingField)
}

func TestGetShipAbsent(t *testing.T) {
	s := setupStore(t)

	got, err := s.GetShip("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateShip(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateShip(types.Ship{Manufacturer: "RSI", Model: "Aurora MR", IsOwned: true})
	require.NoError(t, err)

	owned := false
	updated, err := s.UpdateShip(created.ID, types.ShipPatch{
		Nickname: strPtr("Starter"),
		IsOwned:  &owned,
	})
	require.NoError(t, err)

	assert.Equal(t, "Starter", *updated.Nickname)
	assert.False(t, updated.IsOwned)
	// Untouched fields survive the merge.
	assert.Equal(t, "Aurora MR", updated.Model)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestUpdateShipMissing(t *testing.T) {
	s := setupStore(t)

	_, err := s.UpdateShip("no-such-id", types.ShipPatch{Nickname: strPtr("x")})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteShipIdempotent(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateShip(types.Ship{Manufacturer: "Anvil", Model: "Carrack"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteShip(created.ID))
	require.NoError(t, s.DeleteShip(created.ID))

	got, err := s.GetShip(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchShips(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateShip(types.Ship{Manufacturer: "Drake", Model: "Cutlass Black"})
	require.NoError(t, err)
	_, err = s.CreateShip(types.Ship{Manufacturer: "RSI", Model: "Aurora", Nickname: strPtr("cutter")})
	require.NoError(t, err)
	_, err = s.CreateShip(types.Ship{Manufacturer: "Anvil", Model: "Carrack"})
	require.NoError(t, err)

	// Matches model on one ship and nickname on another, case-insensitively.
	found, err := s.SearchShips("CUT")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = s.SearchShips("anvil")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Carrack", found[0].Model)
}

func TestShipCurrentLocation(t *testing.T) {
	s := setupStore(t)

	ship, err := s.CreateShip(types.Ship{Manufacturer: "Drake", Model: "Cutlass"})
	require.NoError(t, err)
	port, err := s.CreateLocation(types.Location{Name: "Port Olisar"})
	require.NoError(t, err)
	moon, err := s.CreateLocation(types.Location{Name: "Daymar"})
	require.NoError(t, err)

	// No location-bearing entries yet.
	loc, err := s.ShipCurrentLocation(ship.ID)
	require.NoError(t, err)
	assert.Nil(t, loc)

	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "docked", ShipID: &ship.ID, LocationID: &port.ID, Timestamp: 1000,
	})
	require.NoError(t, err)
	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "landed", ShipID: &ship.ID, LocationID: &moon.ID, Timestamp: 2000,
	})
	require.NoError(t, err)
	// Entries without a location never count.
	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "in transit", ShipID: &ship.ID, Timestamp: 3000,
	})
	require.NoError(t, err)

	loc, err = s.ShipCurrentLocation(ship.ID)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, moon.ID, loc.LocationID)
	require.NotNil(t, loc.LocationName)
	assert.Equal(t, "Daymar", *loc.LocationName)
	assert.Equal(t, int64(2000), loc.Timestamp)

	history, err := s.ShipLocationHistory(ship.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, moon.ID, history[0].LocationID)
	assert.Equal(t, port.ID, history[1].LocationID)
}
