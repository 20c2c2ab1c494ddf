// Location handler tests: tree integrity, visit tracking, and the
// ships-at-location derivation.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

func TestCreateLocationRequiresName(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateLocation(types.Location{Type: strPtr(types.LocationTypeMoon)})
	assert.ErrorIs(t, err, types.ErrMissingField)
}

func TestLocationServicesRoundTrip(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateLocation(types.Location{
		Name:     "Lorville",
		Type:     strPtr(types.LocationTypeCity),
		Services: []string{"refuel", "repair", "trade"},
	})
	require.NoError(t, err)

	got, err := s.GetLocation(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"refuel", "repair", "trade"}, got.Services)

	// A location created without services reads back nil, not empty.
	bare, err := s.CreateLocation(types.Location{Name: "Daymar"})
	require.NoError(t, err)
	got, err = s.GetLocation(bare.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Services)
}

func TestLocationTree(t *testing.T) {
	s := setupStore(t)

	system, err := s.CreateLocation(types.Location{Name: "Stanton", Type: strPtr(types.LocationTypeSystem)})
	require.NoError(t, err)
	planet, err := s.CreateLocation(types.Location{Name: "Crusader", ParentID: &system.ID})
	require.NoError(t, err)
	moon, err := s.CreateLocation(types.Location{Name: "Daymar", ParentID: &planet.ID})
	require.NoError(t, err)

	children, err := s.ListLocationsByParent(&planet.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, moon.ID, children[0].ID)

	roots, err := s.ListLocationsByParent(nil)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, system.ID, roots[0].ID)
}

func TestLocationCycleRejected(t *testing.T) {
	s := setupStore(t)

	a, err := s.CreateLocation(types.Location{Name: "A"})
	require.NoError(t, err)
	b, err := s.CreateLocation(types.Location{Name: "B", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := s.CreateLocation(types.Location{Name: "C", ParentID: &b.ID})
	require.NoError(t, err)

	// Reparenting A under its own grandchild closes a cycle.
	_, err = s.UpdateLocation(a.ID, types.LocationPatch{ParentID: &c.ID})
	assert.ErrorIs(t, err, types.ErrLocationCycle)

	// Self-parenting is the degenerate case.
	_, err = s.UpdateLocation(a.ID, types.LocationPatch{ParentID: &a.ID})
	assert.ErrorIs(t, err, types.ErrLocationCycle)

	// The rejected write left the tree untouched.
	got, err := s.GetLocation(a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
}

func TestIncrementVisit(t *testing.T) {
	s := setupStore(t)

	loc, err := s.CreateLocation(types.Location{Name: "Grim HEX"})
	require.NoError(t, err)
	assert.Zero(t, loc.VisitCount)
	assert.Nil(t, loc.FirstVisitedAt)

	first, err := s.IncrementVisit(loc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.VisitCount)
	require.NotNil(t, first.FirstVisitedAt)

	second, err := s.IncrementVisit(loc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.VisitCount)
	// First visit stays latched to the original timestamp.
	assert.Equal(t, *first.FirstVisitedAt, *second.FirstVisitedAt)

	_, err = s.IncrementVisit("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFavoriteLocations(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateLocation(types.Location{Name: "Daymar"})
	require.NoError(t, err)
	fav, err := s.CreateLocation(types.Location{Name: "Port Olisar", IsFavorite: true})
	require.NoError(t, err)

	got, err := s.FavoriteLocations()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fav.ID, got[0].ID)
}

func TestSearchLocations(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateLocation(types.Location{Name: "Port Olisar", Type: strPtr(types.LocationTypeStation)})
	require.NoError(t, err)
	_, err = s.CreateLocation(types.Location{Name: "Port Tressler", Type: strPtr(types.LocationTypeStation)})
	require.NoError(t, err)
	_, err = s.CreateLocation(types.Location{Name: "Daymar", Type: strPtr(types.LocationTypeMoon)})
	require.NoError(t, err)

	found, err := s.SearchLocations("port")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Type text matches too.
	found, err = s.SearchLocations("moon")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Daymar", found[0].Name)
}

func TestShipsAtLocation(t *testing.T) {
	s := setupStore(t)

	cutlass, err := s.CreateShip(types.Ship{Manufacturer: "Drake", Model: "Cutlass"})
	require.NoError(t, err)
	aurora, err := s.CreateShip(types.Ship{Manufacturer: "RSI", Model: "Aurora"})
	require.NoError(t, err)
	port, err := s.CreateLocation(types.Location{Name: "Port Olisar"})
	require.NoError(t, err)
	moon, err := s.CreateLocation(types.Location{Name: "Daymar"})
	require.NoError(t, err)

	// Cutlass was at the port, then left for the moon.
	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "docked", ShipID: &cutlass.ID, LocationID: &port.ID, Timestamp: 1000,
	})
	require.NoError(t, err)
	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "left", ShipID: &cutlass.ID, LocationID: &moon.ID, Timestamp: 2000,
	})
	require.NoError(t, err)
	// Aurora is still parked at the port.
	_, err = s.CreateJournalEntry(types.JournalEntry{
		Content: "parked", ShipID: &aurora.ID, LocationID: &port.ID, Timestamp: 1500,
	})
	require.NoError(t, err)

	atPort, err := s.ShipsAtLocation(port.ID)
	require.NoError(t, err)
	require.Len(t, atPort, 1)
	assert.Equal(t, aurora.ID, atPort[0].Ship.ID)
	assert.Equal(t, int64(1500), atPort[0].LastSeenAt)

	atMoon, err := s.ShipsAtLocation(moon.ID)
	require.NoError(t, err)
	require.Len(t, atMoon, 1)
	assert.Equal(t, cutlass.ID, atMoon[0].Ship.ID)
}
