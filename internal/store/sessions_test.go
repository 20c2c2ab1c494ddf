// Session tests pin the single-active invariant: starting a session
// force-ends everything still open.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

func TestStartSession(t *testing.T) {
	s := setupStore(t)

	// Nothing active in a fresh store.
	active, err := s.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)

	started, err := s.StartSession(int64Ptr(500_000))
	require.NoError(t, err)
	assert.True(t, started.Active())
	require.NotNil(t, started.StartingBalance)
	assert.Equal(t, int64(500_000), *started.StartingBalance)

	active, err = s.ActiveSession()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, started.ID, active.ID)
}

func TestStartSessionForceEndsPrevious(t *testing.T) {
	s := setupStore(t)

	first, err := s.StartSession(nil)
	require.NoError(t, err)
	second, err := s.StartSession(nil)
	require.NoError(t, err)

	// Only the newest session remains open.
	sessions, err := s.ListSessions(types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	got, err := s.GetSession(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndedAt)
	require.NotNil(t, got.DurationMinutes)
	assert.GreaterOrEqual(t, *got.DurationMinutes, int64(0))

	active, err := s.ActiveSession()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)
}

func TestEndSession(t *testing.T) {
	s := setupStore(t)

	started, err := s.StartSession(int64Ptr(100))
	require.NoError(t, err)

	ended, err := s.EndSession(started.ID, int64Ptr(250))
	require.NoError(t, err)
	assert.False(t, ended.Active())
	require.NotNil(t, ended.DurationMinutes)
	assert.GreaterOrEqual(t, *ended.DurationMinutes, int64(0))
	require.NotNil(t, ended.EndingBalance)
	assert.Equal(t, int64(250), *ended.EndingBalance)

	active, err := s.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = s.EndSession("no-such-id", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateSession(t *testing.T) {
	s := setupStore(t)

	started, err := s.StartSession(nil)
	require.NoError(t, err)

	updated, err := s.UpdateSession(started.ID, types.SessionPatch{
		Notes:           strPtr("mining with the org"),
		StartingBalance: int64Ptr(42),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "mining with the org", *updated.Notes)
	require.NotNil(t, updated.StartingBalance)
	assert.Equal(t, int64(42), *updated.StartingBalance)

	_, err = s.UpdateSession("no-such-id", types.SessionPatch{Notes: strPtr("x")})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteSession(t *testing.T) {
	s := setupStore(t)

	started, err := s.StartSession(nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession(started.ID))
	require.NoError(t, s.DeleteSession(started.ID))

	got, err := s.GetSession(started.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
