package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

func TestCreateJournalEntry(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateJournalEntry(types.JournalEntry{
		Title:   strPtr("First flight"),
		Content: "Took the Aurora out past the moons.",
		Tags:    []string{"flight", "exploration"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	// Timestamp defaults to now when omitted.
	assert.NotZero(t, created.Timestamp)

	got, err := s.GetJournalEntry(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
}

func TestCreateJournalEntryRequiresContent(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateJournalEntry(types.JournalEntry{Title: strPtr("empty")})
	assert.ErrorIs(t, err, types.ErrMissingField)
}

func TestListJournalEntriesPagination(t *testing.T) {
	s := setupStore(t)

	for i := int64(1); i <= 5; i++ {
		_, err := s.CreateJournalEntry(types.JournalEntry{
			Content:   "entry",
			Timestamp: i * 1000,
		})
		require.NoError(t, err)
	}

	all, err := s.ListJournalEntries(types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	// Newest first.
	assert.Equal(t, int64(5000), all[0].Timestamp)

	page, err := s.ListJournalEntries(types.QueryOptions{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3000), page[0].Timestamp)
	assert.Equal(t, int64(2000), page[1].Timestamp)

	count, err := s.CountJournalEntries()
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestListJournalEntriesByType(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateJournalEntry(types.JournalEntry{Content: "fight", EntryType: strPtr(types.EntryTypeCombat)})
	require.NoError(t, err)
	_, err = s.CreateJournalEntry(types.JournalEntry{Content: "haul", EntryType: strPtr(types.EntryTypeCargo)})
	require.NoError(t, err)

	combat, err := s.ListJournalEntriesByType(types.EntryTypeCombat)
	require.NoError(t, err)
	require.Len(t, combat, 1)
	assert.Equal(t, "fight", combat[0].Content)
}

func TestJournalFavoritesAndSearch(t *testing.T) {
	s := setupStore(t)

	fav, err := s.CreateJournalEntry(types.JournalEntry{
		Content: "Found a derelict Reclaimer on Daymar", IsFavorite: true,
	})
	require.NoError(t, err)
	_, err = s.CreateJournalEntry(types.JournalEntry{Content: "Routine patrol"})
	require.NoError(t, err)

	favs, err := s.FavoriteJournalEntries()
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, fav.ID, favs[0].ID)

	found, err := s.SearchJournalEntries("reclaimer")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, fav.ID, found[0].ID)
}

func TestUpdateJournalEntryTags(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateJournalEntry(types.JournalEntry{Content: "log", Tags: []string{"a"}})
	require.NoError(t, err)

	tags := []string{"a", "b"}
	updated, err := s.UpdateJournalEntry(created.ID, types.JournalEntryPatch{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, tags, updated.Tags)

	_, err = s.UpdateJournalEntry("no-such-id", types.JournalEntryPatch{Content: strPtr("x")})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
