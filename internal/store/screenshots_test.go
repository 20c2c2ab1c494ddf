package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

func TestCreateScreenshot(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateScreenshot(types.Screenshot{
		FilePath: "/captures/sunrise-daymar.png",
		Caption:  strPtr("Sunrise over Daymar"),
		Tags:     []string{"scenery"},
	})
	require.NoError(t, err)

	assert.NotZero(t, created.TakenAt)

	got, err := s.GetScreenshot(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)

	_, err = s.CreateScreenshot(types.Screenshot{Caption: strPtr("no file")})
	assert.ErrorIs(t, err, types.ErrMissingField)
}

func TestScreenshotsByLocation(t *testing.T) {
	s := setupStore(t)

	moon, err := s.CreateLocation(types.Location{Name: "Daymar"})
	require.NoError(t, err)

	_, err = s.CreateScreenshot(types.Screenshot{
		FilePath: "/captures/a.png", LocationID: &moon.ID, TakenAt: 2000,
	})
	require.NoError(t, err)
	_, err = s.CreateScreenshot(types.Screenshot{
		FilePath: "/captures/b.png", LocationID: &moon.ID, TakenAt: 1000,
	})
	require.NoError(t, err)
	_, err = s.CreateScreenshot(types.Screenshot{FilePath: "/captures/c.png"})
	require.NoError(t, err)

	got, err := s.ListScreenshotsByLocation(moon.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "/captures/a.png", got[0].FilePath)
}

func TestFavoriteScreenshots(t *testing.T) {
	s := setupStore(t)

	fav, err := s.CreateScreenshot(types.Screenshot{FilePath: "/captures/best.png", IsFavorite: true})
	require.NoError(t, err)
	_, err = s.CreateScreenshot(types.Screenshot{FilePath: "/captures/meh.png"})
	require.NoError(t, err)

	got, err := s.FavoriteScreenshots()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fav.ID, got[0].ID)
}

func TestUpdateScreenshot(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateScreenshot(types.Screenshot{FilePath: "/captures/a.png"})
	require.NoError(t, err)

	tags := []string{"combat", "pyro"}
	fav := true
	updated, err := s.UpdateScreenshot(created.ID, types.ScreenshotPatch{
		Caption:    strPtr("dogfight"),
		Tags:       &tags,
		IsFavorite: &fav,
	})
	require.NoError(t, err)
	assert.Equal(t, tags, updated.Tags)
	assert.True(t, updated.IsFavorite)

	_, err = s.UpdateScreenshot("no-such-id", types.ScreenshotPatch{Caption: strPtr("x")})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSearchScreenshots(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateScreenshot(types.Screenshot{
		FilePath: "/captures/a.png", Caption: strPtr("Sunrise over Daymar"),
	})
	require.NoError(t, err)
	_, err = s.CreateScreenshot(types.Screenshot{FilePath: "/captures/b.png"})
	require.NoError(t, err)

	found, err := s.SearchScreenshots("daymar")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
