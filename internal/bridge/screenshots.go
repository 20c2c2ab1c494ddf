package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerScreenshotMethods() {
	s.register("db:screenshots:findAll", func(args []json.RawMessage) (any, error) {
		opts, err := decodeArg[types.QueryOptions](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListScreenshots(opts)
	})
	s.register("db:screenshots:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetScreenshot(id)
	})
	s.register("db:screenshots:findByLocation", func(args []json.RawMessage) (any, error) {
		locationID, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListScreenshotsByLocation(locationID)
	})
	s.register("db:screenshots:getFavorites", func(args []json.RawMessage) (any, error) {
		return s.store.FavoriteScreenshots()
	})
	s.register("db:screenshots:create", func(args []json.RawMessage) (any, error) {
		sc, err := decodeArg[types.Screenshot](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CreateScreenshot(sc)
	})
	s.register("db:screenshots:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.ScreenshotPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateScreenshot(id, patch)
	})
	s.register("db:screenshots:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteScreenshot(id)
	})
	s.register("db:screenshots:search", func(args []json.RawMessage) (any, error) {
		query, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.SearchScreenshots(query)
	})
}
