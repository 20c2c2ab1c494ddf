package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerLocationMethods() {
	s.register("db:locations:findAll", func(args []json.RawMessage) (any, error) {
		return s.store.ListLocations()
	})
	s.register("db:locations:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetLocation(id)
	})
	s.register("db:locations:findByParentId", func(args []json.RawMessage) (any, error) {
		parentID, err := decodeArg[*string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListLocationsByParent(parentID)
	})
	s.register("db:locations:getFavorites", func(args []json.RawMessage) (any, error) {
		return s.store.FavoriteLocations()
	})
	s.register("db:locations:create", func(args []json.RawMessage) (any, error) {
		loc, err := decodeArg[types.Location](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CreateLocation(loc)
	})
	s.register("db:locations:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.LocationPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateLocation(id, patch)
	})
	s.register("db:locations:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteLocation(id)
	})
	s.register("db:locations:search", func(args []json.RawMessage) (any, error) {
		query, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.SearchLocations(query)
	})
	s.register("db:locations:incrementVisit", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.IncrementVisit(id)
	})
	s.register("db:locations:getShipsAtLocation", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ShipsAtLocation(id)
	})
}
