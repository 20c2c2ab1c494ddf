package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerShipMethods() {
	s.register("db:ships:findAll", func(args []json.RawMessage) (any, error) {
		return s.store.ListShips()
	})
	s.register("db:ships:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetShip(id)
	})
	s.register("db:ships:create", func(args []json.RawMessage) (any, error) {
		// Omitted keys keep the defaults set here.
		sh := types.Ship{IsOwned: true}
		if err := decodeArgInto(args, 0, &sh); err != nil {
			return nil, err
		}
		return s.store.CreateShip(sh)
	})
	s.register("db:ships:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.ShipPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateShip(id, patch)
	})
	s.register("db:ships:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteShip(id)
	})
	s.register("db:ships:search", func(args []json.RawMessage) (any, error) {
		query, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.SearchShips(query)
	})
	s.register("db:ships:getCurrentLocation", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ShipCurrentLocation(id)
	})
	s.register("db:ships:getLocationHistory", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ShipLocationHistory(id)
	})
}
