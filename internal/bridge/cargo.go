package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerCargoMethods() {
	s.register("db:cargo:findAll", func(args []json.RawMessage) (any, error) {
		opts, err := decodeArg[types.QueryOptions](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListCargoRuns(opts)
	})
	s.register("db:cargo:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetCargoRun(id)
	})
	s.register("db:cargo:findByStatus", func(args []json.RawMessage) (any, error) {
		status, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListCargoRunsByStatus(status)
	})
	s.register("db:cargo:create", func(args []json.RawMessage) (any, error) {
		run, err := decodeArg[types.CargoRun](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CreateCargoRun(run)
	})
	s.register("db:cargo:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.CargoRunPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateCargoRun(id, patch)
	})
	s.register("db:cargo:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteCargoRun(id)
	})
	s.register("db:cargo:search", func(args []json.RawMessage) (any, error) {
		query, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.SearchCargoRuns(query)
	})
	s.register("db:cargo:complete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		sellPrice, err := decodeArg[int64](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.CompleteCargoRun(id, sellPrice)
	})
}
