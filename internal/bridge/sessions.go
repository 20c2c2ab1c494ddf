package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerSessionMethods() {
	s.register("db:sessions:findAll", func(args []json.RawMessage) (any, error) {
		opts, err := decodeArg[types.QueryOptions](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListSessions(opts)
	})
	s.register("db:sessions:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetSession(id)
	})
	s.register("db:sessions:getActive", func(args []json.RawMessage) (any, error) {
		return s.store.ActiveSession()
	})
	s.register("db:sessions:start", func(args []json.RawMessage) (any, error) {
		startingBalance, err := decodeArg[*int64](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.StartSession(startingBalance)
	})
	s.register("db:sessions:end", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		endingBalance, err := decodeArg[*int64](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.EndSession(id, endingBalance)
	})
	s.register("db:sessions:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.SessionPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateSession(id, patch)
	})
	s.register("db:sessions:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteSession(id)
	})
}
