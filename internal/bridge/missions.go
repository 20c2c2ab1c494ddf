package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerMissionMethods() {
	s.register("db:missions:findAll", func(args []json.RawMessage) (any, error) {
		opts, err := decodeArg[types.QueryOptions](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListMissions(opts)
	})
	s.register("db:missions:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetMission(id)
	})
	s.register("db:missions:findByStatus", func(args []json.RawMessage) (any, error) {
		status, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListMissionsByStatus(status)
	})
	s.register("db:missions:getActive", func(args []json.RawMessage) (any, error) {
		return s.store.ActiveMissions()
	})
	s.register("db:missions:create", func(args []json.RawMessage) (any, error) {
		m, err := decodeArg[types.Mission](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CreateMission(m)
	})
	s.register("db:missions:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.MissionPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateMission(id, patch)
	})
	s.register("db:missions:complete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CompleteMission(id)
	})
	s.register("db:missions:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteMission(id)
	})
	s.register("db:missions:search", func(args []json.RawMessage) (any, error) {
		query, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.SearchMissions(query)
	})
}
