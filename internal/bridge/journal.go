package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerJournalMethods() {
	s.register("db:journal:findAll", func(args []json.RawMessage) (any, error) {
		opts, err := decodeArg[types.QueryOptions](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListJournalEntries(opts)
	})
	s.register("db:journal:findById", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.GetJournalEntry(id)
	})
	s.register("db:journal:findByType", func(args []json.RawMessage) (any, error) {
		entryType, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListJournalEntriesByType(entryType)
	})
	s.register("db:journal:getFavorites", func(args []json.RawMessage) (any, error) {
		return s.store.FavoriteJournalEntries()
	})
	s.register("db:journal:create", func(args []json.RawMessage) (any, error) {
		entry, err := decodeArg[types.JournalEntry](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CreateJournalEntry(entry)
	})
	s.register("db:journal:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.JournalEntryPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateJournalEntry(id, patch)
	})
	s.register("db:journal:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteJournalEntry(id)
	})
	s.register("db:journal:search", func(args []json.RawMessage) (any, error) {
		query, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.SearchJournalEntries(query)
	})
	s.register("db:journal:count", func(args []json.RawMessage) (any, error) {
		return s.store.CountJournalEntries()
	})
}
