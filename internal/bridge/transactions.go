package bridge

import (
	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

func (s *Server) registerTransactionMethods() {
	s.register("db:transactions:findAll", func(args []json.RawMessage) (any, error) {
		opts, err := decodeArg[types.QueryOptions](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListTransactions(opts)
	})
	s.register("db:transactions:create", func(args []json.RawMessage) (any, error) {
		tx, err := decodeArg[types.Transaction](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.CreateTransaction(tx)
	})
	s.register("db:transactions:update", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		patch, err := decodeArg[types.TransactionPatch](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.UpdateTransaction(id, patch)
	})
	s.register("db:transactions:delete", func(args []json.RawMessage) (any, error) {
		id, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.store.DeleteTransaction(id)
	})
	s.register("db:transactions:findByCategory", func(args []json.RawMessage) (any, error) {
		category, err := decodeArg[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.store.ListTransactionsByCategory(category)
	})
	s.register("db:transactions:findByDateRange", func(args []json.RawMessage) (any, error) {
		start, err := decodeArg[int64](args, 0)
		if err != nil {
			return nil, err
		}
		end, err := decodeArg[int64](args, 1)
		if err != nil {
			return nil, err
		}
		return s.store.ListTransactionsByDateRange(start, end)
	})
	s.register("db:transactions:getBalance", func(args []json.RawMessage) (any, error) {
		return s.store.Balance()
	})
	s.register("db:transactions:getBalanceByCategory", func(args []json.RawMessage) (any, error) {
		return s.store.BalanceByCategory()
	})
}
