package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/pkg/types"
)

func TestCreateTransactionRequiresCategory(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTransaction(types.Transaction{Amount: 100})
	assert.ErrorIs(t, err, types.ErrMissingField)
}

func TestBalance(t *testing.T) {
	s := setupStore(t)

	// Empty ledger balances to zero, not an error.
	balance, err := s.Balance()
	require.NoError(t, err)
	assert.Zero(t, balance)

	_, err = s.CreateTransaction(types.Transaction{Amount: 50_000, Category: types.CategoryMission})
	require.NoError(t, err)
	_, err = s.CreateTransaction(types.Transaction{Amount: -12_000, Category: types.CategoryFuel})
	require.NoError(t, err)
	_, err = s.CreateTransaction(types.Transaction{Amount: -3_000, Category: types.CategoryRepair})
	require.NoError(t, err)

	balance, err = s.Balance()
	require.NoError(t, err)
	assert.Equal(t, int64(35_000), balance)

	byCategory, err := s.BalanceByCategory()
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), byCategory[types.CategoryMission])
	assert.Equal(t, int64(-12_000), byCategory[types.CategoryFuel])
	assert.Equal(t, int64(-3_000), byCategory[types.CategoryRepair])
}

func TestListTransactionsByCategory(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTransaction(types.Transaction{Amount: 100, Category: types.CategoryCargo})
	require.NoError(t, err)
	_, err = s.CreateTransaction(types.Transaction{Amount: 200, Category: types.CategoryCargo})
	require.NoError(t, err)
	_, err = s.CreateTransaction(types.Transaction{Amount: -50, Category: types.CategoryFuel})
	require.NoError(t, err)

	cargo, err := s.ListTransactionsByCategory(types.CategoryCargo)
	require.NoError(t, err)
	assert.Len(t, cargo, 2)
}

func TestListTransactionsByDateRange(t *testing.T) {
	s := setupStore(t)

	for _, ts := range []int64{1000, 2000, 3000, 4000} {
		_, err := s.CreateTransaction(types.Transaction{
			Amount: 1, Category: types.CategoryOther, Timestamp: ts,
		})
		require.NoError(t, err)
	}

	// Both endpoints are inclusive.
	got, err := s.ListTransactionsByDateRange(2000, 3000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3000), got[0].Timestamp)
	assert.Equal(t, int64(2000), got[1].Timestamp)
}

func TestUpdateTransaction(t *testing.T) {
	s := setupStore(t)

	created, err := s.CreateTransaction(types.Transaction{Amount: 100, Category: types.CategoryOther})
	require.NoError(t, err)

	updated, err := s.UpdateTransaction(created.ID, types.TransactionPatch{
		Amount:      int64Ptr(-250),
		Description: strPtr("hull repair at Lorville"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-250), updated.Amount)
	assert.Equal(t, types.CategoryOther, updated.Category)

	_, err = s.UpdateTransaction("no-such-id", types.TransactionPatch{Amount: int64Ptr(1)})
	assert.ErrorIs(t, err, types.ErrNotFound)
}
