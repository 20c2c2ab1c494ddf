package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const transactionColumns = `id, timestamp, amount, category, description,
	location_id, ship_id, journal_entry_id, created_at`

func scanTransaction(row rowScanner) (*types.Transaction, error) {
	var tx types.Transaction
	err := row.Scan(
		&tx.ID, &tx.Timestamp, &tx.Amount, &tx.Category, &tx.Description,
		&tx.LocationID, &tx.ShipID, &tx.JournalEntryID, &tx.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return &tx, nil
}

func insertTransaction(ex execer, tx *types.Transaction) error {
	_, err := ex.Exec(
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Timestamp, tx.Amount, tx.Category, tx.Description,
		tx.LocationID, tx.ShipID, tx.JournalEntryID, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListTransactions returns ledger lines newest first, optionally
// paginated.
func (s *Store) ListTransactions(opts types.QueryOptions) ([]types.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + transactionColumns + ` FROM transactions
		 ORDER BY timestamp DESC` + limitClause(opts.Limit, opts.Offset))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return collectRows(rows, scanTransaction)
}

// ListTransactionsByCategory returns lines in the given category, newest
// first.
func (s *Store) ListTransactionsByCategory(category string) ([]types.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE category = ? ORDER BY timestamp DESC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions by category: %w", err)
	}
	return collectRows(rows, scanTransaction)
}

// ListTransactionsByDateRange returns lines whose timestamp falls inside
// [start, end], newest first. Bounds are epoch milliseconds, inclusive.
func (s *Store) ListTransactionsByDateRange(start, end int64) ([]types.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE timestamp >= ? AND timestamp <= ?
		 ORDER BY timestamp DESC`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions by date range: %w", err)
	}
	return collectRows(rows, scanTransaction)
}

// CreateTransaction inserts a new ledger line and returns the persisted
// row. The sign of Amount is the sole income/expense indicator.
func (s *Store) CreateTransaction(tx types.Transaction) (*types.Transaction, error) {
	if tx.Category == "" {
		return nil, fmt.Errorf("%w: category", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if tx.ID == "" {
		tx.ID = newID()
	}
	if tx.Timestamp == 0 {
		tx.Timestamp = now
	}
	if tx.CreatedAt == 0 {
		tx.CreatedAt = now
	}

	if err := insertTransaction(db, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction merges the patch into an existing line. Returns
// ErrNotFound when the id does not exist.
func (s *Store) UpdateTransaction(id string, p types.TransactionPatch) (*types.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	tx, err := getTransaction(db, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, types.ErrNotFound)
	}

	if p.Timestamp != nil {
		tx.Timestamp = *p.Timestamp
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Category != nil {
		tx.Category = *p.Category
	}
	if p.Description != nil {
		tx.Description = p.Description
	}
	if p.LocationID != nil {
		tx.LocationID = p.LocationID
	}
	if p.ShipID != nil {
		tx.ShipID = p.ShipID
	}
	if p.JournalEntryID != nil {
		tx.JournalEntryID = p.JournalEntryID
	}

	_, err = db.Exec(
		`UPDATE transactions SET timestamp = ?, amount = ?, category = ?,
		 description = ?, location_id = ?, ship_id = ?, journal_entry_id = ?
		 WHERE id = ?`,
		tx.Timestamp, tx.Amount, tx.Category, tx.Description,
		tx.LocationID, tx.ShipID, tx.JournalEntryID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return tx, nil
}

func getTransaction(db *sql.DB, id string) (*types.Transaction, error) {
	row := db.QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction removes the line. Deleting a missing id is not an
// error.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// Balance returns the sum of all signed amounts. An empty ledger yields
// zero, not an error.
func (s *Store) Balance() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var total int64
	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM transactions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}
	return total, nil
}

// BalanceByCategory returns the signed sum per category tag.
func (s *Store) BalanceByCategory() (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT category, COALESCE(SUM(amount), 0) FROM transactions GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("balance by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var (
			category string
			total    int64
		)
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("scan category balance: %w", err)
		}
		totals[category] = total
	}
	return totals, rows.Err()
}
