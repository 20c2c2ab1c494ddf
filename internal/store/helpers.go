package store

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// isNoRows reports whether err wraps sql.ErrNoRows.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows so one scan
// function per entity serves single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// encodeList serializes a string list for a JSON text column. A nil
// slice is stored as NULL, matching how absent lists round-trip.
func encodeList(values []string) (any, error) {
	if values == nil {
		return nil, nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode list column: %w", err)
	}
	return string(b), nil
}

// decodeList parses a JSON text column back into a string list.
func decodeList(raw *string) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	return values, nil
}

// collectRows drains a result set through scan, closing it on return.
func collectRows[T any](rows *sql.Rows, scan func(rowScanner) (*T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, rows.Err()
}

// limitClause renders an optional LIMIT/OFFSET suffix. SQLite requires a
// LIMIT before OFFSET, so an offset without a limit uses LIMIT -1.
func limitClause(limit, offset int) string {
	switch {
	case limit > 0 && offset > 0:
		return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	case limit > 0:
		return fmt.Sprintf(" LIMIT %d", limit)
	case offset > 0:
		return fmt.Sprintf(" LIMIT -1 OFFSET %d", offset)
	default:
		return ""
	}
}
