package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const sessionColumns = `id, started_at, ended_at, duration_minutes,
	starting_balance, ending_balance, notes, created_at`

func scanSession(row rowScanner) (*types.Session, error) {
	var sess types.Session
	err := row.Scan(
		&sess.ID, &sess.StartedAt, &sess.EndedAt, &sess.DurationMinutes,
		&sess.StartingBalance, &sess.EndingBalance, &sess.Notes, &sess.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &sess, nil
}

func insertSession(ex execer, sess *types.Session) error {
	_, err := ex.Exec(
		`INSERT INTO sessions (`+sessionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.StartedAt, sess.EndedAt, sess.DurationMinutes,
		sess.StartingBalance, sess.EndingBalance, sess.Notes, sess.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// ListSessions returns sessions ordered by start time, newest first,
// optionally paginated.
func (s *Store) ListSessions(opts types.QueryOptions) ([]types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + sessionColumns + ` FROM sessions
		 ORDER BY started_at DESC` + limitClause(opts.Limit, opts.Offset))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return collectRows(rows, scanSession)
}

// GetSession returns the session with the given id, or nil when absent.
func (s *Store) GetSession(id string) (*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getSession(db, id)
}

func getSession(db *sql.DB, id string) (*types.Session, error) {
	row := db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

// ActiveSession returns the most recently started session without an end
// timestamp, or nil when every session has ended.
func (s *Store) ActiveSession() (*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		`SELECT ` + sessionColumns + ` FROM sessions
		 WHERE ended_at IS NULL ORDER BY started_at DESC LIMIT 1`)
	sess, err := scanSession(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

// StartSession ends any session still running and opens a new one.
// Force-ended sessions get a duration derived from their own start time,
// floored at zero so a clock step backwards never records negative
// minutes.
func (s *Store) StartSession(startingBalance *int64) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()

	rows, err := db.Query(
		`SELECT ` + sessionColumns + ` FROM sessions WHERE ended_at IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("find active sessions: %w", err)
	}
	open, err := collectRows(rows, scanSession)
	if err != nil {
		return nil, err
	}

	for i := range open {
		minutes := (now - open[i].StartedAt) / 60_000
		if minutes < 0 {
			minutes = 0
		}
		_, err := db.Exec(
			`UPDATE sessions SET ended_at = ?, duration_minutes = ? WHERE id = ?`,
			now, minutes, open[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("end session %s: %w", open[i].ID, err)
		}
	}

	sess := types.Session{
		ID:              newID(),
		StartedAt:       now,
		StartingBalance: startingBalance,
		CreatedAt:       now,
	}
	if err := insertSession(db, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// EndSession closes the session, stamping the end time, the elapsed
// minutes, and the closing balance. Returns ErrNotFound when the id does
// not exist. Ending an already-ended session restamps it from its
// original start.
func (s *Store) EndSession(id string, endingBalance *int64) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sess, err := getSession(db, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session %s: %w", id, types.ErrNotFound)
	}

	now := nowMillis()
	minutes := (now - sess.StartedAt) / 60_000
	if minutes < 0 {
		minutes = 0
	}
	sess.EndedAt = &now
	sess.DurationMinutes = &minutes
	if endingBalance != nil {
		sess.EndingBalance = endingBalance
	}

	_, err = db.Exec(
		`UPDATE sessions SET ended_at = ?, duration_minutes = ?, ending_balance = ?
		 WHERE id = ?`,
		sess.EndedAt, sess.DurationMinutes, sess.EndingBalance, sess.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}
	return sess, nil
}

// UpdateSession merges the patch into an existing session. Returns
// ErrNotFound when the id does not exist.
func (s *Store) UpdateSession(id string, p types.SessionPatch) (*types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sess, err := getSession(db, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session %s: %w", id, types.ErrNotFound)
	}

	if p.StartedAt != nil {
		sess.StartedAt = *p.StartedAt
	}
	if p.StartingBalance != nil {
		sess.StartingBalance = p.StartingBalance
	}
	if p.EndingBalance != nil {
		sess.EndingBalance = p.EndingBalance
	}
	if p.Notes != nil {
		sess.Notes = p.Notes
	}

	_, err = db.Exec(
		`UPDATE sessions SET started_at = ?, starting_balance = ?,
		 ending_balance = ?, notes = ? WHERE id = ?`,
		sess.StartedAt, sess.StartingBalance, sess.EndingBalance,
		sess.Notes, sess.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

// DeleteSession removes the session. Deleting a missing id is not an
// error.
func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
