package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const journalColumns = `id, timestamp, title, content, entry_type, mood,
	location_id, ship_id, tags, is_favorite, created_at, updated_at`

func scanJournalEntry(row rowScanner) (*types.JournalEntry, error) {
	var (
		e    types.JournalEntry
		tags *string
	)
	err := row.Scan(
		&e.ID, &e.Timestamp, &e.Title, &e.Content, &e.EntryType, &e.Mood,
		&e.LocationID, &e.ShipID, &tags, &e.IsFavorite, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan journal entry: %w", err)
	}
	e.Tags, err = decodeList(tags)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func insertJournalEntry(ex execer, e *types.JournalEntry) error {
	tags, err := encodeList(e.Tags)
	if err != nil {
		return err
	}
	_, err = ex.Exec(
		`INSERT INTO journal_entries (`+journalColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Timestamp, e.Title, e.Content, e.EntryType, e.Mood,
		e.LocationID, e.ShipID, tags, e.IsFavorite, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// ListJournalEntries returns entries ordered by their event timestamp,
// newest first, optionally paginated.
func (s *Store) ListJournalEntries(opts types.QueryOptions) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + journalColumns + ` FROM journal_entries
		 ORDER BY timestamp DESC` + limitClause(opts.Limit, opts.Offset))
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return collectRows(rows, scanJournalEntry)
}

// GetJournalEntry returns the entry with the given id, or nil when absent.
func (s *Store) GetJournalEntry(id string) (*types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getJournalEntry(db, id)
}

func getJournalEntry(db *sql.DB, id string) (*types.JournalEntry, error) {
	row := db.QueryRow(`SELECT `+journalColumns+` FROM journal_entries WHERE id = ?`, id)
	e, err := scanJournalEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// ListJournalEntriesByType returns entries carrying the given type tag,
// newest first.
func (s *Store) ListJournalEntriesByType(entryType string) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+journalColumns+` FROM journal_entries
		 WHERE entry_type = ? ORDER BY timestamp DESC`,
		entryType,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries by type: %w", err)
	}
	return collectRows(rows, scanJournalEntry)
}

// FavoriteJournalEntries returns every favorited entry, newest first.
func (s *Store) FavoriteJournalEntries() ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + journalColumns + ` FROM journal_entries
		 WHERE is_favorite = 1 ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("favorite journal entries: %w", err)
	}
	return collectRows(rows, scanJournalEntry)
}

// CreateJournalEntry inserts a new entry and returns the persisted row.
// The event timestamp defaults to now when not supplied.
func (s *Store) CreateJournalEntry(e types.JournalEntry) (*types.JournalEntry, error) {
	if e.Content == "" {
		return nil, fmt.Errorf("%w: content", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if e.ID == "" {
		e.ID = newID()
	}
	if e.Timestamp == 0 {
		e.Timestamp = now
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = now
	}
	if e.UpdatedAt == 0 {
		e.UpdatedAt = now
	}

	if err := insertJournalEntry(db, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateJournalEntry merges the patch into an existing entry and
// refreshes updatedAt. Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateJournalEntry(id string, p types.JournalEntryPatch) (*types.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	e, err := getJournalEntry(db, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("journal entry %s: %w", id, types.ErrNotFound)
	}

	if p.Timestamp != nil {
		e.Timestamp = *p.Timestamp
	}
	if p.Title != nil {
		e.Title = p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.EntryType != nil {
		e.EntryType = p.EntryType
	}
	if p.Mood != nil {
		e.Mood = p.Mood
	}
	if p.LocationID != nil {
		e.LocationID = p.LocationID
	}
	if p.ShipID != nil {
		e.ShipID = p.ShipID
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.IsFavorite != nil {
		e.IsFavorite = *p.IsFavorite
	}
	e.UpdatedAt = nowMillis()

	tags, err := encodeList(e.Tags)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(
		`UPDATE journal_entries SET timestamp = ?, title = ?, content = ?,
		 entry_type = ?, mood = ?, location_id = ?, ship_id = ?, tags = ?,
		 is_favorite = ?, updated_at = ? WHERE id = ?`,
		e.Timestamp, e.Title, e.Content, e.EntryType, e.Mood,
		e.LocationID, e.ShipID, tags, e.IsFavorite, e.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}
	return e, nil
}

// DeleteJournalEntry removes the entry. Deleting a missing id is not an
// error.
func (s *Store) DeleteJournalEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM journal_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

// SearchJournalEntries returns entries whose title or content contains
// the query, case-insensitively, newest first.
func (s *Store) SearchJournalEntries(query string) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	term := "%" + query + "%"
	rows, err := db.Query(
		`SELECT `+journalColumns+` FROM journal_entries
		 WHERE title LIKE ? OR content LIKE ?
		 ORDER BY timestamp DESC`,
		term, term,
	)
	if err != nil {
		return nil, fmt.Errorf("search journal entries: %w", err)
	}
	return collectRows(rows, scanJournalEntry)
}

// CountJournalEntries returns the total number of entries.
func (s *Store) CountJournalEntries() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM journal_entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return count, nil
}
