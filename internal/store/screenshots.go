package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const screenshotColumns = `id, file_path, thumbnail_path, taken_at, caption, tags,
	location_id, ship_id, journal_entry_id, is_favorite, created_at`

func scanScreenshot(row rowScanner) (*types.Screenshot, error) {
	var (
		sc   types.Screenshot
		tags *string
	)
	err := row.Scan(
		&sc.ID, &sc.FilePath, &sc.ThumbnailPath, &sc.TakenAt, &sc.Caption,
		&tags, &sc.LocationID, &sc.ShipID, &sc.JournalEntryID,
		&sc.IsFavorite, &sc.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan screenshot: %w", err)
	}
	sc.Tags, err = decodeList(tags)
	if err != nil {
		return nil, fmt.Errorf("screenshot tags: %w", err)
	}
	return &sc, nil
}

func insertScreenshot(ex execer, sc *types.Screenshot) error {
	tags, err := encodeList(sc.Tags)
	if err != nil {
		return fmt.Errorf("screenshot tags: %w", err)
	}
	_, err = ex.Exec(
		`INSERT INTO screenshots (`+screenshotColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.ID, sc.FilePath, sc.ThumbnailPath, sc.TakenAt, sc.Caption,
		tags, sc.LocationID, sc.ShipID, sc.JournalEntryID,
		sc.IsFavorite, sc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert screenshot: %w", err)
	}
	return nil
}

// ListScreenshots returns screenshots ordered by capture time, newest
// first, optionally paginated.
func (s *Store) ListScreenshots(opts types.QueryOptions) ([]types.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + screenshotColumns + ` FROM screenshots
		 ORDER BY taken_at DESC` + limitClause(opts.Limit, opts.Offset))
	if err != nil {
		return nil, fmt.Errorf("list screenshots: %w", err)
	}
	return collectRows(rows, scanScreenshot)
}

// GetScreenshot returns the screenshot with the given id, or nil when
// absent.
func (s *Store) GetScreenshot(id string) (*types.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getScreenshot(db, id)
}

func getScreenshot(db *sql.DB, id string) (*types.Screenshot, error) {
	row := db.QueryRow(`SELECT `+screenshotColumns+` FROM screenshots WHERE id = ?`, id)
	sc, err := scanScreenshot(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return sc, nil
}

// FavoriteScreenshots returns every screenshot flagged as a favorite,
// newest first.
func (s *Store) FavoriteScreenshots() ([]types.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + screenshotColumns + ` FROM screenshots
		 WHERE is_favorite = 1 ORDER BY taken_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("favorite screenshots: %w", err)
	}
	return collectRows(rows, scanScreenshot)
}

// ListScreenshotsByLocation returns screenshots captured at the given
// location, newest first.
func (s *Store) ListScreenshotsByLocation(locationID string) ([]types.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+screenshotColumns+` FROM screenshots
		 WHERE location_id = ? ORDER BY taken_at DESC`,
		locationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list screenshots by location: %w", err)
	}
	return collectRows(rows, scanScreenshot)
}

// CreateScreenshot inserts a new screenshot and returns the persisted
// row. The capture time defaults to now.
func (s *Store) CreateScreenshot(sc types.Screenshot) (*types.Screenshot, error) {
	if sc.FilePath == "" {
		return nil, fmt.Errorf("%w: filePath", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if sc.ID == "" {
		sc.ID = newID()
	}
	if sc.TakenAt == 0 {
		sc.TakenAt = now
	}
	if sc.CreatedAt == 0 {
		sc.CreatedAt = now
	}

	if err := insertScreenshot(db, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// UpdateScreenshot merges the patch into an existing screenshot.
// Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateScreenshot(id string, p types.ScreenshotPatch) (*types.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sc, err := getScreenshot(db, id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, fmt.Errorf("screenshot %s: %w", id, types.ErrNotFound)
	}

	if p.FilePath != nil {
		sc.FilePath = *p.FilePath
	}
	if p.ThumbnailPath != nil {
		sc.ThumbnailPath = p.ThumbnailPath
	}
	if p.TakenAt != nil {
		sc.TakenAt = *p.TakenAt
	}
	if p.Caption != nil {
		sc.Caption = p.Caption
	}
	if p.Tags != nil {
		sc.Tags = *p.Tags
	}
	if p.LocationID != nil {
		sc.LocationID = p.LocationID
	}
	if p.ShipID != nil {
		sc.ShipID = p.ShipID
	}
	if p.JournalEntryID != nil {
		sc.JournalEntryID = p.JournalEntryID
	}
	if p.IsFavorite != nil {
		sc.IsFavorite = *p.IsFavorite
	}

	tags, err := encodeList(sc.Tags)
	if err != nil {
		return nil, fmt.Errorf("screenshot tags: %w", err)
	}
	_, err = db.Exec(
		`UPDATE screenshots SET file_path = ?, thumbnail_path = ?, taken_at = ?,
		 caption = ?, tags = ?, location_id = ?, ship_id = ?,
		 journal_entry_id = ?, is_favorite = ? WHERE id = ?`,
		sc.FilePath, sc.ThumbnailPath, sc.TakenAt, sc.Caption, tags,
		sc.LocationID, sc.ShipID, sc.JournalEntryID, sc.IsFavorite, sc.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update screenshot: %w", err)
	}
	return sc, nil
}

// DeleteScreenshot removes the screenshot. Deleting a missing id is not
// an error.
func (s *Store) DeleteScreenshot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM screenshots WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete screenshot: %w", err)
	}
	return nil
}

// SearchScreenshots returns screenshots whose caption contains the
// query, case-insensitively, newest first.
func (s *Store) SearchScreenshots(query string) ([]types.Screenshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+screenshotColumns+` FROM screenshots
		 WHERE caption LIKE ? ORDER BY taken_at DESC`,
		"%"+query+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search screenshots: %w", err)
	}
	return collectRows(rows, scanScreenshot)
}
