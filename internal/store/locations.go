package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const locationColumns = `id, parent_id, name, type, services, notes,
	coord_x, coord_x_unit, coord_y, coord_y_unit, coord_z, coord_z_unit,
	first_visited_at, visit_count, is_favorite, wiki_url, created_at, updated_at`

func scanLocation(row rowScanner) (*types.Location, error) {
	var (
		loc      types.Location
		services *string
	)
	err := row.Scan(
		&loc.ID, &loc.ParentID, &loc.Name, &loc.Type, &services, &loc.Notes,
		&loc.CoordX, &loc.CoordXUnit, &loc.CoordY, &loc.CoordYUnit,
		&loc.CoordZ, &loc.CoordZUnit, &loc.FirstVisitedAt, &loc.VisitCount,
		&loc.IsFavorite, &loc.WikiURL, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan location: %w", err)
	}
	loc.Services, err = decodeList(services)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func insertLocation(ex execer, loc *types.Location) error {
	services, err := encodeList(loc.Services)
	if err != nil {
		return err
	}
	_, err = ex.Exec(
		`INSERT INTO locations (`+locationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loc.ID, loc.ParentID, loc.Name, loc.Type, services, loc.Notes,
		loc.CoordX, loc.CoordXUnit, loc.CoordY, loc.CoordYUnit,
		loc.CoordZ, loc.CoordZUnit, loc.FirstVisitedAt, loc.VisitCount,
		loc.IsFavorite, loc.WikiURL, loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// ListLocations returns all locations, most recently added first.
func (s *Store) ListLocations() ([]types.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT ` + locationColumns + ` FROM locations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return collectRows(rows, scanLocation)
}

// GetLocation returns the location with the given id, or nil when absent.
func (s *Store) GetLocation(id string) (*types.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getLocation(db, id)
}

func getLocation(db *sql.DB, id string) (*types.Location, error) {
	row := db.QueryRow(`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	loc, err := scanLocation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return loc, nil
}

// ListLocationsByParent returns the children of parentID, or the root
// locations when parentID is nil.
func (s *Store) ListLocationsByParent(parentID *string) ([]types.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	if parentID == nil {
		rows, err = db.Query(`SELECT ` + locationColumns + ` FROM locations WHERE parent_id IS NULL`)
	} else {
		rows, err = db.Query(`SELECT `+locationColumns+` FROM locations WHERE parent_id = ?`, *parentID)
	}
	if err != nil {
		return nil, fmt.Errorf("list locations by parent: %w", err)
	}
	return collectRows(rows, scanLocation)
}

// FavoriteLocations returns every location flagged as a favorite.
func (s *Store) FavoriteLocations() ([]types.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT ` + locationColumns + ` FROM locations WHERE is_favorite = 1`)
	if err != nil {
		return nil, fmt.Errorf("favorite locations: %w", err)
	}
	return collectRows(rows, scanLocation)
}

// CreateLocation inserts a new location and returns the persisted row.
func (s *Store) CreateLocation(loc types.Location) (*types.Location, error) {
	if loc.Name == "" {
		return nil, fmt.Errorf("%w: name", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if loc.ID == "" {
		loc.ID = newID()
	}
	if loc.CreatedAt == 0 {
		loc.CreatedAt = now
	}
	if loc.UpdatedAt == 0 {
		loc.UpdatedAt = now
	}
	if loc.ParentID != nil {
		if err := checkLocationCycle(db, loc.ID, *loc.ParentID); err != nil {
			return nil, err
		}
	}

	if err := insertLocation(db, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// UpdateLocation merges the patch into an existing location. A patch that
// reparents the location is rejected when the new parent sits inside the
// location's own subtree. Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateLocation(id string, p types.LocationPatch) (*types.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	loc, err := getLocation(db, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("location %s: %w", id, types.ErrNotFound)
	}

	if p.ParentID != nil {
		if err := checkLocationCycle(db, id, *p.ParentID); err != nil {
			return nil, err
		}
		loc.ParentID = p.ParentID
	}
	if p.Name != nil {
		loc.Name = *p.Name
	}
	if p.Type != nil {
		loc.Type = p.Type
	}
	if p.Services != nil {
		loc.Services = *p.Services
	}
	if p.Notes != nil {
		loc.Notes = p.Notes
	}
	if p.CoordX != nil {
		loc.CoordX = p.CoordX
	}
	if p.CoordXUnit != nil {
		loc.CoordXUnit = p.CoordXUnit
	}
	if p.CoordY != nil {
		loc.CoordY = p.CoordY
	}
	if p.CoordYUnit != nil {
		loc.CoordYUnit = p.CoordYUnit
	}
	if p.CoordZ != nil {
		loc.CoordZ = p.CoordZ
	}
	if p.CoordZUnit != nil {
		loc.CoordZUnit = p.CoordZUnit
	}
	if p.IsFavorite != nil {
		loc.IsFavorite = *p.IsFavorite
	}
	if p.WikiURL != nil {
		loc.WikiURL = p.WikiURL
	}
	loc.UpdatedAt = nowMillis()

	if err := updateLocationRow(db, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func updateLocationRow(db *sql.DB, loc *types.Location) error {
	services, err := encodeList(loc.Services)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`UPDATE locations SET parent_id = ?, name = ?, type = ?, services = ?,
		 notes = ?, coord_x = ?, coord_x_unit = ?, coord_y = ?, coord_y_unit = ?,
		 coord_z = ?, coord_z_unit = ?, first_visited_at = ?, visit_count = ?,
		 is_favorite = ?, wiki_url = ?, updated_at = ? WHERE id = ?`,
		loc.ParentID, loc.Name, loc.Type, services, loc.Notes,
		loc.CoordX, loc.CoordXUnit, loc.CoordY, loc.CoordYUnit,
		loc.CoordZ, loc.CoordZUnit, loc.FirstVisitedAt, loc.VisitCount,
		loc.IsFavorite, loc.WikiURL, loc.UpdatedAt, loc.ID,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// checkLocationCycle walks the ancestor chain of the proposed parent and
// rejects the write when the chain reaches the location itself.
func checkLocationCycle(db *sql.DB, id, parentID string) error {
	seen := map[string]bool{}
	current := parentID
	for current != "" {
		if current == id {
			return types.ErrLocationCycle
		}
		if seen[current] {
			// Pre-existing corruption; stop walking rather than loop.
			return types.ErrLocationCycle
		}
		seen[current] = true

		var next *string
		err := db.QueryRow(`SELECT parent_id FROM locations WHERE id = ?`, current).Scan(&next)
		if err != nil {
			if isNoRows(err) {
				return nil
			}
			return fmt.Errorf("walk location ancestors: %w", err)
		}
		if next == nil {
			return nil
		}
		current = *next
	}
	return nil
}

// DeleteLocation removes the location. Dependent rows keep their loose
// references; nothing cascades.
func (s *Store) DeleteLocation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM locations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// SearchLocations returns locations whose name or type contains the
// query, case-insensitively.
func (s *Store) SearchLocations(query string) ([]types.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	term := "%" + query + "%"
	rows, err := db.Query(
		`SELECT `+locationColumns+` FROM locations
		 WHERE name LIKE ? OR type LIKE ?`,
		term, term,
	)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	return collectRows(rows, scanLocation)
}

// IncrementVisit bumps the visit counter by one, latches firstVisitedAt
// on the first visit only, and refreshes updatedAt. Returns ErrNotFound
// when the id does not exist.
func (s *Store) IncrementVisit(id string) (*types.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	loc, err := getLocation(db, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("location %s: %w", id, types.ErrNotFound)
	}

	now := nowMillis()
	loc.VisitCount++
	if loc.FirstVisitedAt == nil {
		loc.FirstVisitedAt = &now
	}
	loc.UpdatedAt = now

	if err := updateLocationRow(db, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// ShipsAtLocation returns every ship whose most recent location-bearing
// journal entry points at the queried location, with the last-seen
// timestamp. A ship's current location is defined entirely by its
// journal history.
func (s *Store) ShipsAtLocation(locationID string) ([]types.ShipAtLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT s.id, s.manufacturer, s.model, s.nickname, s.variant, s.role,
		        s.is_owned, s.acquired_at, s.acquired_price, s.notes, s.image_path,
		        s.wiki_url, s.created_at, s.updated_at, je.timestamp
		 FROM ships s
		 JOIN journal_entries je ON je.ship_id = s.id
		 WHERE je.location_id = ?
		   AND je.timestamp = (
		       SELECT MAX(e.timestamp) FROM journal_entries e
		       WHERE e.ship_id = s.id AND e.location_id IS NOT NULL)
		 GROUP BY s.id`,
		locationID,
	)
	if err != nil {
		return nil, fmt.Errorf("ships at location: %w", err)
	}
	defer rows.Close()

	var out []types.ShipAtLocation
	for rows.Next() {
		var entry types.ShipAtLocation
		sh := &entry.Ship
		err := rows.Scan(
			&sh.ID, &sh.Manufacturer, &sh.Model, &sh.Nickname, &sh.Variant, &sh.Role,
			&sh.IsOwned, &sh.AcquiredAt, &sh.AcquiredPrice, &sh.Notes, &sh.ImagePath,
			&sh.WikiURL, &sh.CreatedAt, &sh.UpdatedAt, &entry.LastSeenAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ship at location: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
