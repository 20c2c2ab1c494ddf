package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const shipColumns = `id, manufacturer, model, nickname, variant, role, is_owned,
	acquired_at, acquired_price, notes, image_path, wiki_url, created_at, updated_at`

func scanShip(row rowScanner) (*types.Ship, error) {
	var sh types.Ship
	err := row.Scan(
		&sh.ID, &sh.Manufacturer, &sh.Model, &sh.Nickname, &sh.Variant, &sh.Role,
		&sh.IsOwned, &sh.AcquiredAt, &sh.AcquiredPrice, &sh.Notes, &sh.ImagePath,
		&sh.WikiURL, &sh.CreatedAt, &sh.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan ship: %w", err)
	}
	return &sh, nil
}

func insertShip(ex execer, sh *types.Ship) error {
	_, err := ex.Exec(
		`INSERT INTO ships (`+shipColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sh.ID, sh.Manufacturer, sh.Model, sh.Nickname, sh.Variant, sh.Role,
		sh.IsOwned, sh.AcquiredAt, sh.AcquiredPrice, sh.Notes, sh.ImagePath,
		sh.WikiURL, sh.CreatedAt, sh.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ship: %w", err)
	}
	return nil
}

// ListShips returns all ships, most recently added first.
func (s *Store) ListShips() ([]types.Ship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT ` + shipColumns + ` FROM ships ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ships: %w", err)
	}
	return collectRows(rows, scanShip)
}

// GetShip returns the ship with the given id, or nil when absent.
// Absence is a normal result, not an error.
func (s *Store) GetShip(id string) (*types.Ship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getShip(db, id)
}

func getShip(db *sql.DB, id string) (*types.Ship, error) {
	row := db.QueryRow(`SELECT `+shipColumns+` FROM ships WHERE id = ?`, id)
	sh, err := scanShip(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return sh, nil
}

// CreateShip inserts a new ship and returns the persisted row with its
// generated identifier and timestamps.
func (s *Store) CreateShip(sh types.Ship) (*types.Ship, error) {
	if sh.Manufacturer == "" {
		return nil, fmt.Errorf("%w: manufacturer", types.ErrMissingField)
	}
	if sh.Model == "" {
		return nil, fmt.Errorf("%w: model", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if sh.ID == "" {
		sh.ID = newID()
	}
	if sh.CreatedAt == 0 {
		sh.CreatedAt = now
	}
	if sh.UpdatedAt == 0 {
		sh.UpdatedAt = now
	}

	if err := insertShip(db, &sh); err != nil {
		return nil, err
	}
	return &sh, nil
}

// UpdateShip merges the patch into an existing ship and refreshes its
// updatedAt stamp. Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateShip(id string, p types.ShipPatch) (*types.Ship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sh, err := getShip(db, id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, fmt.Errorf("ship %s: %w", id, types.ErrNotFound)
	}

	if p.Manufacturer != nil {
		sh.Manufacturer = *p.Manufacturer
	}
	if p.Model != nil {
		sh.Model = *p.Model
	}
	if p.Nickname != nil {
		sh.Nickname = p.Nickname
	}
	if p.Variant != nil {
		sh.Variant = p.Variant
	}
	if p.Role != nil {
		sh.Role = p.Role
	}
	if p.IsOwned != nil {
		sh.IsOwned = *p.IsOwned
	}
	if p.AcquiredAt != nil {
		sh.AcquiredAt = p.AcquiredAt
	}
	if p.AcquiredPrice != nil {
		sh.AcquiredPrice = p.AcquiredPrice
	}
	if p.Notes != nil {
		sh.Notes = p.Notes
	}
	if p.ImagePath != nil {
		sh.ImagePath = p.ImagePath
	}
	if p.WikiURL != nil {
		sh.WikiURL = p.WikiURL
	}
	sh.UpdatedAt = nowMillis()

	_, err = db.Exec(
		`UPDATE ships SET manufacturer = ?, model = ?, nickname = ?, variant = ?,
		 role = ?, is_owned = ?, acquired_at = ?, acquired_price = ?, notes = ?,
		 image_path = ?, wiki_url = ?, updated_at = ? WHERE id = ?`,
		sh.Manufacturer, sh.Model, sh.Nickname, sh.Variant, sh.Role, sh.IsOwned,
		sh.AcquiredAt, sh.AcquiredPrice, sh.Notes, sh.ImagePath, sh.WikiURL,
		sh.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update ship: %w", err)
	}
	return sh, nil
}

// DeleteShip removes the ship. Deleting a missing id is not an error.
func (s *Store) DeleteShip(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM ships WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete ship: %w", err)
	}
	return nil
}

// SearchShips returns ships whose model, manufacturer, or nickname
// contains the query, case-insensitively.
func (s *Store) SearchShips(query string) ([]types.Ship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	term := "%" + query + "%"
	rows, err := db.Query(
		`SELECT `+shipColumns+` FROM ships
		 WHERE model LIKE ? OR manufacturer LIKE ? OR nickname LIKE ?
		 ORDER BY created_at DESC`,
		term, term, term,
	)
	if err != nil {
		return nil, fmt.Errorf("search ships: %w", err)
	}
	return collectRows(rows, scanShip)
}

// ShipCurrentLocation returns the ship's latest location sighting, derived
// from its most recent journal entry that carries a location reference.
// Returns nil when the ship has no location-bearing entries.
func (s *Store) ShipCurrentLocation(shipID string) (*types.ShipLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		`SELECT je.id, je.location_id, l.name, je.timestamp
		 FROM journal_entries je
		 LEFT JOIN locations l ON l.id = je.location_id
		 WHERE je.ship_id = ? AND je.location_id IS NOT NULL
		 ORDER BY je.timestamp DESC
		 LIMIT 1`,
		shipID,
	)
	loc, err := scanShipLocation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return loc, nil
}

// ShipLocationHistory returns every location sighting for the ship,
// newest first.
func (s *Store) ShipLocationHistory(shipID string) ([]types.ShipLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT je.id, je.location_id, l.name, je.timestamp
		 FROM journal_entries je
		 LEFT JOIN locations l ON l.id = je.location_id
		 WHERE je.ship_id = ? AND je.location_id IS NOT NULL
		 ORDER BY je.timestamp DESC`,
		shipID,
	)
	if err != nil {
		return nil, fmt.Errorf("ship location history: %w", err)
	}
	return collectRows(rows, scanShipLocation)
}

func scanShipLocation(row rowScanner) (*types.ShipLocation, error) {
	var loc types.ShipLocation
	if err := row.Scan(&loc.EntryID, &loc.LocationID, &loc.LocationName, &loc.Timestamp); err != nil {
		return nil, fmt.Errorf("scan ship location: %w", err)
	}
	return &loc, nil
}
