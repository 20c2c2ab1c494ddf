package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const cargoColumns = `id, started_at, completed_at, commodity, quantity, buy_price,
	sell_price, profit, origin_location_id, destination_location_id, ship_id,
	notes, status, created_at`

func scanCargoRun(row rowScanner) (*types.CargoRun, error) {
	var run types.CargoRun
	err := row.Scan(
		&run.ID, &run.StartedAt, &run.CompletedAt, &run.Commodity, &run.Quantity,
		&run.BuyPrice, &run.SellPrice, &run.Profit, &run.OriginLocationID,
		&run.DestinationLocationID, &run.ShipID, &run.Notes, &run.Status, &run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan cargo run: %w", err)
	}
	return &run, nil
}

func insertCargoRun(ex execer, run *types.CargoRun) error {
	_, err := ex.Exec(
		`INSERT INTO cargo_runs (`+cargoColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.CompletedAt, run.Commodity, run.Quantity,
		run.BuyPrice, run.SellPrice, run.Profit, run.OriginLocationID,
		run.DestinationLocationID, run.ShipID, run.Notes, run.Status, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cargo run: %w", err)
	}
	return nil
}

// ListCargoRuns returns runs ordered by start time, newest first,
// optionally paginated.
func (s *Store) ListCargoRuns(opts types.QueryOptions) ([]types.CargoRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + cargoColumns + ` FROM cargo_runs
		 ORDER BY started_at DESC` + limitClause(opts.Limit, opts.Offset))
	if err != nil {
		return nil, fmt.Errorf("list cargo runs: %w", err)
	}
	return collectRows(rows, scanCargoRun)
}

// GetCargoRun returns the run with the given id, or nil when absent.
func (s *Store) GetCargoRun(id string) (*types.CargoRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getCargoRun(db, id)
}

func getCargoRun(db *sql.DB, id string) (*types.CargoRun, error) {
	row := db.QueryRow(`SELECT `+cargoColumns+` FROM cargo_runs WHERE id = ?`, id)
	run, err := scanCargoRun(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return run, nil
}

// ListCargoRunsByStatus returns runs with the given status, newest first.
func (s *Store) ListCargoRunsByStatus(status string) ([]types.CargoRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+cargoColumns+` FROM cargo_runs
		 WHERE status = ? ORDER BY started_at DESC`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("list cargo runs by status: %w", err)
	}
	return collectRows(rows, scanCargoRun)
}

// CreateCargoRun inserts a new run and returns the persisted row. Status
// defaults to in_progress and the start time to now.
func (s *Store) CreateCargoRun(run types.CargoRun) (*types.CargoRun, error) {
	if run.Commodity == "" {
		return nil, fmt.Errorf("%w: commodity", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if run.ID == "" {
		run.ID = newID()
	}
	if run.StartedAt == 0 {
		run.StartedAt = now
	}
	if run.Status == "" {
		run.Status = types.CargoStatusInProgress
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = now
	}

	if err := insertCargoRun(db, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// UpdateCargoRun merges the patch into an existing run. Returns
// ErrNotFound when the id does not exist.
func (s *Store) UpdateCargoRun(id string, p types.CargoRunPatch) (*types.CargoRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	run, err := getCargoRun(db, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("cargo run %s: %w", id, types.ErrNotFound)
	}

	if p.StartedAt != nil {
		run.StartedAt = *p.StartedAt
	}
	if p.Commodity != nil {
		run.Commodity = *p.Commodity
	}
	if p.Quantity != nil {
		run.Quantity = *p.Quantity
	}
	if p.BuyPrice != nil {
		run.BuyPrice = *p.BuyPrice
	}
	if p.SellPrice != nil {
		run.SellPrice = p.SellPrice
	}
	if p.OriginLocationID != nil {
		run.OriginLocationID = p.OriginLocationID
	}
	if p.DestinationLocationID != nil {
		run.DestinationLocationID = p.DestinationLocationID
	}
	if p.ShipID != nil {
		run.ShipID = p.ShipID
	}
	if p.Notes != nil {
		run.Notes = p.Notes
	}
	if p.Status != nil {
		run.Status = *p.Status
	}

	if err := updateCargoRunRow(db, run); err != nil {
		return nil, err
	}
	return run, nil
}

func updateCargoRunRow(db *sql.DB, run *types.CargoRun) error {
	_, err := db.Exec(
		`UPDATE cargo_runs SET started_at = ?, completed_at = ?, commodity = ?,
		 quantity = ?, buy_price = ?, sell_price = ?, profit = ?,
		 origin_location_id = ?, destination_location_id = ?, ship_id = ?,
		 notes = ?, status = ? WHERE id = ?`,
		run.StartedAt, run.CompletedAt, run.Commodity, run.Quantity,
		run.BuyPrice, run.SellPrice, run.Profit, run.OriginLocationID,
		run.DestinationLocationID, run.ShipID, run.Notes, run.Status, run.ID,
	)
	if err != nil {
		return fmt.Errorf("update cargo run: %w", err)
	}
	return nil
}

// CompleteCargoRun records the sell price, derives the profit as
// (sellPrice - buyPrice) * quantity, stamps the completion time, and
// moves the run to the completed status. Returns ErrNotFound, with no
// write, when the id does not exist.
func (s *Store) CompleteCargoRun(id string, sellPrice int64) (*types.CargoRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	run, err := getCargoRun(db, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("cargo run %s: %w", id, types.ErrNotFound)
	}

	now := nowMillis()
	profit := (sellPrice - run.BuyPrice) * run.Quantity
	run.SellPrice = &sellPrice
	run.Profit = &profit
	run.CompletedAt = &now
	run.Status = types.CargoStatusCompleted

	if err := updateCargoRunRow(db, run); err != nil {
		return nil, err
	}
	return run, nil
}

// DeleteCargoRun removes the run. Deleting a missing id is not an error.
func (s *Store) DeleteCargoRun(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM cargo_runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete cargo run: %w", err)
	}
	return nil
}

// SearchCargoRuns returns runs whose commodity contains the query,
// case-insensitively, newest first.
func (s *Store) SearchCargoRuns(query string) ([]types.CargoRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+cargoColumns+` FROM cargo_runs
		 WHERE commodity LIKE ? ORDER BY started_at DESC`,
		"%"+query+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search cargo runs: %w", err)
	}
	return collectRows(rows, scanCargoRun)
}
