package store

import (
	"database/sql"
	"fmt"

	"github.com/skryking/deckhand/pkg/types"
)

const missionColumns = `id, title, description, mission_type, contractor, reward,
	status, accepted_at, completed_at, location_id, ship_id, notes, created_at`

func scanMission(row rowScanner) (*types.Mission, error) {
	var m types.Mission
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.MissionType, &m.Contractor, &m.Reward,
		&m.Status, &m.AcceptedAt, &m.CompletedAt, &m.LocationID, &m.ShipID,
		&m.Notes, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan mission: %w", err)
	}
	return &m, nil
}

func insertMission(ex execer, m *types.Mission) error {
	_, err := ex.Exec(
		`INSERT INTO missions (`+missionColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Description, m.MissionType, m.Contractor, m.Reward,
		m.Status, m.AcceptedAt, m.CompletedAt, m.LocationID, m.ShipID,
		m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mission: %w", err)
	}
	return nil
}

// ListMissions returns missions ordered by acceptance time, newest
// first, optionally paginated.
func (s *Store) ListMissions(opts types.QueryOptions) ([]types.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT ` + missionColumns + ` FROM missions
		 ORDER BY accepted_at DESC` + limitClause(opts.Limit, opts.Offset))
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	return collectRows(rows, scanMission)
}

// GetMission returns the mission with the given id, or nil when absent.
func (s *Store) GetMission(id string) (*types.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getMission(db, id)
}

func getMission(db *sql.DB, id string) (*types.Mission, error) {
	row := db.QueryRow(`SELECT `+missionColumns+` FROM missions WHERE id = ?`, id)
	m, err := scanMission(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// ListMissionsByStatus returns missions with the given status, newest
// first.
func (s *Store) ListMissionsByStatus(status string) ([]types.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+missionColumns+` FROM missions
		 WHERE status = ? ORDER BY accepted_at DESC`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("list missions by status: %w", err)
	}
	return collectRows(rows, scanMission)
}

// ActiveMissions returns every mission still in the active status.
func (s *Store) ActiveMissions() ([]types.Mission, error) {
	return s.ListMissionsByStatus(types.MissionStatusActive)
}

// CreateMission inserts a new mission and returns the persisted row.
// Status defaults to active and the acceptance time to now.
func (s *Store) CreateMission(m types.Mission) (*types.Mission, error) {
	if m.Title == "" {
		return nil, fmt.Errorf("%w: title", types.ErrMissingField)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	if m.ID == "" {
		m.ID = newID()
	}
	if m.Status == "" {
		m.Status = types.MissionStatusActive
	}
	if m.AcceptedAt == 0 {
		m.AcceptedAt = now
	}
	if m.CreatedAt == 0 {
		m.CreatedAt = now
	}

	if err := insertMission(db, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMission merges the patch into an existing mission. Returns
// ErrNotFound when the id does not exist.
func (s *Store) UpdateMission(id string, p types.MissionPatch) (*types.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	m, err := getMission(db, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("mission %s: %w", id, types.ErrNotFound)
	}

	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.MissionType != nil {
		m.MissionType = p.MissionType
	}
	if p.Contractor != nil {
		m.Contractor = p.Contractor
	}
	if p.Reward != nil {
		m.Reward = p.Reward
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.AcceptedAt != nil {
		m.AcceptedAt = *p.AcceptedAt
	}
	if p.LocationID != nil {
		m.LocationID = p.LocationID
	}
	if p.ShipID != nil {
		m.ShipID = p.ShipID
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}

	if err := updateMissionRow(db, m); err != nil {
		return nil, err
	}
	return m, nil
}

func updateMissionRow(db *sql.DB, m *types.Mission) error {
	_, err := db.Exec(
		`UPDATE missions SET title = ?, description = ?, mission_type = ?,
		 contractor = ?, reward = ?, status = ?, accepted_at = ?,
		 completed_at = ?, location_id = ?, ship_id = ?, notes = ?
		 WHERE id = ?`,
		m.Title, m.Description, m.MissionType, m.Contractor, m.Reward,
		m.Status, m.AcceptedAt, m.CompletedAt, m.LocationID, m.ShipID,
		m.Notes, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update mission: %w", err)
	}
	return nil
}

// CompleteMission moves the mission to the completed status and stamps
// the completion time. Returns ErrNotFound when the id does not exist.
func (s *Store) CompleteMission(id string) (*types.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	m, err := getMission(db, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("mission %s: %w", id, types.ErrNotFound)
	}

	now := nowMillis()
	m.Status = types.MissionStatusCompleted
	m.CompletedAt = &now

	if err := updateMissionRow(db, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMission removes the mission. Deleting a missing id is not an
// error.
func (s *Store) DeleteMission(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM missions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete mission: %w", err)
	}
	return nil
}

// SearchMissions returns missions whose title, description, or
// contractor contains the query, case-insensitively, newest first.
func (s *Store) SearchMissions(query string) ([]types.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	term := "%" + query + "%"
	rows, err := db.Query(
		`SELECT `+missionColumns+` FROM missions
		 WHERE title LIKE ? OR description LIKE ? OR contractor LIKE ?
		 ORDER BY accepted_at DESC`,
		term, term, term,
	)
	if err != nil {
		return nil, fmt.Errorf("search missions: %w", err)
	}
	return collectRows(rows, scanMission)
}
