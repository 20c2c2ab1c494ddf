package store

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

// clearOrder lists the tables wiped by import and clear. Order does not
// matter for integrity since references are loose strings, but a fixed
// order keeps the operations deterministic.
var clearOrder = []string{
	types.TableShips,
	types.TableLocations,
	types.TableJournalEntries,
	types.TableTransactions,
	types.TableCargoRuns,
	types.TableMissions,
	types.TableScreenshots,
	types.TableSessions,
}

// ExportData snapshots every table into a backup envelope. Rows keep
// whatever ordering their list accessors use, so a re-imported database
// lists identically.
func (s *Store) ExportData() (*types.Backup, error) {
	b := types.Backup{
		Version:    types.BackupVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	if b.Data.Ships, err = s.ListShips(); err != nil {
		return nil, err
	}
	if b.Data.Locations, err = s.ListLocations(); err != nil {
		return nil, err
	}
	if b.Data.JournalEntries, err = s.ListJournalEntries(types.QueryOptions{}); err != nil {
		return nil, err
	}
	if b.Data.Transactions, err = s.ListTransactions(types.QueryOptions{}); err != nil {
		return nil, err
	}
	if b.Data.CargoRuns, err = s.ListCargoRuns(types.QueryOptions{}); err != nil {
		return nil, err
	}
	if b.Data.Missions, err = s.ListMissions(types.QueryOptions{}); err != nil {
		return nil, err
	}
	if b.Data.Screenshots, err = s.ListScreenshots(types.QueryOptions{}); err != nil {
		return nil, err
	}
	if b.Data.Sessions, err = s.ListSessions(types.QueryOptions{}); err != nil {
		return nil, err
	}
	return &b, nil
}

// ExportToFile writes a backup snapshot as indented JSON.
func (s *Store) ExportToFile(path string) (*types.Backup, error) {
	b, err := s.ExportData()
	if err != nil {
		return nil, err
	}

	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return nil, fmt.Errorf("write backup: %w", err)
	}
	return b, nil
}

// ImportFromFile reads a backup document and replaces the database
// contents with it. The document's shape is checked before anything is
// touched: a backup without a data object is rejected, not treated as
// an empty snapshot.
func (s *Store) ImportFromFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var envelope struct {
		Version    string            `json:"version"`
		ExportedAt string            `json:"exportedAt"`
		Data       *types.BackupData `json:"data"`
	}
	if err := json.Unmarshal(buf, &envelope); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidBackup, err)
	}
	if envelope.Data == nil {
		return fmt.Errorf("%w: missing data", types.ErrInvalidBackup)
	}
	return s.ImportData(&types.Backup{
		Version:    envelope.Version,
		ExportedAt: envelope.ExportedAt,
		Data:       *envelope.Data,
	})
}

// ImportData validates the backup envelope, then wipes and reloads every
// table inside a single transaction. A failure anywhere rolls the whole
// import back, leaving the previous contents untouched.
func (s *Store) ImportData(b *types.Backup) error {
	if b == nil || b.Version == "" {
		return fmt.Errorf("%w: missing version", types.ErrInvalidBackup)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	if err := importInto(tx, &b.Data); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importInto(tx *sql.Tx, data *types.BackupData) error {
	for _, table := range clearOrder {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i := range data.Ships {
		if err := insertShip(tx, &data.Ships[i]); err != nil {
			return err
		}
	}
	for i := range data.Locations {
		if err := insertLocation(tx, &data.Locations[i]); err != nil {
			return err
		}
	}
	for i := range data.JournalEntries {
		if err := insertJournalEntry(tx, &data.JournalEntries[i]); err != nil {
			return err
		}
	}
	for i := range data.Transactions {
		if err := insertTransaction(tx, &data.Transactions[i]); err != nil {
			return err
		}
	}
	for i := range data.CargoRuns {
		if err := insertCargoRun(tx, &data.CargoRuns[i]); err != nil {
			return err
		}
	}
	for i := range data.Missions {
		if err := insertMission(tx, &data.Missions[i]); err != nil {
			return err
		}
	}
	for i := range data.Screenshots {
		if err := insertScreenshot(tx, &data.Screenshots[i]); err != nil {
			return err
		}
	}
	for i := range data.Sessions {
		if err := insertSession(tx, &data.Sessions[i]); err != nil {
			return err
		}
	}
	return nil
}

// ClearData deletes every row of every table in one transaction.
func (s *Store) ClearData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	for _, table := range clearOrder {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}
