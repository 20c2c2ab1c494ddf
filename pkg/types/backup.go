package types

// BackupVersion is the format tag written into every backup envelope.
// Import refuses documents that do not carry a version tag.
const BackupVersion = "1.0"

// BackupData holds every row of every table. Field order matches the
// fixed import insertion order.
type BackupData struct {
	Ships          []Ship         `json:"ships"`
	Locations      []Location     `json:"locations"`
	JournalEntries []JournalEntry `json:"journalEntries"`
	Transactions   []Transaction  `json:"transactions"`
	CargoRuns      []CargoRun     `json:"cargoRuns"`
	Missions       []Mission      `json:"missions"`
	Screenshots    []Screenshot   `json:"screenshots"`
	Sessions       []Session      `json:"sessions"`
}

// Backup is the on-disk snapshot envelope. ExportedAt is an ISO-8601
// timestamp recorded at export time.
type Backup struct {
	Version    string     `json:"version"`
	ExportedAt string     `json:"exportedAt"`
	Data       BackupData `json:"data"`
}
