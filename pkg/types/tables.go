package types

// Table names, in the fixed backup insertion order: referenced rows are
// loaded before the rows that point at them.
const (
	TableShips          = "ships"
	TableLocations      = "locations"
	TableJournalEntries = "journal_entries"
	TableTransactions   = "transactions"
	TableCargoRuns      = "cargo_runs"
	TableMissions       = "missions"
	TableScreenshots    = "screenshots"
	TableSessions       = "sessions"
)

// TableOrder lists all tables in backup insertion order.
var TableOrder = []string{
	TableShips,
	TableLocations,
	TableJournalEntries,
	TableTransactions,
	TableCargoRuns,
	TableMissions,
	TableScreenshots,
	TableSessions,
}

// QueryOptions carries optional pagination for list operations.
// Zero values mean "no limit" and "no offset".
type QueryOptions struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}
