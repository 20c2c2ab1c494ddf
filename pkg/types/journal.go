package types

// Journal entry type tags.
const (
	EntryTypeJournal     = "journal"
	EntryTypeCargo       = "cargo"
	EntryTypeCombat      = "combat"
	EntryTypeAcquisition = "acquisition"
	EntryTypeMining      = "mining"
	EntryTypeScavenging  = "scavenging"
)

// JournalEntry is a free-text log record, optionally tied to a location
// and a ship. Location-bearing entries drive the derived "current
// location" queries.
type JournalEntry struct {
	ID         string   `json:"id"`
	Timestamp  int64    `json:"timestamp"`
	Title      *string  `json:"title"`
	Content    string   `json:"content"`
	EntryType  *string  `json:"entryType"`
	Mood       *string  `json:"mood"`
	LocationID *string  `json:"locationId"`
	ShipID     *string  `json:"shipId"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
	CreatedAt  int64    `json:"createdAt"`
	UpdatedAt  int64    `json:"updatedAt"`
}

// JournalEntryPatch holds a partial update for a journal entry.
type JournalEntryPatch struct {
	Timestamp  *int64    `json:"timestamp"`
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	EntryType  *string   `json:"entryType"`
	Mood       *string   `json:"mood"`
	LocationID *string   `json:"locationId"`
	ShipID     *string   `json:"shipId"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"isFavorite"`
}
