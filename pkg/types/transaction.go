package types

// Transaction categories.
const (
	CategoryCargo    = "cargo"
	CategoryMission  = "mission"
	CategoryRepair   = "repair"
	CategoryFuel     = "fuel"
	CategoryPurchase = "purchase"
	CategorySale     = "sale"
	CategoryOther    = "other"
)

// Transaction is a signed ledger line. A positive amount is income, a
// negative amount is an expense; the sign is the sole type indicator.
type Transaction struct {
	ID             string  `json:"id"`
	Timestamp      int64   `json:"timestamp"`
	Amount         int64   `json:"amount"`
	Category       string  `json:"category"`
	Description    *string `json:"description"`
	LocationID     *string `json:"locationId"`
	ShipID         *string `json:"shipId"`
	JournalEntryID *string `json:"journalEntryId"`
	CreatedAt      int64   `json:"createdAt"`
}

// TransactionPatch holds a partial update for a transaction.
type TransactionPatch struct {
	Timestamp      *int64  `json:"timestamp"`
	Amount         *int64  `json:"amount"`
	Category       *string `json:"category"`
	Description    *string `json:"description"`
	LocationID     *string `json:"locationId"`
	ShipID         *string `json:"shipId"`
	JournalEntryID *string `json:"journalEntryId"`
}
