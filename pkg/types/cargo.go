package types

// Cargo run states. A run starts in progress and reaches a terminal
// state when completed or failed.
const (
	CargoStatusInProgress = "in_progress"
	CargoStatusCompleted  = "completed"
	CargoStatusFailed     = "failed"
)

// CargoRun is a buy/sell trading trip. Profit is derived as
// (sellPrice - buyPrice) * quantity and populated only when the run
// transitions to completed.
type CargoRun struct {
	ID                    string  `json:"id"`
	StartedAt             int64   `json:"startedAt"`
	CompletedAt           *int64  `json:"completedAt"`
	Commodity             string  `json:"commodity"`
	Quantity              int64   `json:"quantity"`
	BuyPrice              int64   `json:"buyPrice"`
	SellPrice             *int64  `json:"sellPrice"`
	Profit                *int64  `json:"profit"`
	OriginLocationID      *string `json:"originLocationId"`
	DestinationLocationID *string `json:"destinationLocationId"`
	ShipID                *string `json:"shipId"`
	Notes                 *string `json:"notes"`
	Status                string  `json:"status"`
	CreatedAt             int64   `json:"createdAt"`
}

// CargoRunPatch holds a partial update for a cargo run.
type CargoRunPatch struct {
	StartedAt             *int64  `json:"startedAt"`
	Commodity             *string `json:"commodity"`
	Quantity              *int64  `json:"quantity"`
	BuyPrice              *int64  `json:"buyPrice"`
	SellPrice             *int64  `json:"sellPrice"`
	OriginLocationID      *string `json:"originLocationId"`
	DestinationLocationID *string `json:"destinationLocationId"`
	ShipID                *string `json:"shipId"`
	Notes                 *string `json:"notes"`
	Status                *string `json:"status"`
}
