package types

// Mission states.
const (
	MissionStatusActive    = "active"
	MissionStatusCompleted = "completed"
	MissionStatusFailed    = "failed"
	MissionStatusAbandoned = "abandoned"
)

// Mission type tags.
const (
	MissionTypeBounty        = "bounty"
	MissionTypeDelivery      = "delivery"
	MissionTypeMining        = "mining"
	MissionTypeSalvage       = "salvage"
	MissionTypeInvestigation = "investigation"
	MissionTypeEscort        = "escort"
)

// Mission is a contract or job accepted from a contractor.
type Mission struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	MissionType *string `json:"missionType"`
	Contractor  *string `json:"contractor"`
	Reward      *int64  `json:"reward"`
	Status      string  `json:"status"`
	AcceptedAt  int64   `json:"acceptedAt"`
	CompletedAt *int64  `json:"completedAt"`
	LocationID  *string `json:"locationId"`
	ShipID      *string `json:"shipId"`
	Notes       *string `json:"notes"`
	CreatedAt   int64   `json:"createdAt"`
}

// MissionPatch holds a partial update for a mission.
type MissionPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MissionType *string `json:"missionType"`
	Contractor  *string `json:"contractor"`
	Reward      *int64  `json:"reward"`
	Status      *string `json:"status"`
	AcceptedAt  *int64  `json:"acceptedAt"`
	LocationID  *string `json:"locationId"`
	ShipID      *string `json:"shipId"`
	Notes       *string `json:"notes"`
}
