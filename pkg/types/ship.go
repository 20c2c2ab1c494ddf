package types

// Ship is a vehicle the user owns or has wishlisted.
type Ship struct {
	ID            string  `json:"id"`
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	Nickname      *string `json:"nickname"`
	Variant       *string `json:"variant"`
	Role          *string `json:"role"`
	IsOwned       bool    `json:"isOwned"`
	AcquiredAt    *int64  `json:"acquiredAt"`
	AcquiredPrice *int64  `json:"acquiredPrice"`
	Notes         *string `json:"notes"`
	ImagePath     *string `json:"imagePath"`
	WikiURL       *string `json:"wikiUrl"`
	CreatedAt     int64   `json:"createdAt"`
	UpdatedAt     int64   `json:"updatedAt"`
}

// ShipPatch holds a partial update for a ship. Nil fields are left
// untouched; clearing a nullable column requires a full-row write.
type ShipPatch struct {
	Manufacturer  *string `json:"manufacturer"`
	Model         *string `json:"model"`
	Nickname      *string `json:"nickname"`
	Variant       *string `json:"variant"`
	Role          *string `json:"role"`
	IsOwned       *bool   `json:"isOwned"`
	AcquiredAt    *int64  `json:"acquiredAt"`
	AcquiredPrice *int64  `json:"acquiredPrice"`
	Notes         *string `json:"notes"`
	ImagePath     *string `json:"imagePath"`
	WikiURL       *string `json:"wikiUrl"`
}

// ShipLocation is a location sighting derived from journal history:
// a ship is "at" wherever its most recent location-bearing entry says.
type ShipLocation struct {
	EntryID      string  `json:"entryId"`
	LocationID   string  `json:"locationId"`
	LocationName *string `json:"locationName"`
	Timestamp    int64   `json:"timestamp"`
}

// ShipAtLocation pairs a ship with the timestamp it was last seen at the
// queried location.
type ShipAtLocation struct {
	Ship       Ship  `json:"ship"`
	LastSeenAt int64 `json:"lastSeenAt"`
}
