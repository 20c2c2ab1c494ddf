package types

// Screenshot is an image record captured during play, optionally tied to
// a location, ship, or journal entry.
type Screenshot struct {
	ID             string   `json:"id"`
	FilePath       string   `json:"filePath"`
	ThumbnailPath  *string  `json:"thumbnailPath"`
	TakenAt        int64    `json:"takenAt"`
	Caption        *string  `json:"caption"`
	Tags           []string `json:"tags"`
	LocationID     *string  `json:"locationId"`
	ShipID         *string  `json:"shipId"`
	JournalEntryID *string  `json:"journalEntryId"`
	IsFavorite     bool     `json:"isFavorite"`
	CreatedAt      int64    `json:"createdAt"`
}

// ScreenshotPatch holds a partial update for a screenshot.
type ScreenshotPatch struct {
	FilePath       *string   `json:"filePath"`
	ThumbnailPath  *string   `json:"thumbnailPath"`
	TakenAt        *int64    `json:"takenAt"`
	Caption        *string   `json:"caption"`
	Tags           *[]string `json:"tags"`
	LocationID     *string   `json:"locationId"`
	ShipID         *string   `json:"shipId"`
	JournalEntryID *string   `json:"journalEntryId"`
	IsFavorite     *bool     `json:"isFavorite"`
}
