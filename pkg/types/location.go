package types

// Location type tags used by the original dataset. The column is free
// text; these are the conventional values.
const (
	LocationTypeSystem   = "system"
	LocationTypePlanet   = "planet"
	LocationTypeMoon     = "moon"
	LocationTypeStation  = "station"
	LocationTypeOutpost  = "outpost"
	LocationTypeCity     = "city"
	LocationTypeLandmark = "landmark"
)

// Coordinate units. Each axis carries its own unit tag.
const (
	UnitKilometers = "km"
	UnitMeters     = "m"
)

// Location is a place, optionally nested under a parent location.
// ParentID forms a tree; the store rejects writes that would create a
// cycle.
type Location struct {
	ID             string   `json:"id"`
	ParentID       *string  `json:"parentId"`
	Name           string   `json:"name"`
	Type           *string  `json:"type"`
	Services       []string `json:"services"`
	Notes          *string  `json:"notes"`
	CoordX         *float64 `json:"coordX"`
	CoordXUnit     *string  `json:"coordXUnit"`
	CoordY         *float64 `json:"coordY"`
	CoordYUnit     *string  `json:"coordYUnit"`
	CoordZ         *float64 `json:"coordZ"`
	CoordZUnit     *string  `json:"coordZUnit"`
	FirstVisitedAt *int64   `json:"firstVisitedAt"`
	VisitCount     int64    `json:"visitCount"`
	IsFavorite     bool     `json:"isFavorite"`
	WikiURL        *string  `json:"wikiUrl"`
	CreatedAt      int64    `json:"createdAt"`
	UpdatedAt      int64    `json:"updatedAt"`
}

// LocationPatch holds a partial update for a location.
type LocationPatch struct {
	ParentID   *string   `json:"parentId"`
	Name       *string   `json:"name"`
	Type       *string   `json:"type"`
	Services   *[]string `json:"services"`
	Notes      *string   `json:"notes"`
	CoordX     *float64  `json:"coordX"`
	CoordXUnit *string   `json:"coordXUnit"`
	CoordY     *float64  `json:"coordY"`
	CoordYUnit *string   `json:"coordYUnit"`
	CoordZ     *float64  `json:"coordZ"`
	CoordZUnit *string   `json:"coordZUnit"`
	IsFavorite *bool     `json:"isFavorite"`
	WikiURL    *string   `json:"wikiUrl"`
}
