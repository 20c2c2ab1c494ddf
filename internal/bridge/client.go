package bridge

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/skryking/deckhand/pkg/types"
)

// Client is the typed wrapper over the invoke endpoint: one accessor
// per entity family, each call posting a named request and unwrapping
// the envelope into a plain (T, error) return.
type Client struct {
	base string
	http *http.Client
}

// NewClient targets a bridge at base (e.g. "http://127.0.0.1:8632").
func NewClient(base string) *Client {
	return &Client{base: base, http: &http.Client{}}
}

// clientEnvelope keeps data raw so each wrapper can decode into its own
// result type.
type clientEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// invoke posts one named request. A false success flag surfaces as an
// error carrying the envelope's message; out may be nil for calls with
// no result payload.
func (c *Client) invoke(ctx context.Context, method string, out any, args ...any) error {
	raw := make([]json.RawMessage, len(args))
	for i, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			return fmt.Errorf("marshal argument %d: %w", i, err)
		}
		raw[i] = b
	}

	body, err := json.Marshal(invokeRequest{Method: method, Args: raw})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/invoke", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", method, err)
	}
	defer resp.Body.Close()

	var env clientEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response for %s: %w", method, err)
	}
	if !env.Success {
		return fmt.Errorf("%s: %s", method, env.Error)
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode result for %s: %w", method, err)
		}
	}
	return nil
}

// Ships returns the ship accessor.
func (c *Client) Ships() *ShipsClient { return &ShipsClient{c} }

// Locations returns the location accessor.
func (c *Client) Locations() *LocationsClient { return &LocationsClient{c} }

// Journal returns the journal accessor.
func (c *Client) Journal() *JournalClient { return &JournalClient{c} }

// Transactions returns the transaction accessor.
func (c *Client) Transactions() *TransactionsClient { return &TransactionsClient{c} }

// Cargo returns the cargo run accessor.
func (c *Client) Cargo() *CargoClient { return &CargoClient{c} }

// Missions returns the mission accessor.
func (c *Client) Missions() *MissionsClient { return &MissionsClient{c} }

// Screenshots returns the screenshot accessor.
func (c *Client) Screenshots() *ScreenshotsClient { return &ScreenshotsClient{c} }

// Sessions returns the session accessor.
func (c *Client) Sessions() *SessionsClient { return &SessionsClient{c} }

// Data returns the export/import accessor.
func (c *Client) Data() *DataClient { return &DataClient{c} }

type ShipsClient struct{ c *Client }

func (s *ShipsClient) FindAll(ctx context.Context) ([]types.Ship, error) {
	var out []types.Ship
	return out, s.c.invoke(ctx, "db:ships:findAll", &out)
}

func (s *ShipsClient) FindByID(ctx context.Context, id string) (*types.Ship, error) {
	var out *types.Ship
	return out, s.c.invoke(ctx, "db:ships:findById", &out, id)
}

func (s *ShipsClient) Create(ctx context.Context, sh types.Ship) (*types.Ship, error) {
	var out *types.Ship
	return out, s.c.invoke(ctx, "db:ships:create", &out, sh)
}

func (s *ShipsClient) Update(ctx context.Context, id string, patch types.ShipPatch) (*types.Ship, error) {
	var out *types.Ship
	return out, s.c.invoke(ctx, "db:ships:update", &out, id, patch)
}

func (s *ShipsClient) Delete(ctx context.Context, id string) error {
	return s.c.invoke(ctx, "db:ships:delete", nil, id)
}

func (s *ShipsClient) Search(ctx context.Context, query string) ([]types.Ship, error) {
	var out []types.Ship
	return out, s.c.invoke(ctx, "db:ships:search", &out, query)
}

func (s *ShipsClient) CurrentLocation(ctx context.Context, id string) (*types.ShipLocation, error) {
	var out *types.ShipLocation
	return out, s.c.invoke(ctx, "db:ships:getCurrentLocation", &out, id)
}

func (s *ShipsClient) LocationHistory(ctx context.Context, id string) ([]types.ShipLocation, error) {
	var out []types.ShipLocation
	return out, s.c.invoke(ctx, "db:ships:getLocationHistory", &out, id)
}

type LocationsClient struct{ c *Client }

func (l *LocationsClient) FindAll(ctx context.Context) ([]types.Location, error) {
	var out []types.Location
	return out, l.c.invoke(ctx, "db:locations:findAll", &out)
}

func (l *LocationsClient) FindByID(ctx context.Context, id string) (*types.Location, error) {
	var out *types.Location
	return out, l.c.invoke(ctx, "db:locations:findById", &out, id)
}

func (l *LocationsClient) FindByParentID(ctx context.Context, parentID *string) ([]types.Location, error) {
	var out []types.Location
	return out, l.c.invoke(ctx, "db:locations:findByParentId", &out, parentID)
}

func (l *LocationsClient) Favorites(ctx context.Context) ([]types.Location, error) {
	var out []types.Location
	return out, l.c.invoke(ctx, "db:locations:getFavorites", &out)
}

func (l *LocationsClient) Create(ctx context.Context, loc types.Location) (*types.Location, error) {
	var out *types.Location
	return out, l.c.invoke(ctx, "db:locations:create", &out, loc)
}

func (l *LocationsClient) Update(ctx context.Context, id string, patch types.LocationPatch) (*types.Location, error) {
	var out *types.Location
	return out, l.c.invoke(ctx, "db:locations:update", &out, id, patch)
}

func (l *LocationsClient) Delete(ctx context.Context, id string) error {
	return l.c.invoke(ctx, "db:locations:delete", nil, id)
}

func (l *LocationsClient) Search(ctx context.Context, query string) ([]types.Location, error) {
	var out []types.Location
	return out, l.c.invoke(ctx, "db:locations:search", &out, query)
}

func (l *LocationsClient) IncrementVisit(ctx context.Context, id string) (*types.Location, error) {
	var out *types.Location
	return out, l.c.invoke(ctx, "db:locations:incrementVisit", &out, id)
}

func (l *LocationsClient) ShipsAtLocation(ctx context.Context, id string) ([]types.ShipAtLocation, error) {
	var out []types.ShipAtLocation
	return out, l.c.invoke(ctx, "db:locations:getShipsAtLocation", &out, id)
}

type JournalClient struct{ c *Client }

func (j *JournalClient) FindAll(ctx context.Context, opts types.QueryOptions) ([]types.JournalEntry, error) {
	var out []types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:findAll", &out, opts)
}

func (j *JournalClient) FindByID(ctx context.Context, id string) (*types.JournalEntry, error) {
	var out *types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:findById", &out, id)
}

func (j *JournalClient) FindByType(ctx context.Context, entryType string) ([]types.JournalEntry, error) {
	var out []types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:findByType", &out, entryType)
}

func (j *JournalClient) Favorites(ctx context.Context) ([]types.JournalEntry, error) {
	var out []types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:getFavorites", &out)
}

func (j *JournalClient) Create(ctx context.Context, entry types.JournalEntry) (*types.JournalEntry, error) {
	var out *types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:create", &out, entry)
}

func (j *JournalClient) Update(ctx context.Context, id string, patch types.JournalEntryPatch) (*types.JournalEntry, error) {
	var out *types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:update", &out, id, patch)
}

func (j *JournalClient) Delete(ctx context.Context, id string) error {
	return j.c.invoke(ctx, "db:journal:delete", nil, id)
}

func (j *JournalClient) Search(ctx context.Context, query string) ([]types.JournalEntry, error) {
	var out []types.JournalEntry
	return out, j.c.invoke(ctx, "db:journal:search", &out, query)
}

func (j *JournalClient) Count(ctx context.Context) (int64, error) {
	var out int64
	return out, j.c.invoke(ctx, "db:journal:count", &out)
}

type TransactionsClient struct{ c *Client }

func (t *TransactionsClient) FindAll(ctx context.Context, opts types.QueryOptions) ([]types.Transaction, error) {
	var out []types.Transaction
	return out, t.c.invoke(ctx, "db:transactions:findAll", &out, opts)
}

func (t *TransactionsClient) Create(ctx context.Context, tx types.Transaction) (*types.Transaction, error) {
	var out *types.Transaction
	return out, t.c.invoke(ctx, "db:transactions:create", &out, tx)
}

func (t *TransactionsClient) Update(ctx context.Context, id string, patch types.TransactionPatch) (*types.Transaction, error) {
	var out *types.Transaction
	return out, t.c.invoke(ctx, "db:transactions:update", &out, id, patch)
}

func (t *TransactionsClient) Delete(ctx context.Context, id string) error {
	return t.c.invoke(ctx, "db:transactions:delete", nil, id)
}

func (t *TransactionsClient) FindByCategory(ctx context.Context, category string) ([]types.Transaction, error) {
	var out []types.Transaction
	return out, t.c.invoke(ctx, "db:transactions:findByCategory", &out, category)
}

func (t *TransactionsClient) FindByDateRange(ctx context.Context, start, end int64) ([]types.Transaction, error) {
	var out []types.Transaction
	return out, t.c.invoke(ctx, "db:transactions:findByDateRange", &out, start, end)
}

func (t *TransactionsClient) Balance(ctx context.Context) (int64, error) {
	var out int64
	return out, t.c.invoke(ctx, "db:transactions:getBalance", &out)
}

func (t *TransactionsClient) BalanceByCategory(ctx context.Context) (map[string]int64, error) {
	var out map[string]int64
	return out, t.c.invoke(ctx, "db:transactions:getBalanceByCategory", &out)
}

type CargoClient struct{ c *Client }

func (g *CargoClient) FindAll(ctx context.Context, opts types.QueryOptions) ([]types.CargoRun, error) {
	var out []types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:findAll", &out, opts)
}

func (g *CargoClient) FindByID(ctx context.Context, id string) (*types.CargoRun, error) {
	var out *types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:findById", &out, id)
}

func (g *CargoClient) FindByStatus(ctx context.Context, status string) ([]types.CargoRun, error) {
	var out []types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:findByStatus", &out, status)
}

func (g *CargoClient) Create(ctx context.Context, run types.CargoRun) (*types.CargoRun, error) {
	var out *types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:create", &out, run)
}

func (g *CargoClient) Update(ctx context.Context, id string, patch types.CargoRunPatch) (*types.CargoRun, error) {
	var out *types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:update", &out, id, patch)
}

func (g *CargoClient) Delete(ctx context.Context, id string) error {
	return g.c.invoke(ctx, "db:cargo:delete", nil, id)
}

func (g *CargoClient) Search(ctx context.Context, query string) ([]types.CargoRun, error) {
	var out []types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:search", &out, query)
}

func (g *CargoClient) Complete(ctx context.Context, id string, sellPrice int64) (*types.CargoRun, error) {
	var out *types.CargoRun
	return out, g.c.invoke(ctx, "db:cargo:complete", &out, id, sellPrice)
}

type MissionsClient struct{ c *Client }

func (m *MissionsClient) FindAll(ctx context.Context, opts types.QueryOptions) ([]types.Mission, error) {
	var out []types.Mission
	return out, m.c.invoke(ctx, "db:missions:findAll", &out, opts)
}

func (m *MissionsClient) FindByID(ctx context.Context, id string) (*types.Mission, error) {
	var out *types.Mission
	return out, m.c.invoke(ctx, "db:missions:findById", &out, id)
}

func (m *MissionsClient) FindByStatus(ctx context.Context, status string) ([]types.Mission, error) {
	var out []types.Mission
	return out, m.c.invoke(ctx, "db:missions:findByStatus", &out, status)
}

func (m *MissionsClient) Active(ctx context.Context) ([]types.Mission, error) {
	var out []types.Mission
	return out, m.c.invoke(ctx, "db:missions:getActive", &out)
}

func (m *MissionsClient) Create(ctx context.Context, mission types.Mission) (*types.Mission, error) {
	var out *types.Mission
	return out, m.c.invoke(ctx, "db:missions:create", &out, mission)
}

func (m *MissionsClient) Update(ctx context.Context, id string, patch types.MissionPatch) (*types.Mission, error) {
	var out *types.Mission
	return out, m.c.invoke(ctx, "db:missions:update", &out, id, patch)
}

func (m *MissionsClient) Complete(ctx context.Context, id string) (*types.Mission, error) {
	var out *types.Mission
	return out, m.c.invoke(ctx, "db:missions:complete", &out, id)
}

func (m *MissionsClient) Delete(ctx context.Context, id string) error {
	return m.c.invoke(ctx, "db:missions:delete", nil, id)
}

func (m *MissionsClient) Search(ctx context.Context, query string) ([]types.Mission, error) {
	var out []types.Mission
	return out, m.c.invoke(ctx, "db:missions:search", &out, query)
}

type ScreenshotsClient struct{ c *Client }

func (s *ScreenshotsClient) FindAll(ctx context.Context, opts types.QueryOptions) ([]types.Screenshot, error) {
	var out []types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:findAll", &out, opts)
}

func (s *ScreenshotsClient) FindByID(ctx context.Context, id string) (*types.Screenshot, error) {
	var out *types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:findById", &out, id)
}

func (s *ScreenshotsClient) FindByLocation(ctx context.Context, locationID string) ([]types.Screenshot, error) {
	var out []types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:findByLocation", &out, locationID)
}

func (s *ScreenshotsClient) Favorites(ctx context.Context) ([]types.Screenshot, error) {
	var out []types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:getFavorites", &out)
}

func (s *ScreenshotsClient) Create(ctx context.Context, sc types.Screenshot) (*types.Screenshot, error) {
	var out *types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:create", &out, sc)
}

func (s *ScreenshotsClient) Update(ctx context.Context, id string, patch types.ScreenshotPatch) (*types.Screenshot, error) {
	var out *types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:update", &out, id, patch)
}

func (s *ScreenshotsClient) Delete(ctx context.Context, id string) error {
	return s.c.invoke(ctx, "db:screenshots:delete", nil, id)
}

func (s *ScreenshotsClient) Search(ctx context.Context, query string) ([]types.Screenshot, error) {
	var out []types.Screenshot
	return out, s.c.invoke(ctx, "db:screenshots:search", &out, query)
}

type SessionsClient struct{ c *Client }

func (s *SessionsClient) FindAll(ctx context.Context, opts types.QueryOptions) ([]types.Session, error) {
	var out []types.Session
	return out, s.c.invoke(ctx, "db:sessions:findAll", &out, opts)
}

func (s *SessionsClient) FindByID(ctx context.Context, id string) (*types.Session, error) {
	var out *types.Session
	return out, s.c.invoke(ctx, "db:sessions:findById", &out, id)
}

func (s *SessionsClient) Active(ctx context.Context) (*types.Session, error) {
	var out *types.Session
	return out, s.c.invoke(ctx, "db:sessions:getActive", &out)
}

func (s *SessionsClient) Start(ctx context.Context, startingBalance *int64) (*types.Session, error) {
	var out *types.Session
	return out, s.c.invoke(ctx, "db:sessions:start", &out, startingBalance)
}

func (s *SessionsClient) End(ctx context.Context, id string, endingBalance *int64) (*types.Session, error) {
	var out *types.Session
	return out, s.c.invoke(ctx, "db:sessions:end", &out, id, endingBalance)
}

func (s *SessionsClient) Update(ctx context.Context, id string, patch types.SessionPatch) (*types.Session, error) {
	var out *types.Session
	return out, s.c.invoke(ctx, "db:sessions:update", &out, id, patch)
}

func (s *SessionsClient) Delete(ctx context.Context, id string) error {
	return s.c.invoke(ctx, "db:sessions:delete", nil, id)
}

type DataClient struct{ c *Client }

func (d *DataClient) Export(ctx context.Context, path string) error {
	return d.c.invoke(ctx, "data:export", nil, path)
}

func (d *DataClient) Import(ctx context.Context, path string) error {
	return d.c.invoke(ctx, "data:import", nil, path)
}

func (d *DataClient) Clear(ctx context.Context) error {
	return d.c.invoke(ctx, "data:clear", nil)
}

func (d *DataClient) Path(ctx context.Context) (string, error) {
	var out string
	return out, d.c.invoke(ctx, "data:getPath", &out)
}

func (d *DataClient) OpenFolder(ctx context.Context) error {
	return d.c.invoke(ctx, "data:openFolder", nil)
}
