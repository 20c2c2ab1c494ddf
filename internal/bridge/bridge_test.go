// Envelope-level tests against a real store behind httptest.
package bridge

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skryking/deckhand/internal/store"
	"github.com/skryking/deckhand/pkg/types"
)

// setupBridge runs a bridge over a fresh store and returns the test
// server plus the store for direct seeding.
func setupBridge(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "deckhand.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := NewServer(st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, st
}

// post sends one invoke request and decodes the envelope with data left
// raw.
func post(t *testing.T, ts *httptest.Server, method string, args ...any) clientEnvelope {
	t.Helper()

	raw := make([]json.RawMessage, len(args))
	for i, arg := range args {
		b, err := json.Marshal(arg)
		require.NoError(t, err)
		raw[i] = b
	}
	body, err := json.Marshal(invokeRequest{Method: method, Args: raw})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/invoke", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var env clientEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestInvokeCreateAndFind(t *testing.T) {
	ts, _ := setupBridge(t)

	env := post(t, ts, "db:ships:create", map[string]any{
		"manufacturer": "Drake",
		"model":        "Cutlass Black",
	})
	require.True(t, env.Success, env.Error)

	var created types.Ship
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	// The ownership default applies when the caller omits the key.
	assert.True(t, created.IsOwned)

	env = post(t, ts, "db:ships:findById", created.ID)
	require.True(t, env.Success)
	var found types.Ship
	require.NoError(t, json.Unmarshal(env.Data, &found))
	assert.Equal(t, created.ID, found.ID)
}

func TestInvokeFindByIdAbsent(t *testing.T) {
	ts, _ := setupBridge(t)

	env := post(t, ts, "db:ships:findById", "no-such-id")
	// Absence is a normal result, not a failure.
	assert.True(t, env.Success)
	assert.True(t, len(env.Data) == 0 || string(env.Data) == "null")
}

func TestInvokeStoreErrorBecomesEnvelope(t *testing.T) {
	ts, _ := setupBridge(t)

	env := post(t, ts, "db:ships:create", map[string]any{"model": "Aurora"})
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "missing required field")

	env = post(t, ts, "db:missions:complete", "no-such-id")
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "not found")
}

func TestInvokeUnknownMethod(t *testing.T) {
	ts, _ := setupBridge(t)

	env := post(t, ts, "db:ships:teleport")
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "unknown method")
}

func TestInvokeMalformedBody(t *testing.T) {
	ts, _ := setupBridge(t)

	resp, err := http.Post(ts.URL+"/api/invoke", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var env clientEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "malformed request")
}

func TestInvokeExportCancelled(t *testing.T) {
	ts, _ := setupBridge(t)

	env := post(t, ts, "data:export", "")
	assert.False(t, env.Success)
	assert.Equal(t, "Export cancelled", env.Error)

	env = post(t, ts, "data:import", "")
	assert.False(t, env.Success)
	assert.Equal(t, "Import cancelled", env.Error)
}

func TestInvokeDataRoundTrip(t *testing.T) {
	ts, st := setupBridge(t)

	_, err := st.CreateShip(types.Ship{Manufacturer: "RSI", Model: "Aurora"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.json")
	env := post(t, ts, "data:export", path)
	require.True(t, env.Success, env.Error)
	assert.FileExists(t, path)

	env = post(t, ts, "data:clear")
	require.True(t, env.Success)

	env = post(t, ts, "data:import", path)
	require.True(t, env.Success, env.Error)

	ships, err := st.ListShips()
	require.NoError(t, err)
	assert.Len(t, ships, 1)
}

func TestInvokeGetPath(t *testing.T) {
	ts, st := setupBridge(t)

	env := post(t, ts, "data:getPath")
	require.True(t, env.Success)
	var path string
	require.NoError(t, json.Unmarshal(env.Data, &path))
	assert.Equal(t, st.Path(), path)
}

func TestHealthAndMetrics(t *testing.T) {
	ts, _ := setupBridge(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	post(t, ts, "db:ships:findAll")

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "deckhand_bridge_requests_total")
}
