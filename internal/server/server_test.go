package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/routegraph"
	"github.com/corsair-sc/corsair/internal/uex"
)

type stubData struct {
	routes      []uex.TradeRoute
	terminals   []uex.Terminal
	commodities []uex.Commodity
	err         error
}

func (s *stubData) TradeRoutes(_ context.Context) ([]uex.TradeRoute, error) {
	return s.routes, s.err
}

func (s *stubData) Terminals(_ context.Context) ([]uex.Terminal, error) {
	return s.terminals, s.err
}

func (s *stubData) Commodities(_ context.Context) ([]uex.Commodity, error) {
	return s.commodities, s.err
}

func newTestServer(t *testing.T, data *stubData) *httptest.Server {
	t.Helper()

	registry, err := items.BuildRegistry(items.BuiltinItems())
	require.NoError(t, err)
	fleet := ships.Default()

	state := &State{
		Items:    registry,
		Fleet:    fleet,
		Analyzer: intel.New(data, registry, fleet),
		Data:     data,
	}

	g := routegraph.New()
	for i := range data.terminals {
		g.AddTerminal(&data.terminals[i])
	}
	g.ConnectSystem("Stanton")
	state.SetGraph(g)

	ts := httptest.NewServer(New("127.0.0.1:0", state).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func testData() *stubData {
	terminals := []uex.Terminal{
		{ID: 1, Code: "EVER", Name: "Everus Harbor", StarSystemName: "Stanton", Type: "station"},
		{ID: 2, Code: "A18", Name: "Area18", StarSystemName: "Stanton", Type: "landing_zone"},
	}
	return &stubData{
		terminals: terminals,
		routes: []uex.TradeRoute{
			{
				CommodityName:           "Laranite",
				TerminalOriginID:        1,
				TerminalOriginName:      "Everus Harbor",
				TerminalDestinationID:   2,
				TerminalDestinationName: "Area18",
				ProfitPerUnit:           12,
				SCUOrigin:               300,
				SCUDestination:          300,
			},
		},
		commodities: []uex.Commodity{{ID: 7, Code: "LARA", Name: "Laranite"}},
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, testData())

	resp, body := get(t, ts, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "ok", out["status"])
	assert.EqualValues(t, 2, out["nodes"])
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t, testData())

	resp, _ := get(t, ts, "/api/items")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestItemsEndpoints(t *testing.T) {
	ts := newTestServer(t, testData())

	t.Run("list all", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []items.Item
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Len(t, got, len(items.BuiltinItems()))
	})

	t.Run("get by id", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/carinite")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got items.Item
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Carinite", got.Name)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/no_such_item")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(body), "not found")
	})

	t.Run("by location", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/locations/Aberdeen")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []items.Item
		require.NoError(t, json.Unmarshal(body, &got))
		assert.NotEmpty(t, got)
	})

	t.Run("unknown location is empty array", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/locations/Nowhere")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(body[:2]))
	})

	t.Run("by system", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/systems/Stanton")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []items.Item
		require.NoError(t, json.Unmarshal(body, &got))
		assert.NotEmpty(t, got)
	})

	t.Run("by category", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/categories/mined_material")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []items.Item
		require.NoError(t, json.Unmarshal(body, &got))
		require.NotEmpty(t, got)
		for _, it := range got {
			assert.Equal(t, items.CategoryMinedMaterial, it.Category)
		}
	})

	t.Run("bogus category is empty array", func(t *testing.T) {
		resp, body := get(t, ts, "/api/items/categories/nonsense")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(body[:2]))
	})
}

func TestIntelEndpoints(t *testing.T) {
	ts := newTestServer(t, testData())

	t.Run("hot routes", func(t *testing.T) {
		resp, body := get(t, ts, "/api/routes/hot")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []intel.HotRoute
		require.NoError(t, json.Unmarshal(body, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Laranite", got[0].Commodity)
	})

	t.Run("chokepoints", func(t *testing.T) {
		resp, body := get(t, ts, "/api/routes/chokepoints?limit=1")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []routegraph.Chokepoint
		require.NoError(t, json.Unmarshal(body, &got))
		require.Len(t, got, 1)
	})

	t.Run("targets", func(t *testing.T) {
		resp, body := get(t, ts, "/api/intel/targets/Everus")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []intel.TargetPrediction
		require.NoError(t, json.Unmarshal(body, &got))
		require.Len(t, got, 1)
		assert.Equal(t, intel.Departing, got[0].Direction)
	})

	t.Run("no targets is empty array", func(t *testing.T) {
		resp, body := get(t, ts, "/api/intel/targets/GrimHEX")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(body[:2]))
	})

	t.Run("likely cargo", func(t *testing.T) {
		resp, body := get(t, ts, "/api/intel/cargo/Aberdeen")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []intel.CargoGuess
		require.NoError(t, json.Unmarshal(body, &got))
		assert.NotEmpty(t, got)
	})

	t.Run("ships", func(t *testing.T) {
		resp, body := get(t, ts, "/api/intel/ships")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []ships.CargoShip
		require.NoError(t, json.Unmarshal(body, &got))
		assert.NotEmpty(t, got)
	})
}

func TestDataEndpoints(t *testing.T) {
	ts := newTestServer(t, testData())

	resp, body := get(t, ts, "/api/data/terminals")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var terminals []uex.Terminal
	require.NoError(t, json.Unmarshal(body, &terminals))
	assert.Len(t, terminals, 2)

	resp, body = get(t, ts, "/api/data/commodities")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var commodities []uex.Commodity
	require.NoError(t, json.Unmarshal(body, &commodities))
	assert.Len(t, commodities, 1)
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	ts := newTestServer(t, &stubData{err: errors.New("uex down")})

	for _, path := range []string{
		"/api/routes/hot",
		"/api/routes/chokepoints",
		"/api/intel/targets/Everus",
		"/api/data/terminals",
		"/api/data/commodities",
	} {
		resp, body := get(t, ts, path)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode, path)
		assert.Contains(t, string(body), "unavailable", path)
	}
}

func TestLimitParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/routes/hot?limit=500", nil)
	assert.Equal(t, maxLimit, limitParam(req, 10), "clamped")

	req = httptest.NewRequest(http.MethodGet, "/api/routes/hot?limit=junk", nil)
	assert.Equal(t, 10, limitParam(req, 10), "default on garbage")

	req = httptest.NewRequest(http.MethodGet, "/api/routes/hot", nil)
	assert.Equal(t, 10, limitParam(req, 10))
}
