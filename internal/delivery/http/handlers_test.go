package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/erbil-dashboard/internal/catalog"
	"github.com/smartcity/erbil-dashboard/internal/observability"
	"github.com/smartcity/erbil-dashboard/internal/repository/postgres"
	"github.com/smartcity/erbil-dashboard/internal/service"
)

const animationDoc = `{"v":"5.7.4","fr":30,"layers":[]}`

type envelope struct {
	Success bool            `json:"success"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type mapView struct {
	Primitives []map[string]any `json:"primitives"`
	Seed       int64            `json:"seed"`
	Summary    struct {
		Year         int      `json:"year"`
		ActiveLayers []string `json:"active_layers"`
	} `json:"summary"`
	RenderedAt time.Time `json:"rendered_at"`
}

func newTestApp(t *testing.T, animationStatus int) *fiber.App {
	t.Helper()

	anim := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(animationStatus)
		_, _ = w.Write([]byte(animationDoc))
	}))
	t.Cleanup(anim.Close)

	metrics := observability.NewMetricsForTesting()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC))
	mapSvc := service.NewMapService(catalog.Default(), postgres.NewMockRepository(), clock, metrics)
	t.Cleanup(mapSvc.WaitBackground)
	loader := service.NewAnimationLoader(anim.URL, metrics)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, mapSvc, loader)
	return app
}

func do(t *testing.T, app *fiber.App, req *nethttp.Request) (*nethttp.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeView(t *testing.T, body []byte) mapView {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.True(t, env.Success)
	var view mapView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	return view
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "ok", got["database"])
}

func TestGetCatalog(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/catalog", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(env.Data, &cat))
	assert.Equal(t, catalog.Default(), cat)
}

func TestGetMap_NoLayers(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/map", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	view := decodeView(t, body)
	require.Len(t, view.Primitives, 1)
	assert.Equal(t, "marker", view.Primitives[0]["kind"])
	assert.Equal(t, 2024, view.Summary.Year)
	assert.True(t, view.RenderedAt.Equal(time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC)))
}

func TestGetMap_QuerySelection(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	url := "/api/v1/map?landuse=true&roads=true&categories=Commercial,Residential,Airport&year=1900&seed=7"
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, url, nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	view := decodeView(t, body)

	kinds := make([]string, 0, len(view.Primitives))
	for _, p := range view.Primitives {
		kinds = append(kinds, p["kind"].(string))
	}
	assert.Equal(t, []string{"marker", "circle", "circle", "polyline", "polyline"}, kinds)
	assert.Equal(t, "Main Road", view.Primitives[3]["label"])
	assert.Equal(t, int64(7), view.Seed)
	assert.Equal(t, 2015, view.Summary.Year)
	assert.Equal(t, []string{"land_use", "roads"}, view.Summary.ActiveLayers)
}

func TestGetMap_SeedIsReproducible(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	url := "/api/v1/map?climate=true&density=true&seed=42"

	_, first := do(t, app, httptest.NewRequest(nethttp.MethodGet, url, nil))
	_, second := do(t, app, httptest.NewRequest(nethttp.MethodGet, url, nil))

	assert.Equal(t, decodeView(t, first).Primitives, decodeView(t, second).Primitives)
}

func TestGetMap_InvalidSeed(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/map?seed=abc", nil))

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.True(t, env.Error)
	assert.Equal(t, "Invalid seed", env.Message)
}

func TestPostMap(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/map",
		strings.NewReader(`{"show_vegetation":true,"show_density":true,"seed":3}`))
	req.Header.Set("Content-Type", "application/json")

	resp, body := do(t, app, req)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	view := decodeView(t, body)
	require.Len(t, view.Primitives, 5)
	assert.Equal(t, "heat_cloud", view.Primitives[4]["kind"])
	assert.Equal(t, 0.3, view.Primitives[4]["min_opacity"])
	assert.Equal(t, 2024, view.Summary.Year)
	assert.Equal(t, int64(3), view.Seed)
}

func TestPostMap_InvalidBody(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/map", strings.NewReader(`{"show_roads":`))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := do(t, app, req)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestGetMapGeoJSON(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/map/geojson?roads=true&seed=1", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

	var fc struct {
		Type     string           `json:"type"`
		Zoom     int              `json:"zoom"`
		Features []map[string]any `json:"features"`
	}
	require.NoError(t, json.Unmarshal(body, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Equal(t, 15, fc.Zoom)
	assert.Len(t, fc.Features, 3)
}

func TestGetAnimation_Available(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/animation", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var got struct {
		Available bool            `json:"available"`
		Data      json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.True(t, got.Available)
	assert.JSONEq(t, animationDoc, string(got.Data))
}

func TestGetAnimation_Unavailable(t *testing.T) {
	app := newTestApp(t, nethttp.StatusNotFound)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/animation", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, false, got["available"])
	assert.Equal(t, "animation unavailable", got["message"])
	assert.NotContains(t, got, "data")
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)
	resp, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMap_ZeroYearDefaultsToLatest(t *testing.T) {
	app := newTestApp(t, nethttp.StatusOK)

	_, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/map?year=0", nil))
	assert.Equal(t, 2024, decodeView(t, body).Summary.Year)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/map", strings.NewReader(`{"year":0}`))
	req.Header.Set("Content-Type", "application/json")
	_, body = do(t, app, req)
	assert.Equal(t, 2024, decodeView(t, body).Summary.Year)

	_, body = do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/v1/map?year=2017", nil))
	assert.Equal(t, 2017, decodeView(t, body).Summary.Year)
}
