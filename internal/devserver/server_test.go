package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/gridkit/internal/config"
	"github.com/freshcart/gridkit/pkg/engine"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	cfg := config.Default()
	cfg.Preview.Title = "Specials <test>"
	return New(Options{Config: cfg, Logger: zerolog.New(logs)}), logs
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, logs := newTestServer(t)

	rec := get(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "/health", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestSolve(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/v1/solve?width=1000&min=100&max=120&gap=16")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Measured)
	assert.Equal(t, fluidgrid.Config{MinItemWidth: 100, MaxItemWidth: 120, Gap: 16}, body.Config)
	assert.Equal(t, fluidgrid.Solve(1000, body.Config), body.Solution)
	assert.Equal(t, 8, body.Solution.Columns)
}

func TestSolveUsesServerDefaults(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/v1/solve?width=520")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, fluidgrid.DefaultConfig(), body.Config)
	assert.Equal(t, 3, body.Solution.Columns)
}

func TestSolveUnmeasured(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/v1/solve?width=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Measured)
	assert.Equal(t, fluidgrid.Sentinel(fluidgrid.DefaultConfig()), body.Solution)
}

func TestBadQueryParameters(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"missing width", "/v1/solve", "width is required"},
		{"bad width", "/v1/solve?width=wide", "field=width"},
		{"bad gap", "/v1/solve?width=10&gap=x", "field=gap"},
		{"inverted bounds", "/v1/solve?width=10&min=200&max=100", "MaxItemWidth"},
		{"NaN width", "/v1/solve?width=NaN", "field=width"},
		{"infinite width", "/v1/solve?width=Inf", "field=width"},
		{"negative infinite gap", "/v1/solve?width=10&gap=-Inf", "field=gap"},
		{"NaN preview width", "/v1/preview?width=NaN", "field=width"},
		{"NaN render-tree width", "/v1/render-tree?width=NaN", "field=width"},
		{"NaN render-tree height", "/v1/render-tree?height=NaN", "field=height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.want)
		})
	}
}

func TestPreview(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/v1/preview?width=520&items=4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	page := rec.Body.String()
	assert.Contains(t, page, "<title>Specials &lt;test&gt;</title>")
	assert.Equal(t, 4, strings.Count(page, `class="product-card"`))
	assert.Contains(t, page, "width:165.33333333333334px")
	assert.Contains(t, page, `src="/v1/swatch/3.svg"`)
}

func TestPreviewBadItems(t *testing.T) {
	s, _ := newTestServer(t)

	for _, items := range []string{"-1", "many", fmt.Sprint(maxItems + 1)} {
		rec := get(t, s, "/v1/preview?items="+items)
		assert.Equal(t, http.StatusBadRequest, rec.Code, items)
	}
}

func TestRenderTree(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/v1/render-tree?width=520&height=400&items=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var tree engine.RenderTreeNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))

	var slots int
	var grid *engine.RenderTreeNode
	tree.Walk(func(n *engine.RenderTreeNode) {
		switch n.Type {
		case "renderGridSlot":
			slots++
			assert.InDelta(t, 165.333333, float64(n.Size.Width), 1e-5)
		case "renderFluidGrid":
			grid = n
		}
	})
	assert.Equal(t, 3, slots)
	require.NotNil(t, grid)
	assert.Equal(t, float64(3), grid.Properties["columns"])
	assert.Equal(t, float64(1), grid.Properties["rows"])
}

func TestSwatch(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/v1/swatch/2.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = get(t, s, "/v1/swatch/abc.svg")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartShutdown(t *testing.T) {
	s := New(Options{Addr: "127.0.0.1:0", Logger: zerolog.Nop()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := s.Start(ctx)
	require.NoError(t, err)

	again, err := s.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, addr, again, "Start is idempotent while running")

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	require.NoError(t, s.Shutdown(shutdownCtx))
	require.NoError(t, s.Shutdown(shutdownCtx), "second Shutdown is a no-op")

	_, err = client.Get("http://" + addr + "/health")
	assert.Error(t, err)
}
