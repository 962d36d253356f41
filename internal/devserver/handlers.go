package devserver

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/freshcart/gridkit/internal/catalog"
	"github.com/freshcart/gridkit/pkg/engine"
	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/theme"
	"github.com/freshcart/gridkit/pkg/web"
	"github.com/freshcart/gridkit/pkg/widgets"
)

// maxItems bounds the item count accepted by the preview endpoints.
const maxItems = 500

// SolveResponse is the body of GET /v1/solve.
type SolveResponse struct {
	Width    float64            `json:"width"`
	Measured bool               `json:"measured"`
	Config   fluidgrid.Config   `json:"config"`
	Solution fluidgrid.Solution `json:"solution"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

// statusFor maps configuration errors to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.KindOf(err) == errors.KindConfig {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func queryError(name, format string, args ...any) error {
	err := errors.Errorf("devserver.query", errors.KindConfig, format, args...)
	err.Field = name
	return err
}

// queryFloat reads a finite float parameter, returning fallback when it is
// absent. strconv accepts NaN and Inf spellings, which are rejected here.
func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, queryError(name, "%q is not a number", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, queryError(name, "%q is not a finite number", raw)
	}
	return v, nil
}

func queryItems(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("items")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > maxItems {
		return 0, queryError("items", "%q is not in 0..%d", raw, maxItems)
	}
	return n, nil
}

// gridConfig reads min, max and gap over the server's grid config and
// validates the result.
func (s *Server) gridConfig(r *http.Request) (fluidgrid.Config, error) {
	cfg := s.opts.Config.Grid
	var err error
	if cfg.MinItemWidth, err = queryFloat(r, "min", cfg.MinItemWidth); err != nil {
		return cfg, err
	}
	if cfg.MaxItemWidth, err = queryFloat(r, "max", cfg.MaxItemWidth); err != nil {
		return cfg, err
	}
	if cfg.Gap, err = queryFloat(r, "gap", cfg.Gap); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("width") == "" {
		writeError(w, queryError("width", "width is required"))
		return
	}
	width, err := queryFloat(r, "width", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := s.gridConfig(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SolveResponse{
		Width:    width,
		Measured: width > 0,
		Config:   cfg,
		Solution: fluidgrid.Solve(width, cfg),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	preview := s.opts.Config.Preview
	width, err := queryFloat(r, "width", preview.Width)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := queryItems(r, preview.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := s.gridConfig(r)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := web.Markup(web.Grid{Config: cfg, Children: catalog.Cards(catalog.Sample(items))}, width)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := web.Document(s.opts.Title, body)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	preview := s.opts.Config.Preview
	width, err := queryFloat(r, "width", preview.Width)
	if err != nil {
		writeError(w, err)
		return
	}
	height, err := queryFloat(r, "height", preview.Height)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := queryItems(r, preview.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := s.gridConfig(r)
	if err != nil {
		writeError(w, err)
		return
	}

	h := engine.NewHeadless(graphics.Size{Width: width, Height: height})
	defer h.Unmount()

	grid := widgets.FluidGrid{
		Children:     catalog.Tiles(catalog.Sample(items)),
		MinItemWidth: cfg.MinItemWidth,
		MaxItemWidth: cfg.MaxItemWidth,
		Gap:          cfg.Gap,
	}
	if err := h.Mount(grid); err != nil {
		writeError(w, err)
		return
	}
	if err := h.PumpUntilSettled(engine.DefaultMaxFrames); err != nil {
		writeError(w, err)
		return
	}

	tree := h.RenderTree()
	if tree == nil {
		writeError(w, errors.Errorf("devserver.renderTree", errors.KindRender, "no render tree"))
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

// handleSwatch serves the square department image used by product cards.
func handleSwatch(w http.ResponseWriter, r *http.Request) {
	department, err := strconv.Atoi(chi.URLParam(r, "department"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	color := theme.Department(department)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1 1" preserveAspectRatio="none"><rect width="1" height="1" fill="%s"/></svg>`, color.Hex())
}
