package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/graphics"
)

// FluidGrid lays out its children in as many equal-width columns as fit.
//
// The grid measures itself with a [LayoutObserver] and renders nothing until
// it has been laid out at a positive width. After that, every layout at a new
// width re-solves the grid on the next frame. Children are placed row by row in
// slots of the solved item width with Gap between them in both directions.
// Nil children are skipped, typed nil pointers included, and children are
// matched across rebuilds by position.
//
// MinItemWidth and MaxItemWidth default to 140 and 200 when left at zero. A
// zero Gap is used as is; use [FluidGridOf] for the default gap of 12.
type FluidGrid struct {
	core.StatefulBase
	Children     []core.Widget
	MinItemWidth float64
	MaxItemWidth float64
	Gap          float64
}

// FluidGridOf creates a grid with the default configuration.
func FluidGridOf(children ...core.Widget) FluidGrid {
	cfg := fluidgrid.DefaultConfig()
	return FluidGrid{
		Children:     children,
		MinItemWidth: cfg.MinItemWidth,
		MaxItemWidth: cfg.MaxItemWidth,
		Gap:          cfg.Gap,
	}
}

// Config returns the layout configuration with defaults applied.
func (g FluidGrid) Config() fluidgrid.Config {
	return fluidgrid.Config{
		MinItemWidth: g.MinItemWidth,
		MaxItemWidth: g.MaxItemWidth,
		Gap:          g.Gap,
	}.WithDefaults()
}

func (g FluidGrid) CreateState() core.State {
	return &fluidGridState{}
}

type fluidGridState struct {
	core.StateBase
	controller *fluidgrid.Controller
}

func (s *fluidGridState) widget() FluidGrid {
	return s.Element().Widget().(FluidGrid)
}

func (s *fluidGridState) InitState() {
	s.controller = core.UseController(s, func() *fluidgrid.Controller {
		return fluidgrid.NewController(s.widget().Config())
	})
}

func (s *fluidGridState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.controller.SetConfig(s.widget().Config())
}

// onLayout is the width observer callback. It fires once the layout flush
// has finished; the rebuild goes through SetState into the next frame.
func (s *fluidGridState) onLayout(rect graphics.Rect) {
	if s.controller.Observe(rect.Width()) {
		s.SetState(nil)
	}
}

func (s *fluidGridState) Build(ctx core.BuildContext) core.Widget {
	return LayoutObserver{
		OnLayout: s.onLayout,
		Child:    s.body(),
	}
}

func (s *fluidGridState) body() core.Widget {
	solution, ok := s.controller.Solution()
	if !ok {
		return nil
	}
	gap := s.controller.Config().Gap
	slots := fluidgrid.Arrange(fluidgrid.Compact(s.widget().Children), solution, gap)
	children := make([]core.Widget, len(slots))
	for i, slot := range slots {
		children[i] = GridSlot{Width: slot.Width, Child: slot.Item}
	}
	return gridBody{Solution: solution, Gap: gap, Children: children}
}
