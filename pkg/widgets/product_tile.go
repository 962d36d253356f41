package widgets

import (
	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
	"github.com/freshcart/gridkit/pkg/theme"
)

// ProductTile is a grocery product placeholder: a square image area above a
// one-line label.
//
// Width is the side of the image square. Inside a [FluidGrid] it is injected
// with the solved item width, so the image always matches its slot. Outside a
// grid, a zero Width falls back to the incoming max width. Height overrides the
// computed height when set.
type ProductTile struct {
	core.RenderObjectBase
	Label  string
	Color  graphics.Color
	Height float64
	Width  float64
}

var _ fluidgrid.Sizable[core.Widget] = ProductTile{}

// WithWidth returns a copy of the tile sized to width.
func (p ProductTile) WithWidth(width float64) core.Widget {
	p.Width = width
	return p
}

func (p ProductTile) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderProductTile{}
	r.update(p)
	r.SetSelf(r)
	return r
}

func (p ProductTile) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderProductTile); ok {
		r.update(p)
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

type renderProductTile struct {
	layout.RenderBoxBase
	label  string
	color  graphics.Color
	height float64
	width  float64
	side   float64
}

func (r *renderProductTile) update(p ProductTile) {
	r.label = p.Label
	r.color = p.Color
	r.height = p.Height
	r.width = p.Width
}

// ImageSide returns the side of the image square from the last layout.
func (r *renderProductTile) ImageSide() float64 {
	return r.side
}

func (r *renderProductTile) DebugProperties() map[string]any {
	return map[string]any{"label": r.label, "imageSide": r.side}
}

func (r *renderProductTile) PerformLayout() {
	constraints := r.Constraints()
	side := r.width
	if side <= 0 && constraints.HasBoundedWidth() {
		side = constraints.MaxWidth
	}
	r.side = side

	height := r.height
	if height <= 0 {
		height = side + graphics.TextHeight() + 2*theme.TilePadding
	}
	r.SetSize(constraints.Constrain(graphics.Size{Width: side, Height: height}))
}

func (r *renderProductTile) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.Paint{Color: theme.Surface})
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, r.side, r.side), graphics.Paint{Color: r.color})
	if r.label != "" {
		baseline := r.side + theme.TilePadding + graphics.TextAscent()
		ctx.Canvas.DrawText(r.label, graphics.Offset{X: theme.TilePadding, Y: baseline}, graphics.Paint{Color: theme.OnSurface})
	}
}

func (r *renderProductTile) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}
