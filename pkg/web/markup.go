package web

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

// Node is a piece of markup that can sit in a grid slot.
// A Node may also implement fluidgrid.Sizable[Node] to receive the slot width.
type Node interface {
	HTML() template.HTML
}

// Grid describes a fluid grid for the DOM renderer.
type Grid struct {
	Config   fluidgrid.Config
	Children []Node
}

type slotView struct {
	Index int
	Style template.CSS
	Body  template.HTML
}

type gridView struct {
	Style template.CSS
	Slots []slotView
}

var gridTemplate = template.Must(template.New("grid").Parse(
	`<div class="fluid-grid" style="{{.Style}}">` +
		`{{range .Slots}}<div class="fluid-grid-slot" data-index="{{.Index}}" style="{{.Style}}">{{.Body}}</div>{{end}}` +
		`</div>`))

// Markup renders grid at the given container width. While the width is not
// positive the grid is unmeasured and Markup returns empty markup.
func Markup(grid Grid, width float64) (template.HTML, error) {
	if !fluidgrid.Measurable(width) {
		return "", nil
	}
	cfg := grid.Config.WithDefaults()
	return render(cfg, fluidgrid.Solve(width, cfg), grid.Children)
}

func render(cfg fluidgrid.Config, solution fluidgrid.Solution, children []Node) (template.HTML, error) {
	slots := fluidgrid.Arrange(fluidgrid.Compact(children), solution, cfg.Gap)
	view := gridView{
		Style: template.CSS(fmt.Sprintf("display:flex;flex-wrap:wrap;gap:%spx", px(cfg.Gap))),
		Slots: make([]slotView, len(slots)),
	}
	for i, slot := range slots {
		w := px(slot.Width)
		view.Slots[i] = slotView{
			Index: slot.Index,
			Style: template.CSS(fmt.Sprintf("flex:0 0 %spx;width:%spx;overflow:hidden", w, w)),
			Body:  slot.Item.HTML(),
		}
	}

	var buf bytes.Buffer
	if err := gridTemplate.Execute(&buf, view); err != nil {
		return "", &errors.GridError{Op: "web.Markup", Kind: errors.KindRender, Err: err}
	}
	return template.HTML(buf.String()), nil
}

// px formats a width without rounding it.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
