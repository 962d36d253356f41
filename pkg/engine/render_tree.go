package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"

	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// maxTreeDepth limits recursion when serializing render trees.
const maxTreeDepth = 64

// RenderTreeNode is one render object in a serialized render tree. Floats
// go through SafeFloat because unbounded constraints are infinite.
type RenderTreeNode struct {
	Type        string           `json:"type"`
	Size        SafeSize         `json:"size"`
	Constraints *SafeConstraints `json:"constraints,omitempty"`
	Offset      SafeOffset       `json:"offset"`
	Depth       int              `json:"depth"`
	NeedsLayout bool             `json:"needsLayout"`
	NeedsPaint  bool             `json:"needsPaint"`
	Properties  map[string]any   `json:"properties,omitempty"`
	Children    []RenderTreeNode `json:"children,omitempty"`
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) || v == layout.Unbounded {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON accepts numbers and the strings written by MarshalJSON.
// "Infinity" decodes to layout.Unbounded.
func (f *SafeFloat) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*f = SafeFloat(layout.Unbounded)
	case `"-Infinity"`:
		*f = SafeFloat(math.Inf(-1))
	case `"NaN"`:
		*f = SafeFloat(math.NaN())
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = SafeFloat(v)
	}
	return nil
}

// SafeSize is a JSON-safe version of graphics.Size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeOffset is a JSON-safe version of graphics.Offset.
type SafeOffset struct {
	X SafeFloat `json:"x"`
	Y SafeFloat `json:"y"`
}

// SafeConstraints is a JSON-safe version of layout.Constraints.
type SafeConstraints struct {
	MinWidth  SafeFloat `json:"minWidth"`
	MaxWidth  SafeFloat `json:"maxWidth"`
	MinHeight SafeFloat `json:"minHeight"`
	MaxHeight SafeFloat `json:"maxHeight"`
}

// RenderTree serializes the current render tree, or returns nil when nothing
// is mounted.
func (h *Headless) RenderTree() *RenderTreeNode {
	root := h.RootRenderObject()
	if root == nil {
		return nil
	}
	node := SerializeRenderTree(root)
	return &node
}

// SerializeRenderTree captures obj and its descendants, down to maxTreeDepth
// levels.
func SerializeRenderTree(obj layout.RenderObject) RenderTreeNode {
	return serializeNode(obj, 0)
}

func serializeNode(obj layout.RenderObject, level int) RenderTreeNode {
	size := obj.Size()
	node := RenderTreeNode{
		Type:   renderTypeName(obj),
		Size:   SafeSize{Width: SafeFloat(size.Width), Height: SafeFloat(size.Height)},
		Offset: safeOffset(layout.ChildOffset(obj)),
	}

	type inspectable interface {
		Constraints() layout.Constraints
		Depth() int
		NeedsLayout() bool
		NeedsPaint() bool
	}
	if box, ok := obj.(inspectable); ok {
		c := box.Constraints()
		node.Constraints = &SafeConstraints{
			MinWidth:  SafeFloat(c.MinWidth),
			MaxWidth:  SafeFloat(c.MaxWidth),
			MinHeight: SafeFloat(c.MinHeight),
			MaxHeight: SafeFloat(c.MaxHeight),
		}
		node.Depth = box.Depth()
		node.NeedsLayout = box.NeedsLayout()
		node.NeedsPaint = box.NeedsPaint()
	}
	if d, ok := obj.(layout.Diagnosable); ok {
		node.Properties = d.DebugProperties()
	}

	if v, ok := obj.(layout.ChildVisitor); ok && level < maxTreeDepth {
		v.VisitChildren(func(child layout.RenderObject) {
			node.Children = append(node.Children, serializeNode(child, level+1))
		})
	}
	return node
}

func safeOffset(o graphics.Offset) SafeOffset {
	return SafeOffset{X: SafeFloat(o.X), Y: SafeFloat(o.Y)}
}

// renderTypeName strips the pointer and package from a render object type,
// e.g. "*widgets.renderGridSlot" becomes "renderGridSlot".
func renderTypeName(obj layout.RenderObject) string {
	name := strings.TrimPrefix(reflect.TypeOf(obj).String(), "*")
	return name[strings.LastIndex(name, ".")+1:]
}

// Walk visits node and its descendants in depth-first pre-order.
func (n *RenderTreeNode) Walk(visit func(*RenderTreeNode)) {
	visit(n)
	for i := range n.Children {
		n.Children[i].Walk(visit)
	}
}
