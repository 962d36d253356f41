package testing

import (
	"fmt"
	"reflect"

	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
	"github.com/freshcart/gridkit/pkg/widgets"
)

// Finder locates elements in the widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root core.Element) []core.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult is the outcome of running a Finder against the mounted tree.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

// First returns the first match and panics when there is none.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.describe()))
	}
	return r.elements[0]
}

// At returns the match at index and panics when it is out of range.
func (r FinderResult) At(index int) core.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the widget of the first matched element. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// RenderObject returns the render object of the first matched element.
// Returns nil if the element has no associated render object.
func (r FinderResult) RenderObject() layout.RenderObject {
	return extractRenderObject(r.First())
}

// Sizes returns the laid-out size of every match, in traversal order.
func (r FinderResult) Sizes() []graphics.Size {
	sizes := make([]graphics.Size, 0, len(r.elements))
	for _, e := range r.elements {
		if ro := extractRenderObject(e); ro != nil {
			sizes = append(sizes, ro.Size())
		}
	}
	return sizes
}

// Offsets returns the parent-relative offset of every match.
func (r FinderResult) Offsets() []graphics.Offset {
	offsets := make([]graphics.Offset, 0, len(r.elements))
	for _, e := range r.elements {
		if ro := extractRenderObject(e); ro != nil {
			offsets = append(offsets, layout.ChildOffset(ro))
		}
	}
	return offsets
}

// matcher is a Finder built from a per-element predicate.
type matcher struct {
	desc  string
	match func(core.Element) bool
}

func (m matcher) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, m.match)
}

func (m matcher) Description() string {
	return m.desc
}

// ByType matches elements whose widget has type T exactly.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return matcher{
		desc:  fmt.Sprintf("ByType(%s)", t),
		match: func(e core.Element) bool { return reflect.TypeOf(e.Widget()) == t },
	}
}

// ByKey matches elements whose widget key equals key. Keys that are not
// comparable are compared with reflect.DeepEqual.
func ByKey(key any) Finder {
	return matcher{
		desc: fmt.Sprintf("ByKey(%v)", key),
		match: func(e core.Element) bool {
			k := e.Widget().Key()
			if k == nil || key == nil {
				return k == nil && key == nil
			}
			if !reflect.TypeOf(k).Comparable() || !reflect.TypeOf(key).Comparable() {
				return reflect.DeepEqual(k, key)
			}
			return k == key
		},
	}
}

// ByLabel matches [widgets.ProductTile] widgets with exactly this label.
func ByLabel(label string) Finder {
	return matcher{
		desc: fmt.Sprintf("ByLabel(%q)", label),
		match: func(e core.Element) bool {
			tile, ok := e.Widget().(widgets.ProductTile)
			return ok && tile.Label == label
		},
	}
}

// ByPredicate matches elements for which fn returns true.
func ByPredicate(fn func(core.Element) bool) Finder {
	return matcher{desc: "ByPredicate(...)", match: fn}
}

// descendantFinder applies matching inside the subtrees found by of.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Element) []core.Element {
	var results []core.Element
	seen := make(map[core.Element]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		ancestor.VisitChildren(func(child core.Element) bool {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
			return true
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches elements found by matching strictly below an element
// found by of. Each element is reported once.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches returns the elements under root, root included, that
// satisfy match, in depth-first pre-order.
func collectMatches(root core.Element, match func(core.Element) bool) []core.Element {
	var out []core.Element
	var walk func(core.Element)
	walk = func(e core.Element) {
		if match(e) {
			out = append(out, e)
		}
		e.VisitChildren(func(child core.Element) bool {
			walk(child)
			return true
		})
	}
	if root != nil {
		walk(root)
	}
	return out
}
