package testing

import (
	"testing"

	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/engine"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
	// DefaultMaxFrames bounds PumpAndSettle.
	DefaultMaxFrames = 16
)

// WidgetTester provides isolated widget testing without a platform surface.
// It drives the same build, layout, and paint phases as the engine and
// records painted frames.
type WidgetTester struct {
	headless *engine.Headless
}

// NewWidgetTester creates a tester with default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		headless: engine.NewHeadless(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree, disposing all state.
func (t *WidgetTester) Cleanup() {
	t.headless.Unmount()
}

// SetSize sets the logical surface size. Calling it after PumpWidget
// resizes the surface, as a window resize would.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.headless.SetSize(size)
}

// Size returns the logical surface size.
func (t *WidgetTester) Size() graphics.Size {
	return t.headless.Size()
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	return t.headless.Mount(widget)
}

// Pump runs a single frame cycle: dispatches, build, layout, paint.
func (t *WidgetTester) Pump() error {
	return t.headless.Pump()
}

// PumpAndSettle runs frames until the framework is idle. It returns
// engine.ErrNotSettled (wrapped) if work is still pending after
// DefaultMaxFrames frames.
func (t *WidgetTester) PumpAndSettle() error {
	return t.headless.PumpUntilSettled(DefaultMaxFrames)
}

// Dispatch queues a callback for the next frame, mirroring engine dispatch.
func (t *WidgetTester) Dispatch(fn func()) {
	t.headless.Dispatch(fn)
}

// Unmount removes the tree while keeping the tester usable.
func (t *WidgetTester) Unmount() {
	t.headless.Unmount()
}

// NeedsWork reports whether another frame would change anything.
func (t *WidgetTester) NeedsWork() bool {
	return t.headless.NeedsWork()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.headless.RootElement()
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.headless.RootRenderObject()
}

// DisplayOps returns the drawing operations of the last painted frame.
func (t *WidgetTester) DisplayOps() []graphics.Op {
	frame := t.headless.Frame()
	if frame == nil {
		return nil
	}
	return frame.Ops()
}

// RenderTree returns the serialized render tree.
func (t *WidgetTester) RenderTree() *engine.RenderTreeNode {
	return t.headless.RenderTree()
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.headless.RootElement()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(root),
		finder:   finder,
	}
}

// extractRenderObject walks from an element to find its render object.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if ro, ok := e.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}
