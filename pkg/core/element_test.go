package core

import (
	"testing"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// testStatelessWidget is a simple stateless widget for testing.
type testStatelessWidget struct {
	StatelessBase
	buildFn func(BuildContext) Widget
}

func (w testStatelessWidget) Build(ctx BuildContext) Widget {
	if w.buildFn != nil {
		return w.buildFn(ctx)
	}
	return nil
}

// testStatefulWidget is a simple stateful widget for testing.
type testStatefulWidget struct {
	StatefulBase
	createStateFn func() State
}

func (w testStatefulWidget) CreateState() State {
	if w.createStateFn != nil {
		return w.createStateFn()
	}
	return &testState{}
}

type testState struct {
	StateBase
	buildFn func(BuildContext) Widget
}

func (s *testState) Build(ctx BuildContext) Widget {
	if s.buildFn != nil {
		return s.buildFn(ctx)
	}
	return nil
}

// leafBox is a render object without children.
type leafBox struct {
	layout.RenderBoxBase
	name string
}

func newLeafBox(name string) *leafBox {
	box := &leafBox{name: name}
	box.SetSelf(box)
	return box
}

func (b *leafBox) PerformLayout() {
	b.SetSize(b.Constraints().Constrain(graphics.Size{Width: 10, Height: 10}))
}
func (b *leafBox) Paint(ctx *layout.PaintContext) {}
func (b *leafBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	return false
}

type testLeaf struct {
	RenderObjectBase
	name string
}

func (w testLeaf) CreateRenderObject(ctx BuildContext) layout.RenderObject {
	return newLeafBox(w.name)
}

func (w testLeaf) UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject) {
	renderObject.(*leafBox).name = w.name
}

// listBox keeps an ordered list of children.
type listBox struct {
	layout.RenderBoxBase
	children []layout.RenderObject
}

func (b *listBox) SetChildren(children []layout.RenderObject) {
	for _, child := range b.children {
		layout.SetParentOnChild(child, nil)
	}
	b.children = children
	for _, child := range children {
		layout.SetParentOnChild(child, b)
	}
}

func (b *listBox) PerformLayout() {
	b.SetSize(b.Constraints().Constrain(graphics.Size{}))
}
func (b *listBox) Paint(ctx *layout.PaintContext) {}
func (b *listBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	return false
}

type testList struct {
	RenderObjectBase
	children []Widget
}

func (w testList) CreateRenderObject(ctx BuildContext) layout.RenderObject {
	box := &listBox{}
	box.SetSelf(box)
	return box
}

func (w testList) UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject) {}

func (w testList) ChildrenWidgets() []Widget { return w.children }

func names(box *listBox) []string {
	var out []string
	for _, child := range box.children {
		out = append(out, child.(*leafBox).name)
	}
	return out
}

func TestStatelessElement_BuildsChild(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(testStatelessWidget{buildFn: func(BuildContext) Widget {
		return testLeaf{name: "a"}
	}}, owner)

	ro := root.(*StatelessElement).RenderObject()
	leaf, ok := ro.(*leafBox)
	if !ok {
		t.Fatalf("expected leafBox render object, got %T", ro)
	}
	if leaf.name != "a" {
		t.Errorf("name = %q, want %q", leaf.name, "a")
	}
}

func TestStatefulElement_SetStateRebuilds(t *testing.T) {
	owner := NewBuildOwner()
	frames := 0
	owner.OnNeedsFrame = func() { frames++ }

	label := "first"
	var state *testState
	root := MountRoot(testStatefulWidget{createStateFn: func() State {
		state = &testState{buildFn: func(BuildContext) Widget { return testLeaf{name: label} }}
		return state
	}}, owner)

	state.SetState(func() { label = "second" })
	state.SetState(nil)
	if frames != 1 {
		t.Fatalf("OnNeedsFrame calls = %d, want 1", frames)
	}
	if got := owner.DirtyCount(); got != 1 {
		t.Fatalf("DirtyCount = %d, want 1", got)
	}
	if !owner.NeedsWork() {
		t.Fatal("expected pending work after SetState")
	}
	owner.FlushBuild()
	if got := owner.Rebuilds(); got != 1 {
		t.Errorf("Rebuilds = %d, want 1", got)
	}
	if got := owner.DirtyCount(); got != 0 {
		t.Errorf("DirtyCount after flush = %d, want 0", got)
	}

	leaf := root.(*StatefulElement).RenderObject().(*leafBox)
	if leaf.name != "second" {
		t.Errorf("name = %q, want %q", leaf.name, "second")
	}
}

func TestStatefulElement_UnmountDisposesState(t *testing.T) {
	owner := NewBuildOwner()
	var state *testState
	var order []string
	root := MountRoot(testStatefulWidget{createStateFn: func() State {
		state = &testState{}
		state.OnDispose(func() { order = append(order, "first") })
		state.OnDispose(func() { order = append(order, "second") })
		return state
	}}, owner)

	root.Unmount()
	if !state.IsDisposed() {
		t.Fatal("expected state to be disposed")
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("disposers ran as %v, want LIFO", order)
	}

	// SetState after disposal is ignored.
	called := false
	state.SetState(func() { called = true })
	if called {
		t.Error("SetState ran its callback after dispose")
	}
	if owner.NeedsWork() {
		t.Error("SetState after dispose scheduled a build")
	}
}

type recordingHandler struct {
	builds []*errors.BuildError
}

func (h *recordingHandler) HandleError(*errors.GridError)   {}
func (h *recordingHandler) HandlePanic(*errors.PanicError) {}
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) {
	h.builds = append(h.builds, err)
}

func TestSafeBuild_ReportsPanic(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	root := MountRoot(testStatelessWidget{buildFn: func(BuildContext) Widget {
		panic("boom")
	}}, NewBuildOwner())

	if len(handler.builds) != 1 {
		t.Fatalf("build errors = %d, want 1", len(handler.builds))
	}
	if handler.builds[0].Recovered != "boom" {
		t.Errorf("Recovered = %v, want boom", handler.builds[0].Recovered)
	}
	if root.(*StatelessElement).RenderObject() != nil {
		t.Error("a failed build should leave an empty subtree")
	}
}

func TestRenderObjectElement_MultiChildSync(t *testing.T) {
	owner := NewBuildOwner()
	labels := []string{"a", "b", "c"}
	var state *testState
	root := MountRoot(testStatefulWidget{createStateFn: func() State {
		state = &testState{buildFn: func(BuildContext) Widget {
			children := make([]Widget, 0, len(labels))
			for _, label := range labels {
				children = append(children, testLeaf{name: label})
			}
			return testList{children: children}
		}}
		return state
	}}, owner)

	box := root.(*StatefulElement).RenderObject().(*listBox)
	if got := names(box); len(got) != 3 || got[2] != "c" {
		t.Fatalf("children = %v, want [a b c]", got)
	}

	state.SetState(func() { labels = []string{"x", "y"} })
	owner.FlushBuild()
	if got := names(box); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("children = %v, want [x y]", got)
	}
}

func TestRenderObjectElement_ComponentChildSwapUpdatesList(t *testing.T) {
	owner := NewBuildOwner()
	var inner *testState
	show := false
	root := MountRoot(testList{children: []Widget{
		testLeaf{name: "a"},
		testStatefulWidget{createStateFn: func() State {
			inner = &testState{buildFn: func(BuildContext) Widget {
				if !show {
					return nil
				}
				return testLeaf{name: "b"}
			}}
			return inner
		}},
	}}, owner)

	box := root.(*RenderObjectElement).RenderObject().(*listBox)
	if got := names(box); len(got) != 1 {
		t.Fatalf("children = %v, want [a]", got)
	}

	inner.SetState(func() { show = true })
	owner.FlushBuild()
	if got := names(box); len(got) != 2 || got[1] != "b" {
		t.Errorf("children = %v, want [a b]", got)
	}
}

func TestCanUpdateWidget(t *testing.T) {
	if !canUpdateWidget(testLeaf{name: "a"}, testLeaf{name: "b"}) {
		t.Error("same type with nil keys should update in place")
	}
	if canUpdateWidget(testLeaf{}, testList{}) {
		t.Error("different types should not update in place")
	}
}

type counter struct{ disposed int }

func (c *counter) Dispose() { c.disposed++ }

func TestUseController_DisposedWithState(t *testing.T) {
	state := &testState{}
	c := UseController(state, func() *counter { return &counter{} })
	state.Dispose()
	if c.disposed != 1 {
		t.Errorf("disposed = %d, want 1", c.disposed)
	}
}

type keyedItem struct {
	StatefulBase
	key     string
	created *[]string
}

func (w keyedItem) Key() any { return w.key }

func (w keyedItem) CreateState() State {
	*w.created = append(*w.created, w.key)
	return &keyedItemState{}
}

type keyedItemState struct {
	StateBase
}

func (s *keyedItemState) Build(ctx BuildContext) Widget {
	return testLeaf{name: ctx.Widget().(keyedItem).key}
}

func TestRenderObjectElement_KeyedChildrenKeepState(t *testing.T) {
	owner := NewBuildOwner()
	var created []string
	item := func(key string) Widget { return keyedItem{key: key, created: &created} }

	root := MountRoot(testList{children: []Widget{item("a"), item("b"), item("c")}}, owner)
	el := root.(*RenderObjectElement)
	box := el.RenderObject().(*listBox)

	el.Update(testList{children: []Widget{item("c"), item("a")}})
	owner.FlushBuild()

	if got := names(box); len(got) != 2 || got[0] != "c" || got[1] != "a" {
		t.Fatalf("children = %v, want [c a]", got)
	}
	if len(created) != 3 {
		t.Errorf("states created = %v, want only the initial three", created)
	}
}
