package testing

import (
	"testing"

	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/widgets"
)

type keyedBox struct {
	widgets.SizedBox
	key any
}

func (k keyedBox) Key() any { return k.key }

func settledGrid(t *testing.T, children ...core.Widget) *WidgetTester {
	t.Helper()
	tester := NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 344, Height: 600})
	if err := tester.PumpWidget(widgets.FluidGridOf(children...)); err != nil {
		t.Fatal(err)
	}
	if err := tester.PumpAndSettle(); err != nil {
		t.Fatal(err)
	}
	return tester
}

func TestByType(t *testing.T) {
	tester := settledGrid(t, widgets.SizedBox{Height: 5}, widgets.SizedBox{Height: 5})

	if got := tester.Find(ByType[widgets.GridSlot]()).Count(); got != 2 {
		t.Errorf("GridSlot count = %d, want 2", got)
	}
	if !tester.Find(ByType[widgets.LayoutObserver]()).Exists() {
		t.Error("expected a LayoutObserver")
	}
}

func TestByLabel(t *testing.T) {
	tester := settledGrid(t,
		widgets.ProductTile{Label: "Apples"},
		widgets.ProductTile{Label: "Bread"},
	)

	result := tester.Find(ByLabel("Bread"))
	if result.Count() != 1 {
		t.Fatalf("matches = %d, want 1", result.Count())
	}
	if tile := result.Widget().(widgets.ProductTile); tile.Width != 166 {
		t.Errorf("injected width = %v, want 166", tile.Width)
	}
	if tester.Find(ByLabel("Cheese")).Exists() {
		t.Error("unexpected match for missing label")
	}
}

func TestByKey(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.ColoredBox{Child: keyedBox{key: "inner"}})

	if got := tester.Find(ByKey("inner")).Count(); got != 1 {
		t.Errorf("ByKey count = %d, want 1", got)
	}
	if got := tester.Find(ByKey([]int{1})).Count(); got != 0 {
		t.Errorf("ByKey with slice key count = %d, want 0", got)
	}
}

func TestDescendant(t *testing.T) {
	tester := settledGrid(t, widgets.SizedBox{Height: 5})

	finder := Descendant(ByType[widgets.GridSlot](), ByType[widgets.SizedBox]())
	if got := tester.Find(finder).Count(); got != 1 {
		t.Errorf("Descendant count = %d, want 1", got)
	}
}

func TestFinderResult_SizesAndOffsets(t *testing.T) {
	tester := settledGrid(t,
		widgets.SizedBox{Height: 5},
		widgets.SizedBox{Height: 5},
		widgets.SizedBox{Height: 5},
	)

	slots := tester.Find(ByType[widgets.GridSlot]())
	offsets := slots.Offsets()
	want := []graphics.Offset{{X: 0, Y: 0}, {X: 178, Y: 0}, {X: 0, Y: 17}}
	if len(offsets) != len(want) {
		t.Fatalf("offsets = %v", offsets)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, offsets[i], want[i])
		}
	}
}

func TestFinderResult_FirstPanicsWhenEmpty(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.SizedBox{})

	defer func() {
		if recover() == nil {
			t.Error("expected First to panic on empty result")
		}
	}()
	tester.Find(ByType[widgets.GridSlot]()).First()
}
