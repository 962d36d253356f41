// Package testing provides a widget testing framework for gridkit.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestGrid(t *testing.T) {
//	    tester := gridtest.NewWidgetTesterWithT(t)
//	    tester.SetSize(graphics.Size{Width: 344, Height: 600})
//	    tester.PumpWidget(widgets.FluidGridOf(tiles...))
//	    tester.PumpAndSettle()
//
//	    slots := tester.Find(gridtest.ByType[widgets.GridSlot]())
//	    if slots.Count() != len(tiles) {
//	        t.Errorf("expected %d slots", len(tiles))
//	    }
//	}
//
// A fluid grid needs two frames to show content: the first lays out the
// width observer, the second renders the solved grid. PumpAndSettle runs
// frames until nothing is pending.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import gridtest "github.com/freshcart/gridkit/pkg/testing"
package testing
