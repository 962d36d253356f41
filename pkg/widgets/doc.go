// Package widgets provides the widgets that make up a fluid grid.
//
// [FluidGrid] is the entry point. It wraps its content in a [LayoutObserver],
// which reports the width the grid was laid out at, and renders nothing until
// that width is known. Once measured, every child sits in a [GridSlot] of the
// solved item width. Children that implement
// fluidgrid.Sizable[core.Widget], such as [ProductTile], are handed the width
// so they can size their own content to it.
//
//	grid := widgets.FluidGridOf(
//	    widgets.ProductTile{Label: "Apples", Color: theme.Produce},
//	    widgets.ProductTile{Label: "Bread", Color: theme.Bakery},
//	    widgets.ColoredBox{Color: theme.Surface, Child: widgets.SizedBox{Height: 40}},
//	)
//
// Widgets are plain structs. Construct them with struct literals.
package widgets
