//go:build js && wasm

package web

import (
	"fmt"
	"syscall/js"

	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

// Mount renders grid into container and keeps it in sync with the
// container's content width. The current clientWidth is delivered once at
// mount so the first render does not wait for a resize.
//
// The returned function disconnects the observer, releases the callback and
// disposes the controller. It is safe to call more than once.
func Mount(container js.Value, grid Grid) (unmount func()) {
	cfg := grid.Config.WithDefaults()
	controller := fluidgrid.NewController(cfg)

	paint := func(solution fluidgrid.Solution, phase fluidgrid.Phase) {
		if phase != fluidgrid.PhaseMeasured {
			container.Set("innerHTML", "")
			return
		}
		markup, err := render(cfg, solution, grid.Children)
		if err != nil {
			errors.Report(&errors.GridError{Op: "web.Mount", Kind: errors.KindPlatform, Err: err})
			return
		}
		container.Set("innerHTML", string(markup))
	}
	controller.AddListener(paint)

	onResize := js.FuncOf(func(this js.Value, args []js.Value) any {
		defer errors.Recover("web.onResize")
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			controller.Observe(entries.Index(i).Get("contentRect").Get("width").Float())
		}
		return nil
	})

	observerCtor := js.Global().Get("ResizeObserver")
	if observerCtor.IsUndefined() {
		errors.Report(&errors.GridError{
			Op:   "web.Mount",
			Kind: errors.KindPlatform,
			Err:  fmt.Errorf("ResizeObserver is not available"),
		})
		onResize.Release()
		controller.Dispose()
		return func() {}
	}
	observer := observerCtor.New(onResize)
	observer.Call("observe", container)

	controller.Observe(container.Get("clientWidth").Float())

	released := false
	return func() {
		if released {
			return
		}
		released = true
		observer.Call("disconnect")
		onResize.Release()
		controller.Dispose()
	}
}
