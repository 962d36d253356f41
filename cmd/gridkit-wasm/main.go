//go:build js && wasm

// Command gridkit-wasm mounts the sample product grid into the page element
// with id "grid" and keeps it sized to that element.
package main

import (
	"syscall/js"

	"github.com/freshcart/gridkit/internal/catalog"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
	"github.com/freshcart/gridkit/pkg/web"
)

func main() {
	container := js.Global().Get("document").Call("getElementById", "grid")
	if container.IsNull() {
		js.Global().Get("console").Call("error", "gridkit: no element with id \"grid\"")
		return
	}

	items := 24
	if v := container.Get("dataset").Get("items"); !v.IsUndefined() {
		if n := js.Global().Call("parseInt", v).Int(); n >= 0 {
			items = n
		}
	}

	web.Mount(container, web.Grid{
		Config:   fluidgrid.DefaultConfig(),
		Children: catalog.Cards(catalog.Sample(items)),
	})

	select {}
}
