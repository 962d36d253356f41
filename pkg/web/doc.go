// Package web renders fluid grids as DOM markup.
//
// [Markup] turns a [Grid] into a wrapping flex container whose slots carry
// the solved item width. It runs on every platform, so the dev server and
// tests render the same HTML the browser does. On js/wasm, Mount attaches a
// ResizeObserver to a container element and re-renders the grid into it
// whenever the element's content width changes.
package web
