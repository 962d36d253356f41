// Package fluidgrid computes fluid grid layouts.
//
// A fluid grid derives its column count and item width from the width of its
// container instead of fixed breakpoints. [Solve] is the pure solver, and
// [Controller] is the two-state machine (unmeasured, measured) that renderers
// drive from a width observer. Children that implement [Sizable] receive the
// solved item width through [Inject].
//
// The same contract backs every runtime variant: the widget tree in
// pkg/widgets, the DOM renderer in pkg/web and the terminal view.
package fluidgrid
