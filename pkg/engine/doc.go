// Package engine drives frames for a mounted widget tree.
//
// [Headless] runs the same phases as an on-device engine (dispatch, build,
// layout, paint) against a fixed surface size and records each painted frame
// as a graphics.DisplayList. The preview command and the dev server render
// through it, and pkg/testing builds the widget tester on top of it.
package engine
