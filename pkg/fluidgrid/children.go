package fluidgrid

import "reflect"

// Sizable is implemented by children that accept the solved item width.
// WithWidth returns a copy of the child sized to width.
type Sizable[T any] interface {
	WithWidth(width float64) T
}

// Inject hands width to item when it declares the Sizable capability and
// returns the item unchanged otherwise.
func Inject[T any](item T, width float64) T {
	if sizable, ok := any(item).(Sizable[T]); ok {
		return sizable.WithWidth(width)
	}
	return item
}

// Compact drops nil entries so that rows stay free of holes. A typed nil,
// such as a nil *W stored in an interface, counts as nil.
func Compact[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if isNil(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func isNil(item any) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Slot is the placement of one item in a solved grid.
type Slot[T any] struct {
	Index  int
	Row    int
	Column int
	// X is the left edge of the slot relative to the row start.
	X     float64
	Width float64
	Item  T
}

// Arrange assigns row-major slots to items and injects the item width.
// Items are identified by position; nil items must be removed first.
func Arrange[T any](items []T, solution Solution, gap float64) []Slot[T] {
	if solution.Columns <= 0 {
		return nil
	}
	slots := make([]Slot[T], len(items))
	for i, item := range items {
		column := i % solution.Columns
		slots[i] = Slot[T]{
			Index:  i,
			Row:    i / solution.Columns,
			Column: column,
			X:      float64(column) * (solution.ItemWidth + gap),
			Width:  solution.ItemWidth,
			Item:   Inject(item, solution.ItemWidth),
		}
	}
	return slots
}
