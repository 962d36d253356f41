package graphics

// Paint describes how a shape or run of text is filled.
type Paint struct {
	Color Color
}

// Canvas records or executes drawing commands.
//
// Transforms and clips are scoped by Save/Restore pairs. Coordinates passed to
// drawing calls are in the current (translated) space.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	// ClipRect intersects the current clip with rect.
	ClipRect(rect Rect)
	DrawRect(rect Rect, paint Paint)
	// DrawText draws a single line of text with its baseline origin at position.
	DrawText(text string, position Offset, paint Paint)
	Size() Size
}
