package graphics

// OpKind identifies a recorded drawing operation.
type OpKind string

const (
	OpSave      OpKind = "save"
	OpRestore   OpKind = "restore"
	OpTranslate OpKind = "translate"
	OpClipRect  OpKind = "clipRect"
	OpDrawRect  OpKind = "drawRect"
	OpDrawText  OpKind = "drawText"
)

// Op is one recorded drawing operation. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Offset Offset
	Text   string
	Paint  Paint
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []Op
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpSave:
			canvas.Save()
		case OpRestore:
			canvas.Restore()
		case OpTranslate:
			canvas.Translate(op.Offset.X, op.Offset.Y)
		case OpClipRect:
			canvas.ClipRect(op.Rect)
		case OpDrawRect:
			canvas.DrawRect(op.Rect, op.Paint)
		case OpDrawText:
			canvas.DrawText(op.Text, op.Offset, op.Paint)
		}
	}
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []Op {
	out := make([]Op, len(d.ops))
	copy(out, d.ops)
	return out
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []Op
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, size: r.size}
}

func (r *PictureRecorder) append(op Op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save()    { c.recorder.append(Op{Kind: OpSave}) }
func (c *recordingCanvas) Restore() { c.recorder.append(Op{Kind: OpRestore}) }

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(Op{Kind: OpTranslate, Offset: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(Op{Kind: OpClipRect, Rect: rect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(Op{Kind: OpDrawRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, paint Paint) {
	c.recorder.append(Op{Kind: OpDrawText, Text: text, Offset: position, Paint: paint})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
