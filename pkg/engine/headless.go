package engine

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/freshcart/gridkit/pkg/core"
	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/graphics"
	"github.com/freshcart/gridkit/pkg/layout"
)

// DefaultMaxFrames bounds PumpUntilSettled when no limit is given.
const DefaultMaxFrames = 32

// ErrNotSettled is returned when PumpUntilSettled runs out of frames while
// work is still pending.
var ErrNotSettled = stderrors.New("engine: tree did not settle")

// Headless drives frames for a widget tree without a platform surface.
//
// Headless is not thread-safe. Use Dispatch to hand work to the frame loop
// from other goroutines' results.
type Headless struct {
	owner      *core.BuildOwner
	root       core.Element
	size       graphics.Size
	dispatches []func()
	frame      *graphics.DisplayList
	frames     int
}

// NewHeadless creates a driver for a surface of the given size.
func NewHeadless(size graphics.Size) *Headless {
	return &Headless{
		owner: core.NewBuildOwner(),
		size:  size,
	}
}

// Size returns the surface size.
func (h *Headless) Size() graphics.Size {
	return h.size
}

// SetSize resizes the surface. The next frame lays the tree out again.
func (h *Headless) SetSize(size graphics.Size) {
	if size == h.size {
		return
	}
	h.size = size
	if root := h.RootRenderObject(); root != nil {
		root.MarkNeedsLayout()
		h.owner.Pipeline().ScheduleLayout(root)
	}
}

// Mount replaces the current tree with widget and runs one frame.
func (h *Headless) Mount(widget core.Widget) error {
	h.Unmount()
	h.root = core.MountRoot(widget, h.owner)
	if root := h.RootRenderObject(); root != nil {
		pipeline := h.owner.Pipeline()
		pipeline.ScheduleLayout(root)
		pipeline.SchedulePaint(root)
	}
	return h.Pump()
}

// Unmount tears the current tree down, disposing all state. Work left
// scheduled by the old tree is discarded with its build owner.
func (h *Headless) Unmount() {
	if h.root != nil {
		h.root.Unmount()
		h.root = nil
		h.owner = core.NewBuildOwner()
	}
	h.frame = nil
}

// Dispatch queues fn to run at the start of the next frame.
func (h *Headless) Dispatch(fn func()) {
	if fn != nil {
		h.dispatches = append(h.dispatches, fn)
	}
}

// Pump runs a single frame: dispatches, build, layout, paint.
// A panic during the frame is reported and returned as an error.
func (h *Headless) Pump() (err error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr := &errors.PanicError{
				Op:         "engine.Headless.Pump",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportPanic(panicErr)
			err = panicErr
		}
	}()

	dispatches := h.dispatches
	h.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	h.owner.FlushBuild()

	root := h.RootRenderObject()
	if root == nil {
		h.frame = nil
		return nil
	}
	pipeline := h.owner.Pipeline()
	pipeline.FlushLayoutForRoot(root, layout.Tight(h.size))

	if pipeline.FlushPaint() || h.frame == nil {
		h.frame = h.paint(root)
		layout.ClearPaintFlags(root)
	}
	h.frames++
	return nil
}

// PumpUntilSettled runs frames until no work remains. A layout callback that
// schedules a rebuild is picked up by a following frame. maxFrames <= 0 uses
// DefaultMaxFrames.
func (h *Headless) PumpUntilSettled(maxFrames int) error {
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	for i := 0; i < maxFrames; i++ {
		if err := h.Pump(); err != nil {
			return err
		}
		if !h.NeedsWork() {
			return nil
		}
	}
	return fmt.Errorf("%w after %d frames", ErrNotSettled, maxFrames)
}

// NeedsWork reports whether a frame would change anything.
func (h *Headless) NeedsWork() bool {
	return len(h.dispatches) > 0 || h.owner.NeedsWork()
}

// FrameCount returns the number of frames pumped so far.
func (h *Headless) FrameCount() int {
	return h.frames
}

// BuildOwner returns the build owner of the tree.
func (h *Headless) BuildOwner() *core.BuildOwner {
	return h.owner
}

// RootElement returns the root element of the mounted tree.
func (h *Headless) RootElement() core.Element {
	return h.root
}

// RootRenderObject returns the render object at the root of the tree.
// A stateful root can swap it between frames, so it is looked up each time.
func (h *Headless) RootRenderObject() layout.RenderObject {
	if h.root == nil {
		return nil
	}
	if provider, ok := h.root.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}

// Frame returns the display list of the last painted frame.
func (h *Headless) Frame() *graphics.DisplayList {
	return h.frame
}

// PaintTo replays the last frame onto canvas.
func (h *Headless) PaintTo(canvas graphics.Canvas) {
	if h.frame != nil {
		h.frame.Paint(canvas)
	}
}

func (h *Headless) paint(root layout.RenderObject) *graphics.DisplayList {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(h.size)
	root.Paint(&layout.PaintContext{Canvas: canvas})
	return recorder.EndRecording()
}
