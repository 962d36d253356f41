package core

import (
	"slices"
	"sync"

	"github.com/freshcart/gridkit/pkg/layout"
)

// BuildOwner collects elements marked dirty between frames and rebuilds
// them parents first. A width observed during layout marks its grid dirty,
// so the rebuild lands in the next FlushBuild rather than the current frame.
type BuildOwner struct {
	mu       sync.Mutex
	queued   map[Element]struct{}
	queue    []Element
	rebuilds int

	pipeline *layout.PipelineOwner

	// OnNeedsFrame is called once per element newly queued for rebuild.
	OnNeedsFrame func()
}

// NewBuildOwner creates a BuildOwner with its own render pipeline.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		queued:   make(map[Element]struct{}),
		pipeline: &layout.PipelineOwner{},
	}
}

// Pipeline returns the PipelineOwner that render objects schedule on.
func (b *BuildOwner) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// ScheduleBuild queues element for the next FlushBuild. Queuing an element
// twice is a no-op.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	_, dup := b.queued[element]
	if !dup {
		b.queued[element] = struct{}{}
		b.queue = append(b.queue, element)
	}
	b.mu.Unlock()

	if !dup && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// DirtyCount returns the number of elements waiting to rebuild.
func (b *BuildOwner) DirtyCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Rebuilds returns how many queued elements FlushBuild has rebuilt.
func (b *BuildOwner) Rebuilds() int {
	return b.rebuilds
}

// NeedsWork reports whether a build, layout or paint is pending.
func (b *BuildOwner) NeedsWork() bool {
	return b.DirtyCount() > 0 || b.pipeline.NeedsLayout() || b.pipeline.NeedsPaint()
}

// takeQueue hands out the current queue sorted shallowest first.
func (b *BuildOwner) takeQueue() []Element {
	b.mu.Lock()
	batch := b.queue
	b.queue = nil
	clear(b.queued)
	b.mu.Unlock()

	slices.SortStableFunc(batch, func(x, y Element) int {
		return x.Depth() - y.Depth()
	})
	return batch
}

// FlushBuild rebuilds queued elements until the queue stays empty. Elements
// queued while flushing are handled in a later pass. Unmounted elements are
// dropped.
func (b *BuildOwner) FlushBuild() {
	for batch := b.takeQueue(); len(batch) > 0; batch = b.takeQueue() {
		for _, element := range batch {
			if m, ok := element.(interface{ isMounted() bool }); ok && !m.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
			b.rebuilds++
		}
	}
}
