package core

// stateBase is satisfied by any struct that embeds StateBase.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase is embedded by State implementations. It provides SetState,
// cleanup registration and no-op lifecycle methods.
//
// A StateBase is used only from the goroutine that drives frames; layout
// callbacks such as a width observation run there too.
type StateBase struct {
	element  *StatefulElement
	cleanups []func()
	disposed bool
}

func (s *StateBase) setElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element that owns this state.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState runs fn and queues the owning element for rebuild. After
// Dispose it does nothing, so a callback that outlives its widget is safe.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers cleanup to run on Dispose, most recent first. The
// returned function cancels the registration. On a disposed state cleanup
// runs immediately.
func (s *StateBase) OnDispose(cleanup func()) (cancel func()) {
	if cleanup == nil {
		return func() {}
	}
	if s.disposed {
		cleanup()
		return func() {}
	}
	i := len(s.cleanups)
	s.cleanups = append(s.cleanups, cleanup)
	return func() {
		if i < len(s.cleanups) {
			s.cleanups[i] = nil
		}
	}
}

// RunDisposers runs the registered cleanups once, most recent first.
func (s *StateBase) RunDisposers() {
	if s.disposed {
		return
	}
	s.disposed = true
	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		if cleanups[i] != nil {
			cleanups[i]()
		}
	}
}

// Dispose runs the registered cleanups. States that override Dispose must
// call s.StateBase.Dispose().
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// IsDisposed reports whether Dispose has run.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}

func (s *StateBase) InitState() {}

func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}
