package fluidgrid

import "fmt"

// Phase is the measurement state of a grid.
//
//	            Observe(w > 0)
//	Unmeasured ───────────────► Measured ──┐
//	     ▲                         │  ▲    │ Observe(w' > 0)
//	     └─────── Observe(w <= 0) ─┘  └────┘
//
// There is no terminal phase: a grid re-measures for its whole lifetime.
type Phase int

const (
	// PhaseUnmeasured means no usable width has been observed. Nothing renders.
	PhaseUnmeasured Phase = iota
	// PhaseMeasured means a width is known and a solution is available.
	PhaseMeasured
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUnmeasured:
		return "unmeasured"
	case PhaseMeasured:
		return "measured"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Controller owns the observed container width of one grid and the solution
// derived from it. Each grid instance has its own controller.
//
// Controller is not thread-safe. Observations must arrive on the UI thread;
// the most recently delivered width wins.
//
// Always call Dispose when the grid is torn down.
type Controller struct {
	config         Config
	width          float64
	phase          Phase
	solution       Solution
	listeners      map[int]func(Solution, Phase)
	nextListenerID int
	disposed       bool
}

// NewController creates an unmeasured controller for cfg.
func NewController(cfg Config) *Controller {
	return &Controller{
		config:    cfg,
		phase:     PhaseUnmeasured,
		listeners: make(map[int]func(Solution, Phase)),
	}
}

// Observe records a newly delivered container width and reports whether it
// changed the controller. Duplicate widths are ignored. A non-positive width
// returns the controller to PhaseUnmeasured.
func (c *Controller) Observe(width float64) bool {
	if c.disposed {
		return false
	}
	if !Measurable(width) {
		if c.phase == PhaseUnmeasured {
			return false
		}
		c.width = 0
		c.phase = PhaseUnmeasured
		c.solution = Solution{}
		c.notifyListeners()
		return true
	}
	if c.phase == PhaseMeasured && width == c.width {
		return false
	}
	c.width = width
	c.phase = PhaseMeasured
	c.solution = Solve(width, c.config)
	c.notifyListeners()
	return true
}

// SetConfig replaces the layout constraints and reports whether they changed.
// A measured controller recomputes its solution.
func (c *Controller) SetConfig(cfg Config) bool {
	if c.disposed || cfg == c.config {
		return false
	}
	c.config = cfg
	if c.phase == PhaseMeasured {
		c.solution = Solve(c.width, cfg)
		c.notifyListeners()
	}
	return true
}

// Config returns the current layout constraints.
func (c *Controller) Config() Config {
	return c.config
}

// Width returns the last observed width, or 0 while unmeasured.
func (c *Controller) Width() float64 {
	return c.width
}

// Phase returns the current measurement phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Solution returns the current solution. ok is false while unmeasured, in
// which case the caller must render nothing.
func (c *Controller) Solution() (solution Solution, ok bool) {
	if c.phase != PhaseMeasured {
		return Solution{}, false
	}
	return c.solution, true
}

// AddListener adds a callback that fires after every state change.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func(Solution, Phase)) func() {
	if c.disposed || fn == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener(c.solution, c.phase)
	}
}

// Dispose releases all listeners. Later observations are ignored.
func (c *Controller) Dispose() {
	c.disposed = true
	c.listeners = nil
}

// IsDisposed returns true once Dispose has been called.
func (c *Controller) IsDisposed() bool {
	return c.disposed
}
