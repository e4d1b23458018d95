package collapse

// State is the discrete header state.
type State int

const (
	Expanded State = iota
	Collapsed
)

func (s State) String() string {
	switch s {
	case Expanded:
		return "expanded"
	case Collapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// ScrollEvent is what a scroll source reports after its position changes.
type ScrollEvent struct {
	OffsetY         float64
	ContentInsetTop float64
}

// Observer receives scroll events. A scroll source holds one without
// owning it.
type Observer interface {
	DidScroll(ev ScrollEvent)
}

// Position is the header placement derived from a single scroll event.
type Position struct {
	HeaderOffset float64
	Collapsed    bool
}

// State reports the position as a State.
func (p Position) State() State {
	if p.Collapsed {
		return Collapsed
	}
	return Expanded
}

// Option configures a Controller.
type Option func(*Controller)

// WithTolerance treats offsets within tol of the lower bound as collapsed.
// The default of zero requires the offset to sit exactly on the bound.
func WithTolerance(tol float64) Option {
	return func(c *Controller) {
		if tol > 0 {
			c.tolerance = tol
		}
	}
}

// WithTransitionHook registers fn to run whenever the state changes.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) {
		c.onTransition = fn
	}
}

// Controller tracks the header position for a scroll source.
// It implements Observer.
type Controller struct {
	geometry     Geometry
	tolerance    float64
	onTransition func(from, to State)

	// last computed position, kept for rendering only
	position Position
}

// NewController returns a controller with the header at rest.
func NewController(g Geometry, opts ...Option) *Controller {
	c := &Controller{geometry: g}
	for _, opt := range opts {
		opt(c)
	}
	c.position = c.compute(-g.ContentInsetTop(), g.ContentInsetTop())
	return c
}

// OnScroll recomputes the header position from the raw scroll offset.
func (c *Controller) OnScroll(rawOffsetY, contentInsetTop float64) Position {
	prev := c.position.State()
	c.position = c.compute(rawOffsetY, contentInsetTop)

	if next := c.position.State(); next != prev && c.onTransition != nil {
		c.onTransition(prev, next)
	}
	return c.position
}

// DidScroll implements Observer.
func (c *Controller) DidScroll(ev ScrollEvent) {
	c.OnScroll(ev.OffsetY, ev.ContentInsetTop)
}

// Position returns the position computed by the most recent scroll event.
func (c *Controller) Position() Position {
	return c.position
}

// Geometry returns the header geometry.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

func (c *Controller) compute(rawOffsetY, contentInsetTop float64) Position {
	maxScroll := c.geometry.MaxScrollAmount()
	offset := HeaderOffset(rawOffsetY, contentInsetTop, maxScroll)

	collapsed := offset == -maxScroll
	if c.tolerance > 0 {
		collapsed = offset <= -maxScroll+c.tolerance
	}
	return Position{HeaderOffset: offset, Collapsed: collapsed}
}
