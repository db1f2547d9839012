package state

// DefaultTolerance is the minimum per-axis movement, in surface units, for a
// touch move to extend the path.
const DefaultTolerance float32 = 5

type TouchState int

const (
	Idle TouchState = iota
	Drawing
)

func (s TouchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	}
	return "unknown"
}

type TouchKind int

const (
	TouchDown TouchKind = iota + 1
	TouchMove
	TouchUp
)

type TouchEvent struct {
	Kind TouchKind
	At   Point
}

// Tracker turns raw touch samples into a smoothed Path. Moves shorter than
// the tolerance on both axes are dropped; accepted moves become a quadratic
// curve through the midpoint of the last and the current sample.
type Tracker struct {
	path      Path
	state     TouchState
	last      Point
	tolerance float32
}

func NewTracker(tolerance float32) *Tracker {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Tracker{tolerance: tolerance}
}

func (t *Tracker) State() TouchState { return t.state }
func (t *Tracker) Last() Point       { return t.last }
func (t *Tracker) Path() *Path       { return &t.path }
func (t *Tracker) Tolerance() float32 {
	return t.tolerance
}

// Handle applies e and reports whether the surface must be redrawn.
func (t *Tracker) Handle(e TouchEvent) bool {
	switch e.Kind {
	case TouchDown:
		t.Down(e.At)
	case TouchMove:
		t.Move(e.At)
	case TouchUp:
		t.Up()
	default:
		return false
	}
	return true
}

func (t *Tracker) Down(p Point) {
	t.path.MoveTo(p)
	t.last = p
	t.state = Drawing
}

// Move returns true when a segment was appended.
func (t *Tracker) Move(p Point) bool {
	if t.state != Drawing {
		return false
	}
	dx, dy := abs(p.X-t.last.X), abs(p.Y-t.last.Y)
	if dx < t.tolerance && dy < t.tolerance {
		return false
	}
	t.path.QuadTo(t.last, t.last.Mid(p))
	t.last = p
	return true
}

func (t *Tracker) Up() {
	if t.state != Drawing {
		return
	}
	t.path.LineTo(t.last)
	t.state = Idle
}

func (t *Tracker) Reset() {
	t.path.Reset()
	t.last = Point{}
	t.state = Idle
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
