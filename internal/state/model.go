package state

type Point struct{ X, Y float32 }

// Mid returns the point halfway between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

type SegmentKind string

const (
	MoveTo SegmentKind = "move_to"
	LineTo SegmentKind = "line_to"
	QuadTo SegmentKind = "quad_to"
)

// Segment is one drawing command. Ctrl is only meaningful for QuadTo.
type Segment struct {
	Kind SegmentKind
	Ctrl Point
	To   Point
}

// Path is the ordered list of segments drawn since the last clear.
// Every stroke starts with a MoveTo, so a single Path can hold many strokes.
type Path struct {
	segments []Segment
}

func (p *Path) MoveTo(to Point) {
	p.segments = append(p.segments, Segment{Kind: MoveTo, To: to})
}

func (p *Path) LineTo(to Point) {
	p.segments = append(p.segments, Segment{Kind: LineTo, To: to})
}

func (p *Path) QuadTo(ctrl, to Point) {
	p.segments = append(p.segments, Segment{Kind: QuadTo, Ctrl: ctrl, To: to})
}

func (p *Path) Reset() {
	p.segments = p.segments[:0]
}

func (p *Path) Len() int {
	return len(p.segments)
}

// Empty reports whether the path has nothing to draw, i.e. no segments
// beyond bare MoveTo commands.
func (p *Path) Empty() bool {
	for _, s := range p.segments {
		if s.Kind != MoveTo {
			return false
		}
	}
	return true
}

// Segments returns a copy of the segments so callers can't mutate the path.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Count returns how many segments of the given kind the path holds.
func (p *Path) Count(kind SegmentKind) int {
	n := 0
	for _, s := range p.segments {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
