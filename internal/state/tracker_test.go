package state

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTrackerScenario(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	tr.Down(Point{10, 10})
	test.That(t, tr.Move(Point{20, 10}))
	test.T(t, tr.Last(), Point{20, 10})
	test.That(t, !tr.Move(Point{21, 10}))
	test.T(t, tr.Last(), Point{20, 10})
	tr.Up()

	test.T(t, tr.State(), Idle)
	test.T(t, tr.Path().Segments(), []Segment{
		{Kind: MoveTo, To: Point{10, 10}},
		{Kind: QuadTo, Ctrl: Point{10, 10}, To: Point{15, 10}},
		{Kind: LineTo, To: Point{20, 10}},
	})
	test.T(t, tr.Path().Count(QuadTo), 1)
	test.T(t, tr.Path().Count(LineTo), 1)
}

func TestTrackerSmallMovesDiscarded(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	tr.Down(Point{100, 100})
	before := tr.Path().Segments()

	var tests = []Point{
		{101, 101},
		{104.9, 95.1},
		{96, 104},
		{100, 100},
	}
	for _, p := range tests {
		t.Run("", func(t *testing.T) {
			test.That(t, !tr.Move(p))
			test.T(t, tr.Last(), Point{100, 100})
		})
	}
	test.T(t, tr.Path().Segments(), before)
}

func TestTrackerToleranceBoundary(t *testing.T) {
	var tests = []struct {
		to   Point
		want Point
	}{
		{Point{5, 0}, Point{2.5, 0}},
		{Point{0, -5}, Point{0, -2.5}},
		{Point{-8, 1}, Point{-4, 0.5}},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			tr := NewTracker(DefaultTolerance)
			tr.Down(Point{})
			n := tr.Path().Len()
			test.That(t, tr.Move(tt.to))
			test.T(t, tr.Path().Len(), n+1)
			segs := tr.Path().Segments()
			test.T(t, segs[len(segs)-1], Segment{Kind: QuadTo, Ctrl: Point{}, To: tt.want})
			test.T(t, tr.Last(), tt.to)
		})
	}
}

func TestTrackerIdleIgnoresMoveAndUp(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	test.That(t, !tr.Move(Point{50, 50}))
	tr.Up()
	test.T(t, tr.Path().Len(), 0)
	test.T(t, tr.State(), Idle)
}

func TestTrackerHandle(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	test.That(t, tr.Handle(TouchEvent{Kind: TouchDown, At: Point{1, 1}}))
	test.T(t, tr.State(), Drawing)
	test.That(t, tr.Handle(TouchEvent{Kind: TouchMove, At: Point{2, 2}}))
	test.That(t, tr.Handle(TouchEvent{Kind: TouchUp}))
	test.T(t, tr.State(), Idle)

	n := tr.Path().Len()
	test.That(t, !tr.Handle(TouchEvent{Kind: TouchKind(42), At: Point{9, 9}}))
	test.T(t, tr.Path().Len(), n)
}

func TestTrackerMultipleStrokesShareOnePath(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	for _, x := range []float32{0, 100} {
		tr.Down(Point{x, 0})
		tr.Move(Point{x + 10, 0})
		tr.Up()
	}
	test.T(t, tr.Path().Count(MoveTo), 2)
	test.T(t, tr.Path().Count(QuadTo), 2)
	test.T(t, tr.Path().Count(LineTo), 2)
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(DefaultTolerance)
	tr.Down(Point{3, 4})
	tr.Move(Point{30, 40})
	tr.Reset()

	test.T(t, tr.State(), Idle)
	test.T(t, tr.Path().Len(), 0)
	test.That(t, tr.Path().Empty())
	test.T(t, tr.Last(), Point{})
}

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())
	p.MoveTo(Point{5, 2})
	test.That(t, p.Empty())
	p.LineTo(Point{6, 2})
	test.That(t, !p.Empty())
}

func TestNegativeToleranceClamped(t *testing.T) {
	test.Float(t, float64(NewTracker(-3).Tolerance()), 0)
}
