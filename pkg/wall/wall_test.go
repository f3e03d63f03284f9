package wall

import (
	"testing"

	"github.com/matzehuels/bricklayer/pkg/errors"
)

// twoCourseWall builds a 430 mm wall by hand: two fulls below, a full
// spanning the joint plus two halves at the edges above.
func twoCourseWall(t *testing.T) *Wall {
	t.Helper()
	spec := DefaultSpec()
	w := New(430, 112, spec)

	base := NewCourse(0, 430, spec)
	base.Append(Full) // 0-210
	base.Append(Full) // 220-430
	w.AddCourse(base)

	upper := NewCourse(1, 430, spec)
	upper.Append(Half) // 0-100
	upper.Append(Full) // 110-320, straddles the joint at 210
	upper.Append(Half) // 330-430
	w.AddCourse(upper)

	if err := w.ValidateCourses(); err != nil {
		t.Fatalf("ValidateCourses() = %v, want nil", err)
	}
	w.AssignSupports(spec.MinOverlap())
	return w
}

func TestAssignSupports(t *testing.T) {
	w := twoCourseWall(t)

	tests := []struct {
		ref  Ref
		want []Ref
	}{
		{Ref{1, 0}, []Ref{{0, 0}}},          // left half on the left full
		{Ref{1, 1}, []Ref{{0, 0}, {0, 1}}},  // middle full straddles both
		{Ref{1, 2}, []Ref{{0, 1}}},          // right half on the right full
		{Ref{0, 0}, nil},                    // base course has no supports
	}
	for _, tt := range tests {
		got := w.Supports(tt.ref)
		if len(got) != len(tt.want) {
			t.Errorf("Supports(%s) = %v, want %v", tt.ref, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Supports(%s)[%d] = %v, want %v", tt.ref, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLoadsAreInverse(t *testing.T) {
	w := twoCourseWall(t)

	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			for _, sup := range w.Supports(b.Ref()) {
				found := false
				for _, load := range w.Loads(sup) {
					if load == b.Ref() {
						found = true
					}
				}
				if !found {
					t.Errorf("Loads(%s) missing %s", sup, b.Ref())
				}
			}
		}
	}
}

func TestAssignSupportsMinOverlap(t *testing.T) {
	w := twoCourseWall(t)

	// With an overlap threshold above any actual overlap nothing supports
	// anything.
	w.AssignSupports(500)
	if got := w.Supports(Ref{1, 1}); got != nil {
		t.Errorf("Supports(R1B1) = %v with 500 mm threshold, want nil", got)
	}
}

func TestSupportsPlaced(t *testing.T) {
	w := twoCourseWall(t)
	mid := Ref{1, 1}

	if w.SupportsPlaced(mid) {
		t.Error("SupportsPlaced(R1B1) = true with empty base, want false")
	}

	b, _ := w.Brick(Ref{0, 0})
	b.Place()
	if w.SupportsPlaced(mid) {
		t.Error("SupportsPlaced(R1B1) = true with one of two supports, want false")
	}

	b, _ = w.Brick(Ref{0, 1})
	b.Place()
	if !w.SupportsPlaced(mid) {
		t.Error("SupportsPlaced(R1B1) = false with both supports placed, want true")
	}

	// Base-course bricks are always ready.
	if !w.SupportsPlaced(Ref{0, 1}) {
		t.Error("SupportsPlaced(R0B1) = false for base course, want true")
	}
}

func TestValidateCoursesDetectsGap(t *testing.T) {
	spec := DefaultSpec()
	w := New(430, 50, spec)
	c := NewCourse(0, 430, spec)
	c.Append(Full) // only 210 of 430 mm
	w.AddCourse(c)

	err := w.ValidateCourses()
	if !errors.Is(err, errors.ErrCodeUnsatisfiableBond) {
		t.Errorf("ValidateCourses() = %v, want UNSATISFIABLE_BOND", err)
	}
}

func TestValidateSupports(t *testing.T) {
	w := twoCourseWall(t)
	bounds := SupportBounds{MinInterior: 2, MinCorner: 1, Max: 2}

	if err := w.ValidateSupports(bounds); err != nil {
		t.Errorf("ValidateSupports() = %v, want nil", err)
	}

	// Tightening the corner minimum past what the geometry provides fails.
	strict := SupportBounds{MinInterior: 2, MinCorner: 2, Max: 2}
	err := w.ValidateSupports(strict)
	if !errors.Is(err, errors.ErrCodeInvalidSupport) {
		t.Errorf("ValidateSupports(strict) = %v, want INVALID_SUPPORT", err)
	}
}

func TestValidateSupportsRejectsSupportedBase(t *testing.T) {
	w := twoCourseWall(t)
	// Corrupt the graph: claim the base brick rests on something.
	w.supports[Ref{0, 0}] = []Ref{{0, 1}}

	err := w.ValidateSupports(SupportBounds{MinInterior: 1, MinCorner: 1, Max: 3})
	if !errors.Is(err, errors.ErrCodeInvalidSupport) {
		t.Errorf("ValidateSupports() = %v, want INVALID_SUPPORT", err)
	}
}

func TestBrickResolution(t *testing.T) {
	w := twoCourseWall(t)

	if _, ok := w.Brick(Ref{1, 2}); !ok {
		t.Error("Brick(R1B2) not found, want found")
	}
	for _, ref := range []Ref{{-1, 0}, {2, 0}, {0, 5}, {0, -1}} {
		if _, ok := w.Brick(ref); ok {
			t.Errorf("Brick(%s) found, want not found", ref)
		}
	}
}

func TestCountsAndCompletion(t *testing.T) {
	w := twoCourseWall(t)

	if got := w.BrickCount(); got != 5 {
		t.Errorf("BrickCount() = %d, want 5", got)
	}
	if w.Complete() {
		t.Error("Complete() = true on fresh wall, want false")
	}

	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			b.Place()
		}
	}
	if got := w.PlacedCount(); got != 5 {
		t.Errorf("PlacedCount() = %d, want 5", got)
	}
	if !w.Complete() {
		t.Error("Complete() = false with all bricks placed, want true")
	}
}

func TestCourseY(t *testing.T) {
	w := twoCourseWall(t)
	if got := w.CourseY(0); got != 0 {
		t.Errorf("CourseY(0) = %d, want 0", got)
	}
	if got := w.CourseY(3); got != 186 {
		t.Errorf("CourseY(3) = %d, want 186", got)
	}
}

func TestSnapshot(t *testing.T) {
	w := twoCourseWall(t)
	b, _ := w.Brick(Ref{0, 0})
	b.Place()

	snap := w.Snapshot()
	if snap.Width != 430 || snap.Bricks != 5 || snap.Placed != 1 {
		t.Errorf("Snapshot() = {Width: %d, Bricks: %d, Placed: %d}, want {430, 5, 1}",
			snap.Width, snap.Bricks, snap.Placed)
	}
	if got := len(snap.Courses); got != 2 {
		t.Fatalf("len(Courses) = %d, want 2", got)
	}

	mid := snap.Courses[1].Bricks[1]
	if mid.Label != "R1B1" || mid.Class != "full" {
		t.Errorf("middle brick = {%s, %s}, want {R1B1, full}", mid.Label, mid.Class)
	}
	if len(mid.Supports) != 2 || mid.Supports[0] != "R0B0" || mid.Supports[1] != "R0B1" {
		t.Errorf("middle brick supports = %v, want [R0B0 R0B1]", mid.Supports)
	}
	if !snap.Courses[0].Bricks[0].Placed {
		t.Error("base brick not marked placed in snapshot")
	}
}
