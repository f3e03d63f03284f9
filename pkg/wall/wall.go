package wall

import (
	"github.com/matzehuels/bricklayer/pkg/errors"
)

// Wall aggregates courses and owns the derived support graph. Construction
// happens in three steps, all performed by the bond generator:
//
//  1. courses are generated and appended with AddCourse
//  2. ValidateCourses checks that every course tiles the width exactly
//  3. AssignSupports derives the support graph, ValidateSupports checks it
//
// After that the wall is effectively read-only except for brick states.
type Wall struct {
	Width  int // mm
	Height int // mm
	Spec   BrickSpec

	Courses []*Course

	supports map[Ref][]Ref // brick -> bricks beneath it that must be placed first
	loads    map[Ref][]Ref // inverse: brick -> bricks above resting on it
}

// New creates an empty wall of the given dimensions.
func New(width, height int, spec BrickSpec) *Wall {
	return &Wall{
		Width:    width,
		Height:   height,
		Spec:     spec,
		supports: make(map[Ref][]Ref),
		loads:    make(map[Ref][]Ref),
	}
}

// AddCourse appends a course. Courses must be added bottom-up in ordinate
// order; the bond generators guarantee this.
func (w *Wall) AddCourse(c *Course) { w.Courses = append(w.Courses, c) }

// Brick resolves a reference to the brick it names.
func (w *Wall) Brick(r Ref) (*Brick, bool) {
	if r.Course < 0 || r.Course >= len(w.Courses) {
		return nil, false
	}
	course := w.Courses[r.Course]
	if r.Index < 0 || r.Index >= len(course.Bricks) {
		return nil, false
	}
	return course.Bricks[r.Index], true
}

// Supports returns the bricks in the course below that carry the referenced
// brick. Base-course bricks have no supports. The returned slice is a
// read-only view.
func (w *Wall) Supports(r Ref) []Ref { return w.supports[r] }

// Loads returns the bricks in the course above resting on the referenced
// brick. The returned slice is a read-only view.
func (w *Wall) Loads(r Ref) []Ref { return w.loads[r] }

// SupportsPlaced reports whether every support of the referenced brick has
// been placed. True for base-course bricks.
func (w *Wall) SupportsPlaced(r Ref) bool {
	for _, s := range w.supports[r] {
		if b, ok := w.Brick(s); !ok || !b.Placed() {
			return false
		}
	}
	return true
}

// BrickCount returns the total number of bricks in the wall.
func (w *Wall) BrickCount() int {
	n := 0
	for _, c := range w.Courses {
		n += len(c.Bricks)
	}
	return n
}

// PlacedCount returns the number of bricks already laid.
func (w *Wall) PlacedCount() int {
	n := 0
	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			if b.Placed() {
				n++
			}
		}
	}
	return n
}

// Complete reports whether every brick has been placed.
func (w *Wall) Complete() bool { return w.PlacedCount() == w.BrickCount() }

// CourseY returns the y position in mm of the bottom of the given course.
func (w *Wall) CourseY(ordinate int) int { return ordinate * w.Spec.CourseHeight() }

// ValidateCourses checks that every course tiles the wall width exactly:
// the sum of brick lengths plus head joints equals the width, with no gaps
// or overlaps. A mismatch indicates a bond-generator defect.
func (w *Wall) ValidateCourses() error {
	for _, c := range w.Courses {
		if c.Used() != w.Width {
			return errors.New(errors.ErrCodeUnsatisfiableBond,
				"course %d tiles %d mm, want %d mm", c.Ordinate, c.Used(), w.Width)
		}
	}
	return nil
}

// AssignSupports derives the support graph in a single pass over adjacent
// course pairs. A brick below supports a brick above when their horizontal
// spans overlap by at least minOverlap mm. Existing relations are discarded
// first, so the graph is always rebuildable from geometry alone.
func (w *Wall) AssignSupports(minOverlap int) {
	w.supports = make(map[Ref][]Ref)
	w.loads = make(map[Ref][]Ref)
	for i := 1; i < len(w.Courses); i++ {
		below, current := w.Courses[i-1], w.Courses[i]
		for _, b := range current.Bricks {
			for _, s := range below.Bricks {
				if overlap(b.XStart, b.XEnd, s.XStart, s.XEnd) >= minOverlap {
					w.supports[b.Ref()] = append(w.supports[b.Ref()], s.Ref())
					w.loads[s.Ref()] = append(w.loads[s.Ref()], b.Ref())
				}
			}
		}
	}
}

// SupportBounds declares a bond variant's legal support counts for bricks
// above the base course. Corner bricks rest against the wall edge and may
// legitimately sit on a single brick, hence the separate minimum.
type SupportBounds struct {
	MinInterior int // minimum supports for non-corner bricks
	MinCorner   int // minimum supports for the first/last brick of a course
	Max         int // maximum supports for any brick
}

// ValidateSupports checks the support-count invariant for every brick above
// the base course. A brick with zero supports is structurally invalid in
// every bond; the per-variant bounds tighten this further. Base-course
// bricks must have none.
func (w *Wall) ValidateSupports(bounds SupportBounds) error {
	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			n := len(w.supports[b.Ref()])
			if c.Ordinate == 0 {
				if n != 0 {
					return errors.New(errors.ErrCodeInvalidSupport,
						"base-course brick %s has %d supports, want 0", b.Label(), n)
				}
				continue
			}
			minWant := bounds.MinInterior
			if b.Index == 0 || b.Index == len(c.Bricks)-1 {
				minWant = bounds.MinCorner
			}
			if n < minWant || n > bounds.Max {
				return errors.New(errors.ErrCodeInvalidSupport,
					"brick %s has %d supports, want between %d and %d", b.Label(), n, minWant, bounds.Max)
			}
		}
	}
	return nil
}
