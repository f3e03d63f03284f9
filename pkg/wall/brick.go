// Package wall models a masonry wall as an arena of bricks organized into
// horizontal courses, together with the support graph derived from brick
// geometry.
//
// A Wall is constructed once by a bond generator (see pkg/bond) and is never
// structurally mutated afterwards: the only mutable part of a generated wall
// is each brick's placement state, which the build scheduler (pkg/build)
// flips from Unplaced to Placed as the robot works.
//
// The support relation is stored as a derived index of (course, index)
// references rather than as pointers embedded in bricks, so it can always be
// rebuilt from geometry alone and never becomes an independent source of
// truth.
package wall

import (
	"fmt"

	"github.com/google/uuid"
)

// SizeClass identifies a brick length class. Which classes a course may
// contain depends on the bond variant that generated it.
type SizeClass int

const (
	// Full is a whole stretcher brick.
	Full SizeClass = iota
	// ThreeQuarter closes Flemish and English-Cross courses at wall ends.
	ThreeQuarter
	// Half is half a stretcher; its length equals the brick depth, which is
	// what lets half bricks close corners.
	Half
	// Quarter is the queen-closer sliver; only validation and geometry use
	// it (no generator currently lays quarter bricks).
	Quarter
)

// String returns the lowercase class name.
func (c SizeClass) String() string {
	switch c {
	case Full:
		return "full"
	case ThreeQuarter:
		return "three-quarter"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	default:
		return fmt.Sprintf("sizeclass(%d)", int(c))
	}
}

// State is the placement state of a brick.
type State int

const (
	// Unplaced is the state of every brick in a freshly generated wall.
	Unplaced State = iota
	// Placed means the build scheduler has laid the brick.
	Placed
)

// Brick is a single brick in the wall. Geometry (class, length, position) is
// immutable once the brick has been appended to a course; only the placement
// state changes afterwards, and only through Place.
type Brick struct {
	ID     uuid.UUID // stable identity, assigned at generation time
	Class  SizeClass
	Length int // mm, derived from Class via BrickSpec
	Course int // ordinate of the owning course
	Index  int // position within the course, left to right
	XStart int // mm from the left wall edge
	XEnd   int // XStart + Length

	state State
}

// State returns the brick's placement state.
func (b *Brick) State() State { return b.state }

// Placed reports whether the brick has been laid.
func (b *Brick) Placed() bool { return b.state == Placed }

// Place marks the brick as laid. Placing an already placed brick is a no-op.
func (b *Brick) Place() { b.state = Placed }

// Label returns the human-readable position label, e.g. "R2B3" for the
// fourth brick of the third course.
func (b *Brick) Label() string {
	return fmt.Sprintf("R%dB%d", b.Course, b.Index)
}

// Ref identifies a brick by its position in the wall arena.
type Ref struct {
	Course int `json:"course"`
	Index  int `json:"index"`
}

// String returns the position label, matching Brick.Label.
func (r Ref) String() string { return fmt.Sprintf("R%dB%d", r.Course, r.Index) }

// Ref returns the arena reference for the brick.
func (b *Brick) Ref() Ref { return Ref{Course: b.Course, Index: b.Index} }

// overlap returns the horizontal overlap in mm between two spans, or 0 if
// they are disjoint.
func overlap(aStart, aEnd, bStart, bEnd int) int {
	return max(0, min(aEnd, bEnd)-max(aStart, bStart))
}

func newBrickID() uuid.UUID { return uuid.New() }
