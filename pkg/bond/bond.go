// Package bond generates wall layouts for the supported masonry bond
// variants.
//
// A bond is a pure function from (wall width, course count, parameters) to a
// fully assembled [wall.Wall]: it lays out every course, verifies exact
// tiling, derives the support graph and validates it against the variant's
// declared support bounds. Generators hold no state beyond their parameters.
//
// The variant set is closed: Stretcher, Flemish and EnglishCross are
// deterministic closed-form patterns, while Wild delegates per-course brick
// choice to a seeded backtracking solver (see solver.go) and is
// deterministic for a fixed seed.
//
// Widths are strict: Generate fails with UNSATISFIABLE_BOND when the wall
// width cannot be tiled exactly by the variant's brick sizes plus joints.
// Use [NearestWidth] to snap a requested width to the closest legal one
// before generating.
package bond

import (
	"math/rand/v2"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Variant identifies a bond pattern.
type Variant string

const (
	// Stretcher is the running bond: every course offset by half a brick
	// from the course below, alternating between two phases.
	Stretcher Variant = "stretcher"
	// Flemish alternates full and half bricks within a course, with
	// three-quarter bricks closing the offset courses at wall ends.
	Flemish Variant = "flemish"
	// EnglishCross alternates whole stretcher courses with header courses,
	// each with its own offset rule.
	EnglishCross Variant = "english-cross"
	// Wild has no repeating pattern; brick lengths are chosen per course by
	// a constraint solver under joint-offset and run constraints.
	Wild Variant = "wild"
)

// Variants returns all supported variants in display order.
func Variants() []Variant {
	return []Variant{Stretcher, Flemish, EnglishCross, Wild}
}

// ParseVariant converts a user-supplied name into a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown bond variant %q", s)
}

// Params configures generation. The zero value is usable: defaults are
// filled in by Generate.
type Params struct {
	Spec wall.BrickSpec // brick dimensions; zero value replaced by wall.DefaultSpec

	// MinOverlap is the minimum horizontal overlap in mm for a brick below
	// to count as support. Defaults to a quarter brick.
	MinOverlap int

	// MaxRun caps how many times the same size class may repeat
	// consecutively within a Wild course. Defaults to DefaultMaxRun.
	MaxRun int

	// Seed drives the Wild solver's try-order shuffling. The same seed
	// always reproduces the same wall.
	Seed uint64

	// MaxSteps bounds the Wild solver's backtracking search per course.
	// Defaults to DefaultMaxSteps.
	MaxSteps int
}

const (
	// DefaultMaxRun is the default consecutive-repeat cap for Wild courses.
	DefaultMaxRun = 3

	// DefaultMaxSteps is the default Wild solver step budget per course.
	DefaultMaxSteps = 200_000
)

func (p Params) withDefaults() Params {
	if p.Spec == (wall.BrickSpec{}) {
		p.Spec = wall.DefaultSpec()
	}
	if p.MinOverlap == 0 {
		p.MinOverlap = p.Spec.MinOverlap()
	}
	if p.MaxRun == 0 {
		p.MaxRun = DefaultMaxRun
	}
	if p.MaxSteps == 0 {
		p.MaxSteps = DefaultMaxSteps
	}
	return p
}

// Generate lays out a wall of the given width (mm) and course count for the
// variant. The returned wall has every brick Unplaced, every course tiling
// the width exactly, and a validated support graph.
//
// Generation fails with UNSATISFIABLE_BOND when the width is not tileable
// by the variant, INFEASIBLE when the Wild solver exhausts its search, and
// INVALID_SUPPORT when the generated geometry violates the variant's
// support bounds (a generator defect, not a caller error).
func Generate(v Variant, width, courses int, p Params) (*wall.Wall, error) {
	p = p.withDefaults()
	if err := p.Spec.Validate(); err != nil {
		return nil, err
	}
	if courses < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "course count must be at least 1, got %d", courses)
	}
	if err := checkWidth(v, width, p.Spec); err != nil {
		return nil, err
	}

	height := (courses-1)*p.Spec.CourseHeight() + p.Spec.Height
	w := wall.New(width, height, p.Spec)

	switch v {
	case Stretcher:
		for ord := range courses {
			w.AddCourse(stretcherCourse(ord, width, p.Spec))
		}
	case Flemish:
		for ord := range courses {
			w.AddCourse(flemishCourse(ord, width, p.Spec))
		}
	case EnglishCross:
		for ord := range courses {
			w.AddCourse(englishCrossCourse(ord, width, p.Spec))
		}
	case Wild:
		s := newSolver(width, p.Spec, p.MaxRun, p.MaxSteps,
			rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15)))
		var prev []int
		for ord := range courses {
			classes, err := s.solveCourse(prev)
			if err != nil {
				return nil, err
			}
			c := wall.NewCourse(ord, width, p.Spec)
			for _, class := range classes {
				if !c.Append(class) {
					return nil, errors.New(errors.ErrCodeInternal,
						"solver produced brick that does not fit course %d", ord)
				}
			}
			w.AddCourse(c)
			prev = c.JointOffsets()
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown bond variant %q", v)
	}

	if err := w.ValidateCourses(); err != nil {
		return nil, err
	}
	w.AssignSupports(p.MinOverlap)
	if err := w.ValidateSupports(SupportBoundsFor(v)); err != nil {
		return nil, err
	}
	return w, nil
}

// SupportBoundsFor returns the variant's legal support counts for bricks
// above the base course. Corner bricks may rest on a single brick in every
// variant; Flemish and EnglishCross crossings reach three supports.
func SupportBoundsFor(v Variant) wall.SupportBounds {
	switch v {
	case Stretcher:
		return wall.SupportBounds{MinInterior: 2, MinCorner: 1, Max: 2}
	default:
		return wall.SupportBounds{MinInterior: 1, MinCorner: 1, Max: 3}
	}
}

// MinWidth returns the smallest legal wall width in mm for the variant.
func MinWidth(v Variant, spec wall.BrickSpec) int {
	switch v {
	case Stretcher:
		// full + half, the narrowest wall with two offset phases
		return spec.Length + spec.HeadJoint + spec.Half()
	case Flemish:
		// even course F H F, odd course 3Q F 3Q
		return 2*spec.Length + spec.Half() + 2*spec.HeadJoint
	case EnglishCross:
		// two stretchers over 3Q H 3Q
		return 2*spec.Length + spec.HeadJoint
	default: // Wild
		return spec.ThreeQuarter() + spec.HeadJoint + spec.Half()
	}
}

// Increment returns the step between consecutive legal widths for the
// variant.
func Increment(v Variant, spec wall.BrickSpec) int {
	switch v {
	case Flemish:
		return spec.Length + spec.Half() + 2*spec.HeadJoint
	case EnglishCross:
		return spec.Length + spec.HeadJoint
	case Wild:
		// the solver works on the quarter-brick grid, so any width on that
		// grid is a candidate
		return spec.Quarter() + spec.HeadJoint
	default: // Stretcher
		return spec.Half() + spec.HeadJoint
	}
}

// checkWidth verifies that the width is exactly tileable by the variant.
func checkWidth(v Variant, width int, spec wall.BrickSpec) error {
	minW := MinWidth(v, spec)
	if width < minW {
		return errors.New(errors.ErrCodeUnsatisfiableBond,
			"width %d mm is below the %s minimum of %d mm", width, v, minW)
	}
	if (width-minW)%Increment(v, spec) != 0 {
		return errors.New(errors.ErrCodeUnsatisfiableBond,
			"width %d mm is not tileable by %s bond (nearest legal: %d mm)", width, v, NearestWidth(v, width, spec))
	}
	return nil
}

// NearestWidth snaps a requested width to the closest legal width for the
// variant, rounding half-increments down. Callers that prefer adjustment
// over failure (the CLI does) snap first and then generate.
func NearestWidth(v Variant, width int, spec wall.BrickSpec) int {
	minW := MinWidth(v, spec)
	if width <= minW {
		return minW
	}
	inc := Increment(v, spec)
	remainder := (width - minW) % inc
	if remainder > inc/2 {
		return width + inc - remainder
	}
	return width - remainder
}

// CoursesForHeight returns the number of courses that best approximates the
// requested wall height in mm, never fewer than one.
func CoursesForHeight(height int, spec wall.BrickSpec) int {
	unit := spec.CourseHeight()
	n := (height + spec.BedJoint + unit/2) / unit
	return max(1, n)
}
