package wall

import "github.com/matzehuels/bricklayer/pkg/errors"

// BrickSpec holds the base brick and joint dimensions in integer millimetres.
// All other lengths derive from it: a half brick is (Length-HeadJoint)/2 so
// that two halves plus a head joint equal a full brick, a quarter is half of
// a half again, and a three-quarter is half + joint + quarter.
type BrickSpec struct {
	Length    int // full stretcher length
	Height    int // brick height
	HeadJoint int // vertical mortar joint between adjacent bricks
	BedJoint  int // horizontal mortar bed between courses
}

// DefaultSpec returns the standard waalformaat-derived dimensions used by
// the original simulation: 210x50 mm bricks with 10 mm head joints and a
// 12 mm bed.
func DefaultSpec() BrickSpec {
	return BrickSpec{Length: 210, Height: 50, HeadJoint: 10, BedJoint: 12}
}

// Validate checks that the derived half and quarter lengths are whole
// millimetres and everything is positive.
func (s BrickSpec) Validate() error {
	if s.Length <= 0 || s.Height <= 0 || s.HeadJoint <= 0 || s.BedJoint <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "brick dimensions must be positive")
	}
	if (s.Length-s.HeadJoint)%2 != 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"length %d minus head joint %d must be even to derive a half brick", s.Length, s.HeadJoint)
	}
	if (s.Half()-s.HeadJoint)%2 != 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"half brick %d minus head joint %d must be even to derive a quarter brick", s.Half(), s.HeadJoint)
	}
	return nil
}

// Half returns the half-brick length.
func (s BrickSpec) Half() int { return (s.Length - s.HeadJoint) / 2 }

// Quarter returns the quarter-brick length.
func (s BrickSpec) Quarter() int { return (s.Half() - s.HeadJoint) / 2 }

// ThreeQuarter returns the three-quarter-brick length
// (half + joint + quarter, so a 3Q tiles the same span as H+Q).
func (s BrickSpec) ThreeQuarter() int { return s.Half() + s.HeadJoint + s.Quarter() }

// Len returns the length in mm of the given size class.
func (s BrickSpec) Len(c SizeClass) int {
	switch c {
	case Full:
		return s.Length
	case ThreeQuarter:
		return s.ThreeQuarter()
	case Half:
		return s.Half()
	default:
		return s.Quarter()
	}
}

// CourseHeight returns the vertical module: brick height plus bed joint.
func (s BrickSpec) CourseHeight() int { return s.Height + s.BedJoint }

// MinOverlap returns the default minimum support overlap, classically a
// quarter brick.
func (s BrickSpec) MinOverlap() int { return s.Quarter() }
