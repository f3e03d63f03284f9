package bond

import "github.com/matzehuels/bricklayer/pkg/wall"

// englishCrossCourse lays an English-Cross-bond course.
//
// Odd ordinates are header courses: a row of half bricks closed by
// three-quarter bricks at both ends (3Q H H ... H 3Q), so that the headers
// straddle the stretcher joints below. Even ordinates are stretcher
// courses, and alternate their own phase every other appearance: ordinates
// divisible by four run F F ... F, the ones between run H F ... F H. The
// shifting stretcher phase is what gives the bond its cross pattern.
func englishCrossCourse(ord, width int, spec wall.BrickSpec) *wall.Course {
	c := wall.NewCourse(ord, width, spec)

	switch {
	case ord%2 == 1: // header course
		closing := spec.HeadJoint + spec.ThreeQuarter()
		c.Append(wall.ThreeQuarter)
		for c.Used()+spec.HeadJoint+spec.Half()+closing <= width {
			c.Append(wall.Half)
		}
		c.Append(wall.ThreeQuarter)
	case ord%4 == 0: // stretcher course, phase A
		for c.Append(wall.Full) {
		}
	default: // stretcher course, phase B
		c.Append(wall.Half)
		closing := spec.HeadJoint + spec.Half()
		for c.Used()+spec.HeadJoint+spec.Length+closing <= width {
			c.Append(wall.Full)
		}
		c.Append(wall.Half)
	}
	return c
}
