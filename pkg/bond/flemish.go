package bond

import "github.com/matzehuels/bricklayer/pkg/wall"

// flemishCourse lays a Flemish-bond course.
//
// Even ordinates run F H F H ... F. Odd ordinates are offset by a
// three-quarter corner brick on each end, 3Q F H F ... F 3Q, which keeps the
// alternation at the wall edges without slivers and staggers every interior
// joint against the course below. The three-quarter corners are what push
// the interior fulls of an offset course onto three supports.
func flemishCourse(ord, width int, spec wall.BrickSpec) *wall.Course {
	c := wall.NewCourse(ord, width, spec)

	if ord%2 == 0 {
		c.Append(wall.Full)
		for !c.Full() {
			c.Append(wall.Half)
			c.Append(wall.Full)
		}
		return c
	}

	// Closing sequence: head joint + three-quarter.
	closing := spec.HeadJoint + spec.ThreeQuarter()

	c.Append(wall.ThreeQuarter)
	c.Append(wall.Full)
	for {
		// Fit the next half+full pair only if the closing 3Q still fits after.
		step := 2*spec.HeadJoint + spec.Half() + spec.Length
		if c.Used()+step+closing > width {
			break
		}
		c.Append(wall.Half)
		c.Append(wall.Full)
	}
	c.Append(wall.ThreeQuarter)
	return c
}
