package bond

import "github.com/matzehuels/bricklayer/pkg/wall"

// stretcherCourse lays a running-bond course. Courses alternate between two
// phases: even ordinates start with a full brick at offset zero, odd
// ordinates open with a half brick so that every joint sits half a brick
// away from the joints below. Both phases close with a half brick when the
// remaining gap asks for one.
func stretcherCourse(ord, width int, spec wall.BrickSpec) *wall.Course {
	c := wall.NewCourse(ord, width, spec)

	if ord%2 != 0 {
		c.Append(wall.Half)
	}
	for c.Append(wall.Full) {
	}
	if !c.Full() {
		c.Append(wall.Half)
	}
	return c
}
