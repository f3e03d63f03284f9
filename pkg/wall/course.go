package wall

// Course is one horizontal row of bricks at a fixed ordinate. Bricks are
// contiguous left to right: each brick starts one head joint after the
// previous brick's end, and a completed course tiles the target width
// exactly (checked by Wall.ValidateCourses).
type Course struct {
	Ordinate int // vertical index, 0 = base course
	Width    int // target total width in mm
	Bricks   []*Brick

	spec BrickSpec
}

// NewCourse creates an empty course for the given ordinate and target width.
func NewCourse(ordinate, width int, spec BrickSpec) *Course {
	return &Course{Ordinate: ordinate, Width: width, spec: spec}
}

// Used returns the width in mm currently occupied by bricks and the joints
// between them. Zero for an empty course.
func (c *Course) Used() int {
	if len(c.Bricks) == 0 {
		return 0
	}
	return c.Bricks[len(c.Bricks)-1].XEnd
}

// CanFit reports whether a brick of the given class still fits within the
// target width, including the head joint that would precede it.
func (c *Course) CanFit(class SizeClass) bool {
	required := c.spec.Len(class)
	if len(c.Bricks) > 0 {
		required += c.spec.HeadJoint
	}
	return c.Used()+required <= c.Width
}

// Append lays a brick of the given class at the right end of the course.
// It returns false without modifying the course if the brick does not fit.
func (c *Course) Append(class SizeClass) bool {
	if !c.CanFit(class) {
		return false
	}
	start := 0
	if len(c.Bricks) > 0 {
		start = c.Bricks[len(c.Bricks)-1].XEnd + c.spec.HeadJoint
	}
	b := &Brick{
		ID:     newBrickID(),
		Class:  class,
		Length: c.spec.Len(class),
		Course: c.Ordinate,
		Index:  len(c.Bricks),
		XStart: start,
	}
	b.XEnd = b.XStart + b.Length
	c.Bricks = append(c.Bricks, b)
	return true
}

// Full reports whether the course tiles its target width exactly.
func (c *Course) Full() bool { return c.Used() == c.Width }

// JointOffsets returns the x positions of the interior vertical joints,
// measured at the end of each brick except the last. Wall edges are not
// joints.
func (c *Course) JointOffsets() []int {
	if len(c.Bricks) < 2 {
		return nil
	}
	offsets := make([]int, 0, len(c.Bricks)-1)
	for _, b := range c.Bricks[:len(c.Bricks)-1] {
		offsets = append(offsets, b.XEnd)
	}
	return offsets
}
