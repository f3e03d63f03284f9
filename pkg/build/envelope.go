package build

import (
	"fmt"

	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Envelope is the axis-aligned window of the wall the robot can currently
// reach, in mm. X grows rightward from the left wall edge, Y upward from
// the base course. Only the build scheduler mutates it.
type Envelope struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String formats the envelope as "WxH@(X,Y)".
func (e Envelope) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", e.Width, e.Height, e.X, e.Y)
}

// contains reports whether the brick lies fully inside the envelope, both
// horizontally and vertically.
func (e Envelope) contains(b *wall.Brick, w *wall.Wall) bool {
	if b.XStart < e.X || b.XEnd > e.X+e.Width {
		return false
	}
	bottom := w.CourseY(b.Course)
	top := bottom + w.Spec.Height
	return bottom >= e.Y && top <= e.Y+e.Height
}

// moveTo slides the envelope so its bottom-left corner sits at the target
// brick, clamped so the window never leaves the wall.
func (e Envelope) moveTo(target wall.Ref, w *wall.Wall) Envelope {
	brick, ok := w.Brick(target)
	if !ok {
		return e
	}
	e.X = clamp(brick.XStart, 0, max(0, w.Width-e.Width))
	e.Y = clamp(w.CourseY(target.Course), 0, max(0, w.Height-e.Height))
	return e
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
