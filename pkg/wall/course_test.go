package wall

import (
	"slices"
	"testing"
)

func TestCourseAppendPositions(t *testing.T) {
	spec := DefaultSpec()
	c := NewCourse(0, 870, spec)

	for _, class := range []SizeClass{Full, Full, Full, Full} {
		if !c.Append(class) {
			t.Fatalf("Append(%s) = false, want true", class)
		}
	}

	wantStarts := []int{0, 220, 440, 660}
	for i, b := range c.Bricks {
		if b.XStart != wantStarts[i] {
			t.Errorf("brick %d XStart = %d, want %d", i, b.XStart, wantStarts[i])
		}
		if b.XEnd != b.XStart+210 {
			t.Errorf("brick %d XEnd = %d, want %d", i, b.XEnd, b.XStart+210)
		}
		if b.Course != 0 || b.Index != i {
			t.Errorf("brick %d positioned at R%dB%d, want R0B%d", i, b.Course, b.Index, i)
		}
	}
	if !c.Full() {
		t.Errorf("Full() = false after tiling %d mm, want true", c.Used())
	}
}

func TestCourseAppendRejectsOverflow(t *testing.T) {
	spec := DefaultSpec()
	c := NewCourse(0, 430, spec)

	if !c.Append(Full) || !c.Append(Full) {
		t.Fatal("two full bricks should fit in 430 mm")
	}
	if c.Append(Half) {
		t.Error("Append(Half) = true on a full course, want false")
	}
	if got := len(c.Bricks); got != 2 {
		t.Errorf("len(Bricks) = %d after rejected append, want 2", got)
	}
}

func TestCourseJointOffsets(t *testing.T) {
	spec := DefaultSpec()
	c := NewCourse(1, 870, spec)
	for _, class := range []SizeClass{Half, Full, Full, Full, Half} {
		if !c.Append(class) {
			t.Fatalf("Append(%s) = false, want true", class)
		}
	}

	want := []int{100, 320, 540, 760}
	if got := c.JointOffsets(); !slices.Equal(got, want) {
		t.Errorf("JointOffsets() = %v, want %v", got, want)
	}
}

func TestCourseJointOffsetsSingleBrick(t *testing.T) {
	spec := DefaultSpec()
	c := NewCourse(0, 210, spec)
	c.Append(Full)
	if got := c.JointOffsets(); got != nil {
		t.Errorf("JointOffsets() = %v for single brick, want nil", got)
	}
}

func TestCourseBrickIDsUnique(t *testing.T) {
	spec := DefaultSpec()
	c := NewCourse(0, 870, spec)
	for c.Append(Full) {
	}
	seen := make(map[string]bool)
	for _, b := range c.Bricks {
		id := b.ID.String()
		if seen[id] {
			t.Errorf("duplicate brick ID %s", id)
		}
		seen[id] = true
	}
}
