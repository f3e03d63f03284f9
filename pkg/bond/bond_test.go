package bond

import (
	"slices"
	"testing"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// classesOf extracts the size class sequence of every course.
func classesOf(w *wall.Wall) [][]wall.SizeClass {
	out := make([][]wall.SizeClass, len(w.Courses))
	for i, c := range w.Courses {
		for _, b := range c.Bricks {
			out[i] = append(out[i], b.Class)
		}
	}
	return out
}

// assertSupportCounts checks every brick above the base course against the
// variant's support bounds, interior and corner separately.
func assertSupportCounts(t *testing.T, w *wall.Wall, bounds wall.SupportBounds) {
	t.Helper()
	for _, c := range w.Courses {
		if c.Ordinate == 0 {
			continue
		}
		for _, b := range c.Bricks {
			n := len(w.Supports(b.Ref()))
			minWant := bounds.MinInterior
			if b.Index == 0 || b.Index == len(c.Bricks)-1 {
				minWant = bounds.MinCorner
			}
			if n < minWant || n > bounds.Max {
				t.Errorf("brick %s has %d supports, want between %d and %d", b.Label(), n, minWant, bounds.Max)
			}
		}
	}
}

func TestGenerateStretcher(t *testing.T) {
	w, err := Generate(Stretcher, 870, 4, Params{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantCounts := []int{4, 5, 4, 5}
	for i, c := range w.Courses {
		if got := len(c.Bricks); got != wantCounts[i] {
			t.Errorf("course %d has %d bricks, want %d", i, got, wantCounts[i])
		}
	}

	// Even courses are all fulls, odd courses open and close with halves.
	wantEven := []int{210, 430, 650}
	wantOdd := []int{100, 320, 540, 760}
	for i, c := range w.Courses {
		want := wantEven
		if i%2 != 0 {
			want = wantOdd
		}
		if got := c.JointOffsets(); !slices.Equal(got, want) {
			t.Errorf("course %d joints = %v, want %v", i, got, want)
		}
	}

	// Every brick starts unplaced.
	for _, c := range w.Courses {
		for _, b := range c.Bricks {
			if b.Placed() {
				t.Errorf("brick %s placed in fresh wall", b.Label())
			}
		}
	}

	assertSupportCounts(t, w, SupportBoundsFor(Stretcher))
}

func TestGenerateFlemish(t *testing.T) {
	w, err := Generate(Flemish, 870, 4, Params{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	classes := classesOf(w)
	wantEven := []wall.SizeClass{wall.Full, wall.Half, wall.Full, wall.Half, wall.Full}
	wantOdd := []wall.SizeClass{wall.ThreeQuarter, wall.Full, wall.Half, wall.Full, wall.ThreeQuarter}
	for i := range w.Courses {
		want := wantEven
		if i%2 != 0 {
			want = wantOdd
		}
		if !slices.Equal(classes[i], want) {
			t.Errorf("course %d classes = %v, want %v", i, classes[i], want)
		}
	}

	// The interior full of an offset course straddles three bricks below.
	if got := len(w.Supports(wall.Ref{Course: 1, Index: 1})); got != 3 {
		t.Errorf("Supports(R1B1) = %d bricks, want 3", got)
	}

	assertSupportCounts(t, w, SupportBoundsFor(Flemish))
}

func TestGenerateEnglishCross(t *testing.T) {
	w, err := Generate(EnglishCross, 870, 6, Params{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	classes := classesOf(w)

	// Header courses: three-quarters closing a row of halves.
	header := classes[1]
	if header[0] != wall.ThreeQuarter || header[len(header)-1] != wall.ThreeQuarter {
		t.Errorf("header course = %v, want three-quarter ends", header)
	}
	for _, class := range header[1 : len(header)-1] {
		if class != wall.Half {
			t.Errorf("header interior contains %s, want half", class)
		}
	}

	// Stretcher phases alternate between all fulls and half-closed rows.
	if want := []wall.SizeClass{wall.Full, wall.Full, wall.Full, wall.Full}; !slices.Equal(classes[0], want) {
		t.Errorf("course 0 classes = %v, want %v", classes[0], want)
	}
	if want := []wall.SizeClass{wall.Half, wall.Full, wall.Full, wall.Full, wall.Half}; !slices.Equal(classes[2], want) {
		t.Errorf("course 2 classes = %v, want %v", classes[2], want)
	}
	if !slices.Equal(classes[4], classes[0]) {
		t.Errorf("course 4 classes = %v, want same phase as course 0 (%v)", classes[4], classes[0])
	}

	assertSupportCounts(t, w, SupportBoundsFor(EnglishCross))
}

func TestGenerateWildDeterministic(t *testing.T) {
	first, err := Generate(Wild, 870, 5, Params{Seed: 42})
	if err != nil {
		t.Fatalf("Generate(seed 42) error = %v", err)
	}
	second, err := Generate(Wild, 870, 5, Params{Seed: 42})
	if err != nil {
		t.Fatalf("Generate(seed 42) error = %v", err)
	}

	a, b := classesOf(first), classesOf(second)
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Errorf("course %d differs between identical seeds: %v vs %v", i, a[i], b[i])
		}
	}

	other, err := Generate(Wild, 870, 5, Params{Seed: 43})
	if err != nil {
		t.Fatalf("Generate(seed 43) error = %v", err)
	}
	c := classesOf(other)
	same := true
	for i := range a {
		if !slices.Equal(a[i], c[i]) {
			same = false
		}
	}
	if same {
		t.Error("seeds 42 and 43 produced identical walls")
	}
}

func TestGenerateWildProperties(t *testing.T) {
	for seed := uint64(1); seed <= 6; seed++ {
		w, err := Generate(Wild, 870, 5, Params{Seed: seed})
		if err != nil {
			t.Fatalf("Generate(seed %d) error = %v", seed, err)
		}

		// No interior joint may align with a joint of the course below.
		for i := 1; i < len(w.Courses); i++ {
			below := w.Courses[i-1].JointOffsets()
			for _, x := range w.Courses[i].JointOffsets() {
				if slices.Contains(below, x) {
					t.Errorf("seed %d: course %d joint at %d mm aligns with course %d", seed, i, x, i-1)
				}
			}
		}

		for _, c := range w.Courses {
			// No size class repeats more than three times in a row.
			run := 1
			for j := 1; j < len(c.Bricks); j++ {
				if c.Bricks[j].Class == c.Bricks[j-1].Class {
					run++
					if run > DefaultMaxRun {
						t.Errorf("seed %d: course %d has a run of %d %s bricks", seed, c.Ordinate, run, c.Bricks[j].Class)
					}
				} else {
					run = 1
				}
			}

			// Three-quarter bricks keep to the course ends.
			for j, b := range c.Bricks {
				if b.Class == wall.ThreeQuarter && j != 0 && j != len(c.Bricks)-1 {
					t.Errorf("seed %d: course %d has an interior three-quarter at index %d", seed, c.Ordinate, j)
				}
			}
		}

		assertSupportCounts(t, w, SupportBoundsFor(Wild))
	}
}

func TestGenerateUnsatisfiableWidth(t *testing.T) {
	tests := []struct {
		variant Variant
		width   int
	}{
		{Wild, 400},       // off the quarter grid
		{Stretcher, 400},  // between legal widths 320 and 430
		{Flemish, 600},    // not congruent to the flemish module
		{EnglishCross, 500},
		{Stretcher, 100},  // below minimum
	}
	for _, tt := range tests {
		_, err := Generate(tt.variant, tt.width, 3, Params{})
		if !errors.Is(err, errors.ErrCodeUnsatisfiableBond) {
			t.Errorf("Generate(%s, %d) = %v, want UNSATISFIABLE_BOND", tt.variant, tt.width, err)
		}
	}
}

func TestGenerateInvalidCourses(t *testing.T) {
	_, err := Generate(Stretcher, 870, 0, Params{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Generate(courses 0) = %v, want INVALID_INPUT", err)
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(string(v))
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v, want %v, nil", v, got, err, v)
		}
	}
	if _, err := ParseVariant("herringbone"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseVariant(herringbone) = %v, want INVALID_INPUT", err)
	}
}

func TestNearestWidth(t *testing.T) {
	spec := wall.DefaultSpec()
	tests := []struct {
		variant Variant
		width   int
		want    int
	}{
		{Stretcher, 2300, 2300}, // already legal
		{Stretcher, 400, 430},   // rounds up past the half increment
		{Stretcher, 100, 320},   // clamps to the minimum
		{Flemish, 2300, 2190},
		{Wild, 400, 375},
	}
	for _, tt := range tests {
		if got := NearestWidth(tt.variant, tt.width, spec); got != tt.want {
			t.Errorf("NearestWidth(%s, %d) = %d, want %d", tt.variant, tt.width, got, tt.want)
		}
	}

	// Snapped widths must generate cleanly.
	for _, tt := range tests {
		if _, err := Generate(tt.variant, tt.want, 3, Params{Seed: 1}); err != nil {
			t.Errorf("Generate(%s, %d) after snapping = %v, want nil", tt.variant, tt.want, err)
		}
	}
}

func TestCoursesForHeight(t *testing.T) {
	spec := wall.DefaultSpec()
	tests := []struct {
		height int
		want   int
	}{
		{2000, 32},
		{62, 1},
		{0, 1}, // never below one course
	}
	for _, tt := range tests {
		if got := CoursesForHeight(tt.height, spec); got != tt.want {
			t.Errorf("CoursesForHeight(%d) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestGenerateWallDimensions(t *testing.T) {
	w, err := Generate(Stretcher, 870, 4, Params{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if w.Width != 870 {
		t.Errorf("Width = %d, want 870", w.Width)
	}
	// Three course modules plus the top brick.
	if want := 3*62 + 50; w.Height != want {
		t.Errorf("Height = %d, want %d", w.Height, want)
	}
}
