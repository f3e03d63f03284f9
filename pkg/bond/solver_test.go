package bond

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

func testSolver(width, maxRun, budget int, seed uint64) *solver {
	return newSolver(width, wall.DefaultSpec(), maxRun, budget,
		rand.New(rand.NewPCG(seed, seed+1)))
}

// jointsOf computes the interior joint positions of a class sequence.
func jointsOf(classes []wall.SizeClass, spec wall.BrickSpec) []int {
	var joints []int
	x := 0
	for i, class := range classes {
		x += spec.Len(class)
		if i < len(classes)-1 {
			joints = append(joints, x)
			x += spec.HeadJoint
		}
	}
	return joints
}

func spanOf(classes []wall.SizeClass, spec wall.BrickSpec) int {
	total := 0
	for i, class := range classes {
		if i > 0 {
			total += spec.HeadJoint
		}
		total += spec.Len(class)
	}
	return total
}

func TestSolverTilesWidth(t *testing.T) {
	spec := wall.DefaultSpec()
	s := testSolver(870, 3, DefaultMaxSteps, 7)

	classes, err := s.solveCourse(nil)
	if err != nil {
		t.Fatalf("solveCourse() error = %v", err)
	}
	if got := spanOf(classes, spec); got != 870 {
		t.Errorf("course spans %d mm, want 870", got)
	}
}

func TestSolverAvoidsPreviousJoints(t *testing.T) {
	spec := wall.DefaultSpec()
	s := testSolver(870, 3, DefaultMaxSteps, 7)

	first, err := s.solveCourse(nil)
	if err != nil {
		t.Fatalf("solveCourse(first) error = %v", err)
	}
	prev := jointsOf(first, spec)

	second, err := s.solveCourse(prev)
	if err != nil {
		t.Fatalf("solveCourse(second) error = %v", err)
	}
	blocked := make(map[int]bool)
	for _, x := range prev {
		blocked[x] = true
	}
	for _, x := range jointsOf(second, spec) {
		if blocked[x] {
			t.Errorf("joint at %d mm aligns with the course below", x)
		}
	}
}

func TestSolverRunConstraint(t *testing.T) {
	s := testSolver(870, 1, DefaultMaxSteps, 3)

	classes, err := s.solveCourse(nil)
	if err != nil {
		t.Fatalf("solveCourse() error = %v", err)
	}
	for i := 1; i < len(classes); i++ {
		if classes[i] == classes[i-1] {
			t.Errorf("classes %d and %d both %s with maxRun 1", i-1, i, classes[i])
		}
	}
}

func TestSolverThreeQuarterEndsOnly(t *testing.T) {
	for seed := uint64(0); seed < 8; seed++ {
		s := testSolver(925, 3, DefaultMaxSteps, seed)
		classes, err := s.solveCourse(nil)
		if err != nil {
			t.Fatalf("solveCourse(seed %d) error = %v", seed, err)
		}
		for i, class := range classes[1 : len(classes)-1] {
			if class == wall.ThreeQuarter {
				t.Errorf("seed %d: interior three-quarter at index %d", seed, i+1)
			}
		}
	}
}

func TestSolverBudgetExhausted(t *testing.T) {
	s := testSolver(870, 3, 3, 1)

	_, err := s.solveCourse(nil)
	if !errors.Is(err, errors.ErrCodeInfeasible) {
		t.Errorf("solveCourse() = %v with budget 3, want INFEASIBLE", err)
	}
}

func TestSolverInfeasibleJoints(t *testing.T) {
	spec := wall.DefaultSpec()
	s := testSolver(265, 3, DefaultMaxSteps, 1)

	// Every admissible first-brick end sits 45 mm past a multiple of the
	// quarter grid; blocking them all leaves no opening move.
	var prev []int
	for x := spec.Quarter(); x < 265; x += spec.Quarter() + spec.HeadJoint {
		prev = append(prev, x)
	}
	_, err := s.solveCourse(prev)
	if !errors.Is(err, errors.ErrCodeInfeasible) {
		t.Errorf("solveCourse() = %v with all joints blocked, want INFEASIBLE", err)
	}
}
