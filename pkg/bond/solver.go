package bond

import (
	"math/rand/v2"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// solver chooses brick size classes for Wild-bond courses by depth-first
// backtracking, left to right. The search state is an explicit stack of
// frames rather than recursion, so the step budget can cut the search off
// cleanly and partial states stay inspectable in tests.
//
// Hard constraints per course:
//   - no interior vertical joint may align with a joint of the previous course
//   - no size class repeats more than maxRun consecutive times
//   - three-quarter bricks appear only as course openers or closers
//   - the course tiles the width exactly; the first and last brick are at
//     least a half brick (the domain contains nothing smaller)
//
// When several classes remain valid at a position, their try-order is
// shuffled with the caller's seeded source. Shuffling only affects which
// solution is found first, never correctness: backtracking still explores
// the full domain.
type solver struct {
	width   int
	spec    wall.BrickSpec
	maxRun  int
	budget  int
	steps   int
	rng     *rand.Rand
	gridMod int // quarter brick + head joint; every cut sits on this grid
}

func newSolver(width int, spec wall.BrickSpec, maxRun, budget int, rng *rand.Rand) *solver {
	return &solver{
		width:   width,
		spec:    spec,
		maxRun:  maxRun,
		budget:  budget,
		rng:     rng,
		gridMod: spec.Quarter() + spec.HeadJoint,
	}
}

// frame is one position of the search stack: the brick start offset, the
// shuffled candidate classes for that position, and how many have been
// tried so far. The chosen class of a settled frame is domain[tried-1].
type frame struct {
	xStart int
	domain []wall.SizeClass
	tried  int
}

// solveCourse returns a class sequence that exactly tiles the width without
// aligning any interior joint with prevJoints. It fails with INFEASIBLE
// when the root domain is exhausted or the step budget runs out.
func (s *solver) solveCourse(prevJoints []int) ([]wall.SizeClass, error) {
	prev := make(map[int]bool, len(prevJoints))
	for _, x := range prevJoints {
		prev[x] = true
	}

	stack := []frame{{xStart: 0, domain: s.domain(0, nil, prev)}}
	for len(stack) > 0 {
		s.steps++
		if s.steps > s.budget {
			return nil, errors.New(errors.ErrCodeInfeasible,
				"wild solver exceeded %d steps at width %d mm", s.budget, s.width)
		}

		f := &stack[len(stack)-1]
		if f.tried >= len(f.domain) {
			stack = stack[:len(stack)-1] // domain exhausted, backtrack
			continue
		}
		class := f.domain[f.tried]
		f.tried++

		xEnd := f.xStart + s.spec.Len(class)
		if xEnd == s.width {
			return chosenClasses(stack), nil
		}
		next := xEnd + s.spec.HeadJoint
		stack = append(stack, frame{xStart: next, domain: s.domain(next, stack, prev)})
	}
	return nil, errors.New(errors.ErrCodeInfeasible,
		"no wild layout for width %d mm avoids the joints of the course below", s.width)
}

// domain returns the admissible classes for a brick starting at x, in
// shuffled try-order. settled holds the frames already decided (used for
// the run constraint).
func (s *solver) domain(x int, settled []frame, prev map[int]bool) []wall.SizeClass {
	candidates := []wall.SizeClass{wall.Full, wall.ThreeQuarter, wall.Half}
	var out []wall.SizeClass
	for _, class := range candidates {
		if s.admissible(x, class, settled, prev) {
			out = append(out, class)
		}
	}
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *solver) admissible(x int, class wall.SizeClass, settled []frame, prev map[int]bool) bool {
	xEnd := x + s.spec.Len(class)
	closes := xEnd == s.width

	// Three-quarter bricks keep to the course ends.
	if class == wall.ThreeQuarter && x != 0 && !closes {
		return false
	}
	if !closes {
		if xEnd > s.width {
			return false
		}
		// The joint after this brick must not align with the course below.
		if prev[xEnd] {
			return false
		}
		// Lookahead: the remainder must sit on the quarter grid and leave
		// room for at least one more brick.
		rest := s.width - xEnd
		if rest%s.gridMod != 0 || rest < s.spec.HeadJoint+s.spec.Half() {
			return false
		}
	}
	// Run constraint: placing this brick must not extend a same-class run
	// past maxRun.
	if trailingRun(settled, class)+1 > s.maxRun {
		return false
	}
	return true
}

// trailingRun counts how many settled frames at the top of the stack chose
// the given class consecutively.
func trailingRun(settled []frame, class wall.SizeClass) int {
	run := 0
	for i := len(settled) - 1; i >= 0; i-- {
		f := settled[i]
		if f.tried == 0 || f.domain[f.tried-1] != class {
			break
		}
		run++
	}
	return run
}

func chosenClasses(stack []frame) []wall.SizeClass {
	classes := make([]wall.SizeClass, len(stack))
	for i, f := range stack {
		classes[i] = f.domain[f.tried-1]
	}
	return classes
}
