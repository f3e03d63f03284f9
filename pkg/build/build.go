// Package build schedules the placement of a generated wall's bricks by a
// robot whose reach is limited to a rectangular envelope.
//
// The scheduler is step-driven and cooperative: an external driver (CLI
// loop, TUI, HTTP handler) calls [Builder.Step] at its own cadence, and each
// call advances the build by exactly one brick placement, one envelope
// reposition, or a completion signal. Nothing blocks and nothing runs in
// the background; stopping early leaves the wall in a valid, inspectable
// partial state.
//
// A brick is eligible when all of its supports are placed and it lies fully
// inside the envelope. Among eligible bricks the scheduler is deterministic:
// lowest course first, then leftmost. The emitted placement order is
// therefore always a valid topological order of the support graph, and
// identical runs over identical walls yield identical sequences.
package build

import (
	"context"

	"github.com/matzehuels/bricklayer/pkg/errors"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// State is the lifecycle of a build.
type State int

const (
	// NotStarted means Step has not been called yet.
	NotStarted State = iota
	// InProgress means at least one step ran and bricks remain.
	InProgress
	// Completed means every brick is placed.
	Completed
	// Failed means the build deadlocked; see the error returned by Step.
	Failed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventKind discriminates the outcome of a single step.
type EventKind int

const (
	// EventPlaced means one brick was laid this step.
	EventPlaced EventKind = iota
	// EventRepositioned means the envelope moved; no brick was laid.
	EventRepositioned
	// EventCompleted means every brick was already placed.
	EventCompleted
)

// Event is the result of one step.
type Event struct {
	Kind     EventKind
	Brick    wall.Ref // the placed brick, valid when Kind == EventPlaced
	Envelope Envelope // envelope after the step
	Stats    Stats    // statistics after the step
}

// Stats are the counters accumulated monotonically over a build. They are
// reset per Builder, never shared.
type Stats struct {
	BricksPlaced     int `json:"bricks_placed"`
	CoursesCompleted int `json:"courses_completed"`
	Repositions      int `json:"repositions"`
	IdleSteps        int `json:"idle_steps"`
	TotalBrickLength int `json:"total_brick_length"` // mm of laid bricks
}

// Builder drives a single build over a generated wall. It owns the envelope
// and statistics exclusively, and mutates nothing on the wall except the
// state of bricks it places itself.
type Builder struct {
	w     *wall.Wall
	env   Envelope
	state State
	stats Stats
	err   error
}

// New creates a builder for the wall with an envelope of the given size in
// mm, initially anchored at the bottom-left corner. The envelope must be
// able to hold at least one full brick and one course.
func New(w *wall.Wall, envWidth, envHeight int) (*Builder, error) {
	if envWidth < w.Spec.Length || envHeight < w.Spec.Height {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"envelope %dx%d mm cannot hold a single %dx%d mm brick",
			envWidth, envHeight, w.Spec.Length, w.Spec.Height)
	}
	return &Builder{
		w:   w,
		env: Envelope{X: 0, Y: 0, Width: envWidth, Height: envHeight},
	}, nil
}

// Wall returns the wall under construction.
func (b *Builder) Wall() *wall.Wall { return b.w }

// State returns the build lifecycle state.
func (b *Builder) State() State { return b.state }

// Stats returns the counters accumulated so far.
func (b *Builder) Stats() Stats { return b.stats }

// Envelope returns the robot's current reachable region.
func (b *Builder) Envelope() Envelope { return b.env }

// Err returns the terminal error after a failed build, nil otherwise.
func (b *Builder) Err() error { return b.err }

// Step advances the build by exactly one action and returns what happened.
// Once the build has failed, Step keeps returning the same terminal error;
// once completed, it keeps returning EventCompleted.
func (b *Builder) Step() (Event, error) {
	switch b.state {
	case Failed:
		return Event{Envelope: b.env, Stats: b.stats}, b.err
	case Completed:
		return b.event(EventCompleted, wall.Ref{}), nil
	}
	b.state = InProgress

	if next, ok := b.nextEligible(); ok {
		brick, _ := b.w.Brick(next)
		brick.Place()
		b.stats.BricksPlaced++
		b.stats.TotalBrickLength += brick.Length
		if courseComplete(b.w.Courses[next.Course]) {
			b.stats.CoursesCompleted++
		}
		if b.w.Complete() {
			b.state = Completed
		}
		return b.event(EventPlaced, next), nil
	}

	if b.w.Complete() {
		b.state = Completed
		return b.event(EventCompleted, wall.Ref{}), nil
	}

	// No eligible brick in the current envelope. If unplaced bricks sit
	// inside the envelope anyway, their supports are elsewhere: count the
	// idle step before sliding.
	if b.unplacedWithinEnvelope() {
		b.stats.IdleSteps++
	}

	target, ok := b.repositionTarget()
	if !ok {
		b.err = errors.New(errors.ErrCodeStuckEnvelope,
			"no unplaced brick has all supports placed: support graph malformed")
		b.state = Failed
		return Event{Envelope: b.env, Stats: b.stats}, b.err
	}
	b.env = b.env.moveTo(target, b.w)
	b.stats.Repositions++

	if _, ok := b.nextEligible(); !ok {
		b.err = errors.New(errors.ErrCodeStuckEnvelope,
			"repositioning to %s unlocked no brick: envelope %dx%d mm too small",
			target, b.env.Width, b.env.Height)
		b.state = Failed
		return Event{Envelope: b.env, Stats: b.stats}, b.err
	}
	return b.event(EventRepositioned, wall.Ref{}), nil
}

// Run steps the build to completion, honoring context cancellation between
// steps. Partial progress survives cancellation.
func (b *Builder) Run(ctx context.Context) (Stats, error) {
	for {
		if err := ctx.Err(); err != nil {
			return b.stats, err
		}
		ev, err := b.Step()
		if err != nil {
			return b.stats, err
		}
		if ev.Kind == EventCompleted || b.state == Completed {
			return b.stats, nil
		}
	}
}

func (b *Builder) event(kind EventKind, ref wall.Ref) Event {
	return Event{Kind: kind, Brick: ref, Envelope: b.env, Stats: b.stats}
}

// nextEligible returns the first brick, scanning courses bottom-up and left
// to right, that is unplaced, fully supported, and inside the envelope.
// The scan order is the deterministic tie-break: lowest course, then
// leftmost.
func (b *Builder) nextEligible() (wall.Ref, bool) {
	for _, c := range b.w.Courses {
		for _, brick := range c.Bricks {
			if brick.Placed() {
				continue
			}
			if !b.w.SupportsPlaced(brick.Ref()) {
				continue
			}
			if !b.env.contains(brick, b.w) {
				continue
			}
			return brick.Ref(), true
		}
	}
	return wall.Ref{}, false
}

// unplacedWithinEnvelope reports whether any unplaced brick lies inside the
// current envelope regardless of support state.
func (b *Builder) unplacedWithinEnvelope() bool {
	for _, c := range b.w.Courses {
		for _, brick := range c.Bricks {
			if !brick.Placed() && b.env.contains(brick, b.w) {
				return true
			}
		}
	}
	return false
}

// courseComplete reports whether every brick of the course is placed.
func courseComplete(c *wall.Course) bool {
	for _, brick := range c.Bricks {
		if !brick.Placed() {
			return false
		}
	}
	return true
}

// repositionTarget returns the lowest-course, leftmost unplaced brick whose
// supports are all placed - the anchor of the next reachable region.
func (b *Builder) repositionTarget() (wall.Ref, bool) {
	for _, c := range b.w.Courses {
		for _, brick := range c.Bricks {
			if !brick.Placed() && b.w.SupportsPlaced(brick.Ref()) {
				return brick.Ref(), true
			}
		}
	}
	return wall.Ref{}, false
}
