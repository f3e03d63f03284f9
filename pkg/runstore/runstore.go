// Package runstore persists build run records.
//
// A run record captures what was built (variant, dimensions, seed) and how
// the build went (statistics, terminal error code if any). Three backends
// implement the Store interface:
//   - memory: in-process storage for tests and one-shot CLI runs
//   - file: JSON files under ~/.config/bricklayer/runs for the CLI history
//   - redis: Redis-backed storage for serve mode with multiple instances
package runstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/bricklayer/pkg/build"
	"github.com/matzehuels/bricklayer/pkg/errors"
)

// Run is one recorded build.
type Run struct {
	ID        uuid.UUID   `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Variant   string      `json:"variant"`
	Width     int         `json:"width"`  // mm
	Height    int         `json:"height"` // mm
	Courses   int         `json:"courses"`
	Seed      uint64      `json:"seed,omitempty"`
	Stats     build.Stats `json:"stats"`
	ErrorCode string      `json:"error_code,omitempty"` // empty on success
}

// New creates a run record with a fresh ID and the current time.
func New(variant string, width, height, courses int, seed uint64, stats build.Stats, buildErr error) Run {
	r := Run{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Variant:   variant,
		Width:     width,
		Height:    height,
		Courses:   courses,
		Seed:      seed,
		Stats:     stats,
	}
	if buildErr != nil {
		r.ErrorCode = string(errors.GetCode(buildErr))
	}
	return r
}

// Succeeded reports whether the build finished without a terminal error.
func (r Run) Succeeded() bool { return r.ErrorCode == "" }

// Store is the interface for run record backends.
type Store interface {
	// Save persists a run record.
	Save(ctx context.Context, run Run) error

	// Get retrieves a run by ID. Returns a NOT_FOUND error when absent.
	Get(ctx context.Context, id uuid.UUID) (Run, error)

	// List returns all runs, newest first.
	List(ctx context.Context) ([]Run, error)

	// Close releases backend resources.
	Close() error
}

func notFound(id uuid.UUID) error {
	return errors.New(errors.ErrCodeNotFound, "run %s not found", id)
}
