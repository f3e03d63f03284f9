// Package pkg provides the core libraries for the Bricklayer simulation.
//
// # Overview
//
// Bricklayer generates masonry bond layouts and simulates a bricklaying
// robot assembling them within a limited reach envelope. The pkg directory
// is organized into:
//
//  1. [wall] - Domain model (bricks, courses, support graph)
//  2. [bond] - Bond generators and the Wild constraint solver
//  3. [build] - Step-driven build scheduler with the robot envelope
//  4. [config] / [runstore] / [export] - Configuration, run persistence, diagrams
//
// # Architecture
//
// The typical data flow through Bricklayer:
//
//	bricklayer.toml / flags
//	         ↓
//	    [bond] package (lay out courses, derive + validate supports)
//	         ↓
//	    [wall] package (arena of bricks, support graph, snapshots)
//	         ↓
//	    [build] package (step-by-step placement within the envelope)
//	         ↓
//	    CLI preview / TUI / HTTP API / DOT-SVG export / run records
//
// # Quick Start
//
// Generate a wall and run the build:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/bricklayer/pkg/bond"
//	    "github.com/matzehuels/bricklayer/pkg/build"
//	)
//
//	// 1. Lay out a 870 mm wide, four course stretcher wall
//	w, err := bond.Generate(bond.Stretcher, 870, 4, bond.Params{})
//	if err != nil {
//	    return err
//	}
//
//	// 2. Simulate the robot with an 800x1300 mm reach
//	b, err := build.New(w, 800, 1300)
//	if err != nil {
//	    return err
//	}
//	stats, err := b.Run(context.Background())
//
// Step the build manually instead of running it to completion:
//
//	for b.State() != build.Completed {
//	    ev, err := b.Step()
//	    if err != nil {
//	        return err // STUCK_ENVELOPE: the reach cannot progress
//	    }
//	    _ = ev // Placed, Repositioned or Completed
//	}
//
// # Main Packages
//
// [wall] - Bricks, courses and the wall arena. The support graph is derived
// from geometry (minimum overlap between adjacent courses) and validated
// against per-variant support bounds.
//
// [bond] - The closed variant set: Stretcher, Flemish, EnglishCross and
// Wild. Wild delegates per-course brick choice to a seeded backtracking
// solver; the same seed always reproduces the same wall.
//
// [build] - The cooperative scheduler. Each Step places one brick,
// repositions the envelope, or reports completion; placement order is a
// deterministic topological order of the support graph.
//
// [config] - TOML configuration with working defaults for wall, brick,
// bond and envelope dimensions.
//
// [export] - Support graph as Graphviz DOT and SVG.
//
// [runstore] - Build run records with memory, file and Redis backends.
//
// [errors] - Structured error codes shared by CLI and HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/bond/...      # Specific package
//
// [wall]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/wall
// [bond]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/bond
// [build]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/build
// [config]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/config
// [export]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/export
// [runstore]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/runstore
// [errors]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/errors
package pkg
