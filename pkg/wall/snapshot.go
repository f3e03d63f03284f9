package wall

// Snapshot is a JSON-ready read-only view of the wall, queryable at any
// point during a build. The presentation layer (CLI, TUI, HTTP API) consumes
// snapshots instead of reaching into the arena.
type Snapshot struct {
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Bricks  int              `json:"bricks"`
	Placed  int              `json:"placed"`
	Courses []CourseSnapshot `json:"courses"`
}

// CourseSnapshot describes one course in a Snapshot.
type CourseSnapshot struct {
	Ordinate int             `json:"ordinate"`
	Bricks   []BrickSnapshot `json:"bricks"`
}

// BrickSnapshot describes one brick in a Snapshot. Supports lists the
// position labels (e.g. "R1B2") of the bricks beneath it.
type BrickSnapshot struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Class    string   `json:"class"`
	Length   int      `json:"length"`
	XStart   int      `json:"x_start"`
	XEnd     int      `json:"x_end"`
	Placed   bool     `json:"placed"`
	Supports []string `json:"supports,omitempty"`
}

// Snapshot captures the current wall state, including placement progress.
func (w *Wall) Snapshot() Snapshot {
	snap := Snapshot{
		Width:   w.Width,
		Height:  w.Height,
		Bricks:  w.BrickCount(),
		Placed:  w.PlacedCount(),
		Courses: make([]CourseSnapshot, 0, len(w.Courses)),
	}
	for _, c := range w.Courses {
		cs := CourseSnapshot{Ordinate: c.Ordinate, Bricks: make([]BrickSnapshot, 0, len(c.Bricks))}
		for _, b := range c.Bricks {
			bs := BrickSnapshot{
				ID:     b.ID.String(),
				Label:  b.Label(),
				Class:  b.Class.String(),
				Length: b.Length,
				XStart: b.XStart,
				XEnd:   b.XEnd,
				Placed: b.Placed(),
			}
			for _, s := range w.Supports(b.Ref()) {
				if sb, ok := w.Brick(s); ok {
					bs.Supports = append(bs.Supports, sb.Label())
				}
			}
			cs.Bricks = append(cs.Bricks, bs)
		}
		snap.Courses = append(snap.Courses, cs)
	}
	return snap
}
