package cli

import (
	"strings"

	"github.com/matzehuels/bricklayer/pkg/build"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// cellMM is the horizontal scale of the terminal preview: one character per
// 20 mm keeps a 2.3 m wall near 115 columns.
const cellMM = 20

// renderWall draws the wall as one text line per course, top course first.
// Placed bricks are filled, unplaced bricks dimmed. When env is non-nil the
// reachable columns are marked below the wall and reachable courses on the
// left edge.
func renderWall(w *wall.Wall, env *build.Envelope) string {
	var b strings.Builder
	for i := len(w.Courses) - 1; i >= 0; i-- {
		c := w.Courses[i]
		b.WriteString(courseMarker(w, c.Ordinate, env))
		for j, brick := range c.Bricks {
			if j > 0 {
				b.WriteString(" ")
			}
			cells := max(1, brick.Length/cellMM)
			if brick.Placed() {
				b.WriteString(stylePlaced.Render(strings.Repeat("█", cells)))
			} else {
				b.WriteString(styleUnplaced.Render(strings.Repeat("░", cells)))
			}
		}
		b.WriteString("\n")
	}
	if env != nil {
		b.WriteString(envelopeMarker(w, *env))
		b.WriteString("\n")
	}
	return b.String()
}

// courseMarker returns the left-edge glyph: a bar when the course lies
// inside the envelope's vertical span.
func courseMarker(w *wall.Wall, ordinate int, env *build.Envelope) string {
	if env == nil {
		return ""
	}
	bottom := w.CourseY(ordinate)
	top := bottom + w.Spec.Height
	if bottom >= env.Y && top <= env.Y+env.Height {
		return styleEnvelope.Render("▌")
	}
	return " "
}

// envelopeMarker underlines the columns the envelope currently covers.
func envelopeMarker(w *wall.Wall, env build.Envelope) string {
	lead := env.X / cellMM
	span := max(1, env.Width/cellMM)
	if lead+span > w.Width/cellMM {
		span = max(1, w.Width/cellMM-lead)
	}
	return " " + strings.Repeat(" ", lead) + styleEnvelope.Render(strings.Repeat("▔", span))
}
