package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/bricklayer/pkg/build"
	"github.com/matzehuels/bricklayer/pkg/errors"
)

// autoplayInterval is the delay between steps while autoplay is on.
const autoplayInterval = 80 * time.Millisecond

// tickMsg drives autoplay.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// buildModel is the bubbletea model for stepping through a build.
type buildModel struct {
	builder *build.Builder
	last    *build.Event
	auto    bool
	err     error
}

func newBuildModel(b *build.Builder) buildModel {
	return buildModel{builder: b}
}

func (m buildModel) Init() tea.Cmd {
	return nil
}

func (m buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter":
			m = m.step()
		case "a":
			m.auto = !m.auto
			if m.auto && !m.finished() {
				return m, tick()
			}
		}
	case tickMsg:
		if !m.auto {
			return m, nil
		}
		m = m.step()
		if !m.finished() {
			return m, tick()
		}
		m.auto = false
	}
	return m, nil
}

func (m buildModel) step() buildModel {
	if m.finished() {
		return m
	}
	ev, err := m.builder.Step()
	if err != nil {
		m.err = err
		return m
	}
	m.last = &ev
	return m
}

func (m buildModel) finished() bool {
	return m.err != nil || m.builder.State() == build.Completed
}

func (m buildModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Bricklayer"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("space step  a autoplay  q quit"))
	b.WriteString("\n\n")

	env := m.builder.Envelope()
	b.WriteString(renderWall(m.builder.Wall(), &env))
	b.WriteString("\n")

	stats := m.builder.Stats()
	b.WriteString(StyleDim.Render(fmt.Sprintf("  placed %d/%d · repositions %d · envelope %s",
		stats.BricksPlaced, m.builder.Wall().BrickCount(), stats.Repositions, env)))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	return b.String()
}

func (m buildModel) statusLine() string {
	switch {
	case m.err != nil:
		return "  " + styleIconError.Render(iconError) + " " + StyleWarning.Render(errors.UserMessage(m.err))
	case m.builder.State() == build.Completed:
		return "  " + styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render("wall complete")
	case m.last == nil:
		return "  " + StyleDim.Render("press space to place the first brick")
	case m.last.Kind == build.EventRepositioned:
		return "  " + StyleHighlight.Render("moved envelope "+iconArrow+" "+m.last.Envelope.String())
	default:
		return "  " + StyleValue.Render("placed "+m.last.Brick.String())
	}
}
