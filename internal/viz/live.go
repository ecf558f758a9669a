package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cubesim/internal/render"
)

const historyCapacity = 120

type TickMsg time.Time

// Model renders the cube once per tick and shows it next to a stats panel.
type Model struct {
	renderer  *render.Renderer
	interval  time.Duration
	maxFrames int
	frames    int
	rendered  bool
	stats     render.FrameStats
	visible   []float64
	theme     Theme
	styles    styles
}

// NewModel builds a live view ticking at fps. maxFrames of 0 runs until quit.
func NewModel(r *render.Renderer, fps, maxFrames int, theme Theme) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		renderer:  r,
		interval:  time.Second / time.Duration(fps),
		maxFrames: maxFrames,
		visible:   make([]float64, 0, historyCapacity),
		theme:     theme,
		styles:    newStyles(theme),
	}
}

func (m Model) Stats() render.FrameStats { return m.stats }
func (m Model) Frames() int              { return m.frames }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update advances past the frame already on screen, then renders the next one.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case TickMsg:
		if m.maxFrames > 0 && m.frames >= m.maxFrames {
			return m, tea.Quit
		}
		if m.rendered {
			m.renderer.Advance()
		}
		m.stats = m.renderer.RenderFrame()
		m.rendered = true
		m.frames++

		m.visible = append(m.visible, float64(m.stats.Visible))
		if len(m.visible) > historyCapacity {
			m.visible = m.visible[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the TUI interface.
func (m Model) View() string {
	fb := m.renderer.Frame()
	canvasView := m.styles.cube.Render(strings.TrimSuffix(fb.String(), "\n"))

	var s strings.Builder
	s.WriteString(m.styles.header.Render("CUBESIM") + "\n")

	a, b, c := m.renderer.Rotation().Angles()
	m.row(&s, "Frame", fmt.Sprintf("%d", m.stats.Frame))
	m.row(&s, "Angles", fmt.Sprintf("%.3f %.3f %.3f", a, b, c))
	m.row(&s, "Points", fmt.Sprintf("%d", m.stats.Emitted))
	m.row(&s, "Visible", fmt.Sprintf("%d", m.stats.Visible))
	m.row(&s, "Occluded", fmt.Sprintf("%d", m.stats.Occluded))
	m.row(&s, "Off-screen", fmt.Sprintf("%d", m.stats.OffScreen))

	s.WriteString("\nFACES\n")
	for _, f := range render.Faces {
		m.row(&s, fmt.Sprintf("%c %s", f.Glyph(), f), fmt.Sprintf("%d", m.stats.Faces[f]))
	}

	if len(m.visible) > 1 {
		chart := asciigraph.Plot(m.visible, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("visible cells"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.help.Render("Q:Quit  theme: " + m.theme.Name))
	statsView := m.styles.panel.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) row(s *strings.Builder, label, value string) {
	s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
}
