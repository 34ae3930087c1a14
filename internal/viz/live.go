// Package viz renders the zoom in a terminal: the iteration field is
// downsampled onto a glyph ramp, with a stats panel and a score history
// graph alongside.
package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/config"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/director"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/focus"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
)

const (
	canvasCols = 96
	canvasRows = 28

	historyCapacity = 120
)

// Glyphs from sparse to dense; pixels inside the set render as space.
const ramp = " .:-=+*#%@"

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).Width(36)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0, 0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the zoom director from bubbletea ticks.
type Model struct {
	director *director.Director
	interval time.Duration

	frame        string
	lastFocus    focus.Result
	scoreHistory []float64
	paused       bool
}

func NewModel(cfg *config.Config) Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d := director.New(cfg.DirectorParams(), mandel.Generate, rng)
	d.WarmStart()

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return Model{
		director:     d,
		interval:     time.Second / time.Duration(fps),
		scoreHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
		}
		return m, nil

	case TickMsg:
		if !m.paused {
			field := m.director.Advance(float32(m.interval.Seconds()))
			m.frame = renderField(field)
			m.lastFocus = m.director.LastFocus()

			m.scoreHistory = append(m.scoreHistory, float64(m.lastFocus.Score))
			if len(m.scoreHistory) > historyCapacity {
				m.scoreHistory = m.scoreHistory[1:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	v := m.director.Viewport()

	stats := []string{
		headerStyle.Render("mandelbrot explorer"),
		"",
		statsLine("state", m.director.State().Tag()),
		statsLine("radius", fmt.Sprintf("%.2e", v.Radius)),
		statsLine("center", fmt.Sprintf("%.6f", v.Center.Re)),
		statsLine("", fmt.Sprintf("%+.6fi", v.Center.Im)),
		statsLine("score", fmt.Sprintf("%.1f", m.lastFocus.Score)),
	}
	if m.paused {
		stats = append(stats, "", headerStyle.Render("paused"))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.frame),
		statsStyle.Render(strings.Join(stats, "\n")),
	)

	graph := ""
	if len(m.scoreHistory) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.scoreHistory,
			asciigraph.Height(6),
			asciigraph.Width(canvasCols),
			asciigraph.Caption("focus score"),
		))
	}

	help := helpStyle.Render("space: pause   q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, main, graph, help)
}

func statsLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// renderField downsamples the field onto the glyph ramp with nearest
// sampling. Pixels at MaxIter are inside the set and stay blank.
func renderField(field mandel.Field) string {
	var sb strings.Builder
	sb.Grow((canvasCols + 1) * canvasRows)

	for row := 0; row < canvasRows; row++ {
		y := row * mandel.Height / canvasRows
		for col := 0; col < canvasCols; col++ {
			x := col * mandel.Width / canvasCols
			iter := field[y*mandel.Width+x]
			if iter >= mandel.MaxIter {
				sb.WriteByte(' ')
				continue
			}
			glyph := int(iter) * (len(ramp) - 1) / int(mandel.MaxIter)
			sb.WriteByte(ramp[glyph+1])
		}
		if row < canvasRows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RunLive starts the terminal explorer and blocks until it quits.
func RunLive(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
