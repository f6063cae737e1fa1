package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgraph/pkg/config"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/netgraph"
	"github.com/matzehuels/netgraph/pkg/observability"
	"github.com/matzehuels/netgraph/pkg/surface"
)

// Status bar styles
var (
	statusBarStyle  = lipgloss.NewStyle().Background(colorShade).Foreground(colorGray)
	statusKeyStyle  = lipgloss.NewStyle().Background(colorShade).Foreground(colorCyan)
	statusHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

const demoBackground = "white"

// =============================================================================
// demoStats - Graph event counters
// =============================================================================

// demoStats counts graph events for the status bar. It is registered as the
// process-wide graph hooks while the demo runs.
type demoStats struct {
	observability.NoopGraphHooks

	logger *log.Logger
	merges int
	last   string
}

func (s *demoStats) OnComponentCreated(id string) {
	s.last = "new " + id
	s.logger.Debug("component created", "id", id)
}

func (s *demoStats) OnComponentMerged(survivor, absorbed string, joined int) {
	s.merges++
	s.last = fmt.Sprintf("%s absorbed %s", survivor, absorbed)
	s.logger.Debug("components merged", "survivor", survivor, "absorbed", absorbed, "joined", joined)
}

func (s *demoStats) OnZoom(in bool, inCount, outCount int) {
	s.last = fmt.Sprintf("zoom %+d/%+d", inCount, outCount)
}

// =============================================================================
// DemoModel - Interactive graph editor
// =============================================================================

// DemoModel is the bubbletea model that hosts a graph on an in-memory
// surface. Terminal mouse events become surface events; every frame is a
// rasterization of the surface.
type DemoModel struct {
	Surface *surface.Memory
	Manager *netgraph.Manager
	Width   int
	Height  int

	stats *demoStats
}

// NewDemoModel creates a demo over an empty surface.
func NewDemoModel(cfg *config.Config, logger *log.Logger) DemoModel {
	s := surface.NewMemory(demoBackground)
	return DemoModel{
		Surface: s,
		Manager: netgraph.New(s, cfg, netgraph.WithLogger(logger)),
		stats:   &demoStats{logger: logger},
	}
}

func (m DemoModel) Init() tea.Cmd {
	return nil
}

func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c := m.Manager.Canvas(); c.Active() {
				c.Abort()
			}
		case "z":
			zoom := m.Manager.Config().EnableZoom
			zoom.Set(!zoom.Get())
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

// mouse forwards a terminal mouse event to the surface at the center of the
// cell under the pointer.
func (m DemoModel) mouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.Surface.Wheel(p.X, p.Y, 1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.Surface.Wheel(p.X, p.Y, -1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.addNode(p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.Surface.Press(p.X, p.Y)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.Surface.Drag(p.X, p.Y)
	case msg.Action == tea.MouseActionRelease:
		m.Surface.Release(p.X, p.Y)
	case msg.Action == tea.MouseActionMotion:
		m.Surface.Motion(p.X, p.Y)
	}
}

func (m DemoModel) addNode(p geom.Point) {
	n := m.Manager.CreateNode(nodeLabel(len(m.Manager.Nodes())), nil)
	n.Render(p)
}

// nodeLabel returns the i-th label of the sequence A, B, ..., Z, AA, AB, ...
func nodeLabel(i int) string {
	var b []byte
	for i++; i > 0; i = (i - 1) / 26 {
		b = append([]byte{byte('A' + (i-1)%26)}, b...)
	}
	return string(b)
}

func (m DemoModel) View() string {
	if m.Width == 0 || m.Height < 3 {
		return ""
	}
	r := newRaster(m.Width, m.Height-2, m.Surface.Background())
	r.draw(m.Surface.Items())

	var b strings.Builder
	b.WriteString(r.String())
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Width(m.Width).Render(m.status()))
	b.WriteString("\n")
	b.WriteString(statusHelpStyle.Render("right-click: node  click: connect  drag: move  wheel: zoom  z: zoom  q: quit"))
	return b.String()
}

// status returns the status bar text.
func (m DemoModel) status() string {
	in, out := m.Manager.ZoomCounts()
	zoom := "off"
	if m.Manager.Config().EnableZoom.Get() {
		zoom = "on"
	}
	parts := []string{
		statusKeyStyle.Render("nodes") + fmt.Sprintf(" %d", len(m.Manager.Nodes())),
		statusKeyStyle.Render("edges") + fmt.Sprintf(" %d", len(m.Manager.Edges())),
		statusKeyStyle.Render("components") + fmt.Sprintf(" %d", m.Manager.Registry().Len()),
		statusKeyStyle.Render("merges") + fmt.Sprintf(" %d", m.stats.merges),
		statusKeyStyle.Render("zoom") + fmt.Sprintf(" %s %d/%d", zoom, in, out),
	}
	if n := m.Manager.Canvas().ActiveNode(); n != nil {
		parts = append(parts, statusKeyStyle.Render("connecting")+" "+n.Label())
	}
	if m.stats.last != "" {
		parts = append(parts, m.stats.last)
	}
	return " " + strings.Join(parts, "  ")
}
