package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgraph/pkg/config"
	"github.com/matzehuels/netgraph/pkg/geom"
	"github.com/matzehuels/netgraph/pkg/observability"
)

func newTestDemo(t *testing.T) DemoModel {
	t.Helper()
	m := NewDemoModel(config.Default(), log.New(io.Discard))
	observability.SetGraphHooks(m.stats)
	t.Cleanup(observability.Reset)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m DemoModel, msgs ...tea.Msg) DemoModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(DemoModel)
	}
	return m
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func rightClick(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, tea.MouseButtonRight)
}

func leftClick(x, y int) []tea.Msg {
	return []tea.Msg{
		mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft),
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNodeLabel(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		if got := nodeLabel(tt.i); got != tt.want {
			t.Errorf("nodeLabel(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestDemoRightClickAddsNode(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, rightClick(10, 5), rightClick(40, 5))

	nodes := m.Manager.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(nodes))
	}
	if nodes[0].Label() != "A" || nodes[1].Label() != "B" {
		t.Errorf("labels = %s, %s, want A, B", nodes[0].Label(), nodes[1].Label())
	}
	if got, want := nodes[0].Center(), (geom.Point{X: 105, Y: 110}); got != want {
		t.Errorf("A center = %v, want %v", got, want)
	}
}

func TestDemoClicksConnectNodes(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, rightClick(10, 5), rightClick(40, 5))

	m = send(t, m, leftClick(10, 5)...)
	if got := m.Manager.Canvas().ActiveNode(); got == nil || got.Label() != "A" {
		t.Fatalf("ActiveNode = %v, want A", got)
	}
	m = send(t, m, mouse(25, 8, tea.MouseActionMotion, tea.MouseButtonNone))
	m = send(t, m, leftClick(40, 5)...)

	if got := len(m.Manager.Edges()); got != 1 {
		t.Fatalf("edges = %d, want 1", got)
	}
	if m.Manager.Canvas().Active() {
		t.Error("edge gesture still active")
	}
	if m.Manager.Registry().Len() != 1 || m.stats.last != "new component0" {
		t.Errorf("components = %d, last event %q", m.Manager.Registry().Len(), m.stats.last)
	}
}

func TestDemoMergeCounted(t *testing.T) {
	m := newTestDemo(t)
	for _, x := range []int{10, 30, 50, 70} {
		m = send(t, m, rightClick(x, 5))
	}
	m = send(t, m, leftClick(10, 5)...)
	m = send(t, m, leftClick(30, 5)...)
	m = send(t, m, leftClick(50, 5)...)
	m = send(t, m, leftClick(70, 5)...)
	m = send(t, m, leftClick(30, 5)...)
	m = send(t, m, leftClick(50, 5)...)

	if got := m.Manager.Registry().Len(); got != 1 {
		t.Errorf("components = %d, want 1", got)
	}
	if m.stats.merges != 1 {
		t.Errorf("merges = %d, want 1", m.stats.merges)
	}
}

func TestDemoDragMovesNode(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, rightClick(10, 5))

	m = send(t, m,
		mouse(10, 5, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(15, 5, tea.MouseActionMotion, tea.MouseButtonLeft),
		mouse(15, 5, tea.MouseActionRelease, tea.MouseButtonLeft),
	)

	if got, want := m.Manager.Nodes()[0].Center(), (geom.Point{X: 155, Y: 110}); got != want {
		t.Errorf("center after drag = %v, want %v", got, want)
	}
	if m.Manager.Canvas().Active() {
		t.Error("drag left an edge gesture active")
	}
}

func TestDemoWheelZooms(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, rightClick(10, 5))

	m = send(t, m, mouse(10, 5, tea.MouseActionPress, tea.MouseButtonWheelUp))
	if in, out := m.Manager.ZoomCounts(); in != 1 || out != -1 {
		t.Errorf("zoom counts = %d/%d, want 1/-1", in, out)
	}

	m = send(t, m, key("z"))
	if m.Manager.Config().EnableZoom.Get() {
		t.Fatal("z did not disable zoom")
	}
	m = send(t, m, mouse(10, 5, tea.MouseActionPress, tea.MouseButtonWheelDown))
	if in, out := m.Manager.ZoomCounts(); in != 1 || out != -1 {
		t.Errorf("zoom counts = %d/%d after disabling, want 1/-1", in, out)
	}
}

func TestDemoKeys(t *testing.T) {
	m := newTestDemo(t)
	m = send(t, m, rightClick(10, 5))
	m = send(t, m, leftClick(10, 5)...)

	m = send(t, m, key("esc"))
	if m.Manager.Canvas().Active() {
		t.Error("esc did not cancel the edge gesture")
	}

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}
}

func TestDemoView(t *testing.T) {
	m := newTestDemo(t)
	if got := (DemoModel{}).View(); got != "" {
		t.Errorf("view before sizing = %q, want empty", got)
	}

	m = send(t, m, rightClick(10, 5), rightClick(40, 5))
	m = send(t, m, leftClick(10, 5)...)

	view := m.View()
	if lines := strings.Split(view, "\n"); len(lines) != 24 {
		t.Errorf("view lines = %d, want 24", len(lines))
	}
	for _, want := range []string{"A", "B", "nodes 2", "edges 0", "connecting A", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q", want)
		}
	}
}
