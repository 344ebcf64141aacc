package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/core/layout"
	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/render"
	"github.com/matzehuels/markup/pkg/core/styled"
	"github.com/matzehuels/markup/pkg/errors"
	"github.com/matzehuels/markup/pkg/pipeline"
)

// Pager styles
var (
	pagerHeaderStyle = lipgloss.NewStyle().Foreground(colorGray)
	pagerDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	pagerErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewView selects what the pager shows.
type previewView int

const (
	viewRendered previewView = iota
	viewSource
	viewTree
	numViews
)

func (v previewView) String() string {
	switch v {
	case viewSource:
		return "source"
	case viewTree:
		return "tree"
	}
	return "rendered"
}

// =============================================================================
// PreviewModel - Interactive document pager
// =============================================================================

// PreviewModel is the bubbletea model for paging through a document.
type PreviewModel struct {
	Title   string
	Players []layout.Player
	Mode    previewView
	Focus   int // Focused player, or -1
	Offset  int
	Height  int

	load  func() (string, error)
	nodes []markup.Node
	err   error
	lines []string
}

// NewPreviewModel creates a pager for the document returned by load. load
// is called again when the user reloads.
func NewPreviewModel(title string, players []layout.Player, load func() (string, error)) PreviewModel {
	m := PreviewModel{
		Title:   title,
		Players: players,
		Focus:   -1,
		Height:  20,
		load:    load,
	}
	m.reload()
	return m
}

func (m *PreviewModel) reload() {
	m.nodes, m.err = nil, nil
	src, err := m.load()
	if err == nil {
		m.nodes, err = pipeline.Parse(context.Background(), src)
	}
	m.err = err
	m.rebuild()
}

func (m *PreviewModel) rebuild() {
	if m.err != nil {
		m.lines = []string{pagerErrorStyle.Render(errors.UserMessage(m.err))}
		m.clamp()
		return
	}
	switch m.Mode {
	case viewSource:
		m.lines = strings.Split(markup.Format(m.nodes), "\n")
	case viewTree:
		m.lines = strings.Split(strings.TrimRight(markup.ToDOT(m.nodes), "\n"), "\n")
	default:
		resolved := layout.Resolve(m.nodes, m.roster())
		lines := styled.ToLines(resolved)
		m.lines = make([]string, len(lines))
		for i, line := range lines {
			m.lines[i] = render.ANSI(line)
		}
	}
	m.clamp()
}

// roster returns the players with every player except the focused one
// drawn in grey. It covers the highest referenced index, which the parser
// bounds by markup.MaxArg.
func (m *PreviewModel) roster() []layout.Player {
	if m.Focus < 0 {
		return m.Players
	}
	ids := m.focusable()
	r := layout.Roster(m.Players)
	out := make([]layout.Player, max(ids[len(ids)-1], m.Focus)+1)
	for i := range out {
		out[i] = layout.Player{Name: r.Name(i), Color: color.Grey}
		if i == m.Focus {
			out[i].Color = r.Color(i)
		}
	}
	return out
}

// focusable returns the player indices the focus cycles through in order:
// every roster entry and every player the document references.
func (m *PreviewModel) focusable() []int {
	seen := make(map[int]bool)
	for i := range m.Players {
		seen[i] = true
	}
	referencedPlayers(m.nodes, seen)
	ids := slices.Sorted(maps.Keys(seen))
	if len(ids) == 0 {
		return []int{0}
	}
	return ids
}

// nextFocus returns the focusable player after the current focus, or -1
// after the last one.
func (m *PreviewModel) nextFocus() int {
	for _, id := range m.focusable() {
		if id > m.Focus {
			return id
		}
	}
	return -1
}

func referencedPlayers(nodes []markup.Node, seen map[int]bool) {
	for _, n := range nodes {
		switch n := n.(type) {
		case markup.Player:
			seen[int(n)] = true
		case markup.Bold:
			referencedPlayers(n.Children, seen)
		case markup.Fg:
			if n.Color.Kind == markup.ColPlayer {
				seen[n.Color.Player] = true
			}
			referencedPlayers(n.Children, seen)
		case markup.Bg:
			if n.Color.Kind == markup.ColPlayer {
				seen[n.Color.Player] = true
			}
			referencedPlayers(n.Children, seen)
		case markup.Group:
			referencedPlayers(n.Children, seen)
		case markup.Align:
			referencedPlayers(n.Children, seen)
		case markup.Indent:
			referencedPlayers(n.Children, seen)
		case markup.Table:
			for _, row := range n.Rows {
				for _, cell := range row {
					referencedPlayers(cell.Children, seen)
				}
			}
		case markup.Canvas:
			for _, l := range n.Layers {
				referencedPlayers(l.Children, seen)
			}
		}
	}
}

func (m *PreviewModel) clamp() {
	m.Offset = min(m.Offset, max(len(m.lines)-m.Height, 0))
	m.Offset = max(m.Offset, 0)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.Offset--
		case "down", "j":
			m.Offset++
		case "pgup":
			m.Offset -= m.Height
		case "pgdown", " ":
			m.Offset += m.Height
		case "g", "home":
			m.Offset = 0
		case "G", "end":
			m.Offset = len(m.lines)
		case "tab":
			m.Mode = (m.Mode + 1) % numViews
			m.rebuild()
		case "f":
			m.Focus = m.nextFocus()
			m.rebuild()
		case "r":
			m.reload()
		}
		m.clamp()
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-4, 5)
		m.clamp()
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	header := StyleTitle.Render(m.Title) + pagerHeaderStyle.Render(" · "+m.Mode.String())
	if m.Focus >= 0 {
		header += pagerHeaderStyle.Render(" · focus: " + layout.Roster(m.Players).Name(m.Focus))
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.lines))
	for _, line := range m.lines[m.Offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pagerDimStyle.Render(fmt.Sprintf("[%d-%d/%d]  ↑/↓ scroll  tab view  f focus  r reload  q quit",
		min(m.Offset+1, end), end, len(m.lines))))
	return b.String()
}
