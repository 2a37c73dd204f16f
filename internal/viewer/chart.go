package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobinsight/internal/charts"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")) // bright blue

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
)

type chartModel struct {
	charts   []charts.Chart
	current  int
	viewport viewport.Model
	width    int
	height   int
	ready    bool

	wantQuit bool
}

func (m chartModel) Init() tea.Cmd {
	return nil
}

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.wantQuit = true
			return m, tea.Quit
		case "esc", "b", "backspace":
			m.wantQuit = false
			return m, tea.Quit
		case "n", "tab", "right":
			m.show(m.current + 1)
			return m, nil
		case "p", "shift+tab", "left":
			m.show(m.current - 1)
			return m, nil
		}
	}

	// Forward other keys (up/down/pgup/pgdn) to the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// show switches to chart i, wrapping around at either end.
func (m *chartModel) show(i int) {
	n := len(m.charts)
	if n == 0 {
		return
	}
	m.current = ((i % n) + n) % n
	m.recalcContent()
	m.viewport.SetYOffset(0)
}

func (m *chartModel) recalcLayout() {
	// Header (1 line) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	w := max(m.width-4, 20)
	h := max(m.height-4, 5)

	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.recalcContent()
}

func (m *chartModel) recalcContent() {
	if len(m.charts) == 0 {
		m.viewport.SetContent("No charts to show.")
		return
	}
	m.viewport.SetContent(charts.RenderTerminal(m.charts[m.current], m.viewport.Width))
}

func (m chartModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := headerStyle.Render(fmt.Sprintf("Chart %d of %d", m.current+1, len(m.charts)))
	content := borderStyle.Width(m.width - 2).Render(m.viewport.View())
	statusText := " n/p next/prev  ↑/↓ scroll  esc back  q quit"
	statusBar := statusBarStyle.Width(m.width).Render(statusText)

	return header + "\n" + content + "\n" + statusBar
}

// RunChartView shows cs starting at index start in a full-screen view.
// Returns true if the user asked to quit rather than go back.
func RunChartView(cs []charts.Chart, start int) (bool, error) {
	m := chartModel{charts: cs}
	if len(cs) > 0 {
		m.current = min(max(start, 0), len(cs)-1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, err
	}

	final := result.(chartModel)
	return final.wantQuit, nil
}
