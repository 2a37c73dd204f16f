package charts

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const maxLabelWidth = 28

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // bright blue
			MarginBottom(1)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dim gray

	// Word cloud tiers, most frequent first.
	cloudStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

// RenderTerminal draws c as text no wider than width columns.
func RenderTerminal(c Chart, width int) string {
	if width < 40 {
		width = 40
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")

	if c.Kind == KindWordCloud {
		b.WriteString(renderCloud(c.Points, width))
		return b.String()
	}

	if c.XLabel != "" || c.YLabel != "" {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%s by %s", c.YLabel, c.XLabel)))
		b.WriteString("\n\n")
	}
	b.WriteString(renderBars(c.Points, width))
	return b.String()
}

func renderBars(points []Point, width int) string {
	labelWidth := 0
	peak := 0.0
	for _, p := range points {
		labelWidth = max(labelWidth, min(utf8.RuneCountInString(p.Label), maxLabelWidth))
		peak = math.Max(peak, p.Value)
	}
	valueWidth := len(formatValue(peak))
	barWidth := max(width-labelWidth-valueWidth-3, 1)

	var b strings.Builder
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = int(math.Round(p.Value / peak * float64(barWidth)))
		}
		label := truncate(p.Label, maxLabelWidth)
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(padRight(label, labelWidth)),
			barStyle.Render(strings.Repeat("█", n)),
			valueStyle.Render(formatValue(p.Value)),
		)
	}
	return b.String()
}

// renderCloud flows words left to right, styled by frequency tier.
func renderCloud(points []Point, width int) string {
	var b strings.Builder
	line := 0
	for i, p := range points {
		tier := i * len(cloudStyles) / max(len(points), 1)
		word := p.Label
		n := utf8.RuneCountInString(word)
		if line > 0 && line+1+n > width {
			b.WriteString("\n")
			line = 0
		}
		if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(cloudStyles[tier].Render(word))
		line += n
	}
	b.WriteString("\n")
	return b.String()
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

func padRight(s string, n int) string {
	if pad := n - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
