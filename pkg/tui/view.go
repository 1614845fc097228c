package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/view"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("252"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var filters = []controller.Route{controller.RouteAll, controller.RouteActive, controller.RouteCompleted}

// View renders the input, the visible list and the footer.
func (m *Model) View() string {
	s := &m.screen
	b := strings.Builder{}

	b.WriteString(titleStyle.Render("todos"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if s.ContentVisible {
		for i, it := range s.Items {
			pointer := "  "
			if m.focus == focusList && i == m.cursor {
				pointer = cursorStyle.Render("› ")
			}
			box, title := "[ ]", it.Title
			if w := m.width - 6; m.width > 0 && w > 10 {
				title = strings.ReplaceAll(wordwrap.String(title, w), "\n", "\n      ")
			}
			if it.Completed {
				box, title = "[x]", doneStyle.Render(title)
			}
			if s.Editing == it.ID {
				title = m.edit.View()
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", pointer, box, title))
		}
		if len(s.Items) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.footer())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

func (m *Model) footer() string {
	s := &m.screen
	parts := []string{footerStyle.Render(view.ItemCounter(s.Active))}
	if bar := meter(s.Completed, s.Active+s.Completed, meterWidth); bar != "" {
		parts = append([]string{bar}, parts...)
	}

	names := make([]string, 0, len(filters))
	for _, r := range filters {
		if r.Page() == s.Page {
			names = append(names, selectedStyle.Render(r.String()))
		} else {
			names = append(names, footerStyle.Render(r.String()))
		}
	}
	parts = append(parts, strings.Join(names, " "))

	if label := view.ClearCompletedLabel(s.Completed); s.ClearCompletedVisible && label != "" {
		parts = append(parts, footerStyle.Render(label))
	}
	return strings.Join(parts, footerStyle.Render("  ·  "))
}

const meterWidth = 10

var (
	meterFrom, _ = colorful.Hex("#ff5f87")
	meterTo, _   = colorful.Hex("#5fd787")
)

// meter draws completed out of total as a bar shading from red to green.
func meter(completed, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}
	filled := completed * width / total
	b := strings.Builder{}
	for i := 0; i < width; i++ {
		if i >= filled {
			b.WriteString(footerStyle.Render("░"))
			continue
		}
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := meterFrom.BlendLab(meterTo, t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}
	return b.String()
}
