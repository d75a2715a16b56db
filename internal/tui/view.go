package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/minimallist/internal/shake"
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(a.renderList())

	body := b.String()
	if a.height > 0 {
		body = clipHeight(body, max(1, a.height-2))
		if pad := a.height - 2 - lipgloss.Height(body); pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}
	return body + "\n" + a.renderStatusBar() + "\n" + a.renderFooter()
}

func (a *App) renderHeader() string {
	sensor := sensorOffStyle.Render("○ shake off")
	if a.detector.State() == shake.Listening {
		sensor = sensorOnStyle.Render("● shake to clear")
	}
	return titleStyle.Render(a.cfg.Title) + " " + sensor
}

func (a *App) renderList() string {
	var lines []string
	if a.todos.Draft().Active {
		lines = append(lines, "  "+entryIconStyle.Render("✎")+" "+a.input.View())
	}
	for i, t := range a.tasks {
		prefix := "  "
		if i == a.cursor && !a.todos.Draft().Active {
			prefix = cursorStyle.Render("> ")
		}
		style := rowStyle
		if t.Completed {
			style = rowDoneStyle
		}
		lines = append(lines, prefix+style.Render(t.Title))
	}
	if len(lines) == 0 {
		lines = append(lines, emptyHintStyle.Render("  Nothing to do. Pull down (↑) to add an item."))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.statusErr {
		return renderBar(statusErrStyle, a.width, msg)
	}
	return renderBar(statusBarStyle, a.width, msg)
}

func (a *App) renderFooter() string {
	scope := scopeList
	if a.todos.Draft().Active {
		scope = scopeEntry
	}
	sep := footerSpaceStyle.Render("  ")
	var parts []string
	for _, b := range a.keys.BindingsForScope(scope) {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		if b.Action == actionShake && a.simulator == nil {
			continue
		}
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)).Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerSpaceStyle.Render(" ")+footerDescStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, a.width, strings.Join(parts, sep))
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	if width <= 0 {
		return style.Render(line)
	}
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func clipHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
