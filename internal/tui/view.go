package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/taskdeck/internal/tui/styles"
	"github.com/Iron-Ham/taskdeck/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	header := styles.Header.Width(m.width - 2).Render("taskdeck")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderLogPane())
	footer := m.renderFooter()

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if m.pending != nil {
		return lipgloss.JoinVertical(lipgloss.Left, view, m.renderConfirm())
	}
	if m.inputActive {
		return lipgloss.JoinVertical(lipgloss.Left, view, m.renderInput())
	}
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, view, m.renderHelp())
	}
	return view
}

func (m Model) renderSidebar() string {
	width := m.sidebarWidth()
	var b strings.Builder

	if len(m.tasks) == 0 {
		b.WriteString(styles.Muted.Render("no tasks"))
	}

	for i, task := range m.tasks {
		line := fmt.Sprintf("#%d %s", task.ID, util.TruncateString(task.Description, width-14))
		badge := lipgloss.NewStyle().Foreground(styles.StatusColor(task.Status)).Render(task.Status)

		row := line + " " + badge
		if m.tails.Active(task.ID) {
			row = styles.SidebarTailing.Render("~") + " " + row
		} else {
			row = "  " + row
		}
		row = util.TruncateANSI(row, width-2)
		if i == m.cursor {
			row = styles.SidebarSelected.Render(row)
		}
		b.WriteString(row)
		if i < len(m.tasks)-1 {
			b.WriteString("\n")
		}
	}

	return styles.Sidebar.Width(width).Height(m.viewport.Height).Render(b.String())
}

func (m Model) renderLogPane() string {
	id := m.selectedID()
	content := m.viewport.View()
	if id == 0 {
		content = styles.Muted.Render("submit a task with 'n'")
	} else if m.outputsFor == 0 && !m.tails.Active(id) {
		content = styles.Muted.Render(fmt.Sprintf("press enter to tail logs for task %d", id))
	}
	return styles.LogPane.Width(m.viewport.Width).Height(m.viewport.Height).Render(content)
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.busy:
		status = m.spin.View() + " working"
	case m.errorMessage != "":
		status = styles.Error.Render(m.errorMessage)
	case m.infoMessage != "":
		status = styles.Secondary.Render(m.infoMessage)
	}

	help := styles.HelpBar.Render(strings.Join([]string{
		styles.HelpKey.Render("enter") + " tail",
		styles.HelpKey.Render("n") + " new",
		styles.HelpKey.Render("c") + " cancel",
		styles.HelpKey.Render("r") + " retry",
		styles.HelpKey.Render("?") + " help",
		styles.HelpKey.Render("q") + " quit",
	}, "  "))

	if status == "" {
		return styles.StatusBar.Width(m.width - 2).Render(help)
	}
	return styles.StatusBar.Width(m.width - 2).Render(status + "  " + help)
}

func (m Model) renderConfirm() string {
	prompt := m.pending.Prompt()
	return styles.ConfirmBox.Render(prompt + " " + styles.Muted.Render("[y/N]"))
}

func (m Model) renderInput() string {
	return styles.InputBox.Width(m.width - 4).Render(m.input.View())
}

func (m Model) renderHelp() string {
	rows := []string{
		styles.HelpKey.Render("j/k, up/down") + "  move selection",
		styles.HelpKey.Render("g/G") + "           first/last task",
		styles.HelpKey.Render("enter, t") + "      toggle log tail for the selected task",
		styles.HelpKey.Render("o") + "             show recorded outputs",
		styles.HelpKey.Render("n") + "             submit a new task",
		styles.HelpKey.Render("c") + "             cancel the selected task",
		styles.HelpKey.Render("r") + "             retry the selected task",
		styles.HelpKey.Render("R") + "             refresh the task list now",
		styles.HelpKey.Render("q, ctrl+c") + "     quit",
		"",
		styles.Muted.Render("press any key to close"),
	}
	return styles.ConfirmBox.Render(strings.Join(rows, "\n"))
}

// renderOutputs formats a task's recorded outputs for the log pane.
func renderOutputs(lines []string) string {
	if len(lines) == 0 {
		return "(No outputs yet)"
	}
	return strings.Join(lines, "\n")
}
