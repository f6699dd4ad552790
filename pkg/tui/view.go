package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/netaudit/pkg/models"
)

func (m *Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n\n")

	if m.focused == focusSearch {
		content.WriteString(m.search.View())
	} else {
		content.WriteString(m.renderFilterLine())
	}

	content.WriteString("\n")

	if m.focused == focusDetail {
		content.WriteString(m.styles.detail.Render(m.detail.View()))
	} else {
		content.WriteString(m.table.View())
	}

	content.WriteString("\n")
	content.WriteString(m.renderHelp())

	return m.styles.app.Render(content.String())
}

func (m *Model) renderHeader() string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.title.Render("netaudit"),
		m.styles.help.Render("  run "+m.report.RunID),
	)

	counts := m.report.Counts()
	summary := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		m.statusStyle(m.report.Status).Render(string(m.report.Status)),
		m.styles.failure.Render("FAIL"), counts[models.StatusFail],
		m.styles.success.Render("PASS"), counts[models.StatusPass],
		m.styles.info.Render("INFO"), counts[models.StatusInfo],
		m.styles.skip.Render("SKIP"), counts[models.StatusSkip],
	)

	lines := []string{title, summary}

	if len(m.report.Incomplete) > 0 {
		names := make([]string, 0, len(m.report.Incomplete))
		for _, inc := range m.report.Incomplete {
			names = append(names, inc.Device)
		}

		lines = append(lines, m.styles.hint.Render(
			fmt.Sprintf("%d incomplete: %s", len(names), strings.Join(names, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderFilterLine() string {
	filter := "ALL"
	if status := statusCycle[m.filter]; status != "" {
		filter = string(status)
	}

	line := m.styles.status.Render("filter: ") + m.statusFilterStyle().Render(filter)

	if m.query != "" {
		line += m.styles.help.Render("  search: " + m.query)
	}

	line += m.styles.help.Render(fmt.Sprintf("  (%d results)", len(m.visible)))

	return line
}

func (m *Model) statusFilterStyle() lipgloss.Style {
	status := statusCycle[m.filter]
	if status == "" {
		return m.styles.status
	}

	return m.statusStyle(status)
}

func (m *Model) statusStyle(status models.Status) lipgloss.Style {
	switch status {
	case models.StatusPass:
		return m.styles.success
	case models.StatusFail:
		return m.styles.failure
	case models.StatusInfo:
		return m.styles.info
	default:
		return m.styles.skip
	}
}

func (m *Model) renderHelp() string {
	var help string

	switch m.focused {
	case focusSearch:
		help = "Enter → apply | Esc → cancel | Ctrl+C → quit"
	case focusDetail:
		help = "↑/↓ → scroll | Enter/Esc → back | c → copy | q → quit"
	default:
		help = "↑/↓ → move | Enter → detail | Tab → cycle status filter | / → search | c → copy | q → quit"
	}

	line := m.styles.help.Render(help)

	if m.copyMessage != "" {
		line += "  " + m.styles.success.Render(m.copyMessage)
	}

	return line
}

// renderDetail formats one result for the detail pane.
func (m *Model) renderDetail(r *models.CheckResult) string {
	var content strings.Builder

	label := m.styles.status

	content.WriteString(fmt.Sprintf("%s %s\n\n",
		m.statusStyle(r.Status).Render(string(r.Status)),
		m.styles.title.Render(fmt.Sprintf("%s/%s on %s", r.Category, r.Check, r.Device))))

	if r.Object != "" {
		content.WriteString(fmt.Sprintf("%s %s\n", label.Render("Object:"), r.Object))
	}

	content.WriteString(fmt.Sprintf("%s %s\n", label.Render("Field:"), r.Field))

	if r.Message != "" {
		content.WriteString(fmt.Sprintf("%s %s\n", label.Render("Message:"), r.Message))
	}

	content.WriteString("\n")
	content.WriteString(label.Render("Expected:") + "\n" + formatValue(r.Expected) + "\n\n")
	content.WriteString(label.Render("Actual:") + "\n" + formatValue(r.Actual) + "\n")

	return content.String()
}

// formatValue renders an expected or actual value for display.
func formatValue(v any) string {
	if v == nil {
		return "-"
	}

	if s, ok := v.(string); ok {
		return s
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}
