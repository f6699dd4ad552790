/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tui is the interactive browser for a finished run report: a
// filterable result table with a detail pane for the selected result.
package tui

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/netaudit/pkg/models"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

const (
	focusTable = iota
	focusSearch
	focusDetail
)

const (
	defaultTableHeight = 20
	detailPadding      = 2
)

// statusCycle is the Tab filter order; the empty status shows everything.
var statusCycle = []models.Status{"", models.StatusFail, models.StatusPass, models.StatusInfo, models.StatusSkip}

func newStyles() struct {
	title, status, help, hint, success, failure, info, skip, detail, app lipgloss.Style
} {
	return struct {
		title, status, help, hint, success, failure, info, skip, detail, app lipgloss.Style
	}{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)).
			Bold(true),
		failure: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)),
		skip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaPurple)).
			Padding(0, detailPadding),
		app: lipgloss.NewStyle().
			Padding(1, detailPadding).
			Foreground(lipgloss.Color(draculaForeground)),
	}
}

// Model is the bubbletea model over one run report.
type Model struct {
	report  *models.RunReport
	results []models.CheckResult
	visible []models.CheckResult

	table  table.Model
	search textinput.Model
	detail viewport.Model

	focused     int
	filter      int
	query       string
	copyMessage string
	canCopy     bool

	styles struct {
		title, status, help, hint, success, failure, info, skip, detail, app lipgloss.Style
	}
}

// New builds the browser model for a report.
func New(report *models.RunReport) *Model {
	si := textinput.New()
	si.Placeholder = "device, object or field"
	si.Prompt = "/ "
	si.Width = 40
	si.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	si.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	si.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))

	canCopy := true
	if err := clipboard.WriteAll(""); err != nil {
		canCopy = false
	}

	t := table.New(
		table.WithColumns(resultColumns()),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Foreground(lipgloss.Color(draculaPurple)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(draculaComment)).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(draculaGreen)).
		Background(lipgloss.Color(draculaComment)).
		Bold(true)
	t.SetStyles(ts)

	m := &Model{
		report:  report,
		results: flatten(report),
		table:   t,
		search:  si,
		detail:  viewport.New(80, defaultTableHeight),
		canCopy: canCopy,
		styles:  newStyles(),
	}

	m.refresh()

	return m
}

// Run launches the browser and blocks until the user quits. Without a
// terminal on stdout there is nothing to draw on, so the report degrades
// to the plain text summary.
func Run(report *models.RunReport) error {
	if !isOutputToTerminal() {
		_, err := os.Stdout.WriteString(Summary(report))
		return err
	}

	_, err := tea.NewProgram(New(report), tea.WithAltScreen()).Run()

	return err
}

func isOutputToTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func resultColumns() []table.Column {
	return []table.Column{
		{Title: "Device", Width: 12},
		{Title: "Category", Width: 8},
		{Title: "Check", Width: 11},
		{Title: "Object", Width: 10},
		{Title: "Field", Width: 19},
		{Title: "Status", Width: 6},
		{Title: "Message", Width: 32},
	}
}

// flatten collapses a report into one result list, preserving the
// report's deterministic device and result order.
func flatten(report *models.RunReport) []models.CheckResult {
	var out []models.CheckResult

	for i := range report.Devices {
		out = append(out, report.Devices[i].Results...)
	}

	return out
}

// matches applies the active search query to one result.
func matches(r *models.CheckResult, query string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	for _, field := range []string{r.Device, r.Object, r.Field, r.Check, r.Message} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}

// refresh recomputes the visible rows from the active filter and query.
func (m *Model) refresh() {
	status := statusCycle[m.filter]

	m.visible = m.visible[:0]

	for i := range m.results {
		r := m.results[i]
		if status != "" && r.Status != status {
			continue
		}

		if !matches(&r, m.query) {
			continue
		}

		m.visible = append(m.visible, r)
	}

	rows := make([]table.Row, 0, len(m.visible))
	for i := range m.visible {
		r := &m.visible[i]
		rows = append(rows, table.Row{r.Device, r.Category, r.Check, r.Object, r.Field, string(r.Status), r.Message})
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the result under the cursor, or nil when the view is
// empty.
func (m *Model) selected() *models.CheckResult {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return nil
	}

	return &m.visible[cursor]
}

func (*Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	height := msg.Height - 8
	if height < 5 {
		height = 5
	}

	m.table.SetHeight(height)
	m.table.SetWidth(msg.Width - 2*detailPadding)
	m.detail.Width = msg.Width - 2*detailPadding
	m.detail.Height = height
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focused == focusSearch {
		return m.handleSearchKey(msg)
	}

	//nolint:exhaustive // Default case handles all unlisted keys
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		return m.handleEsc()
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyTab:
		m.filter = (m.filter + 1) % len(statusCycle)
		m.refresh()

		return m, nil
	default:
		return m.handleDefault(msg)
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Default case handles all unlisted keys
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue(m.query)
		m.focused = focusTable

		return m, nil
	case tea.KeyEnter:
		m.query = strings.TrimSpace(m.search.Value())
		m.search.Blur()
		m.focused = focusTable
		m.refresh()

		return m, nil
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}
}

func (m *Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.focused == focusDetail {
		m.focused = focusTable
		return m, nil
	}

	if m.query != "" {
		m.query = ""
		m.search.SetValue("")
		m.refresh()

		return m, nil
	}

	return m, tea.Quit
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.focused == focusDetail {
		m.focused = focusTable
		return m, nil
	}

	if r := m.selected(); r != nil {
		m.detail.SetContent(m.renderDetail(r))
		m.detail.GotoTop()
		m.focused = focusDetail
	}

	return m, nil
}

func (m *Model) handleDefault(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		if m.focused == focusTable {
			m.focused = focusSearch
			m.search.Focus()

			return m, textinput.Blink
		}
	case "c":
		if m.canCopy {
			m.copySelected()
		}

		return m, nil
	}

	var cmd tea.Cmd

	if m.focused == focusDetail {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}

	return m, cmd
}

func (m *Model) copySelected() {
	r := m.selected()
	if r == nil {
		return
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		m.copyMessage = "Failed to encode result"
		return
	}

	if err := clipboard.WriteAll(string(data)); err != nil {
		m.copyMessage = "Failed to copy to clipboard"
		return
	}

	m.copyMessage = "Result copied to clipboard!"
}
