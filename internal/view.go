package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/akshathkulkarni/StudyTimeTracker/internal/session"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4f8cff")).
			Bold(true).
			Align(lipgloss.Center)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f7fb")).
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4f8cff"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f7fb"))

	cellSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4f8cff")).
				Background(lipgloss.Color("#1b1e27")).
				Bold(true)

	cellEditingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#101218")).
				Background(lipgloss.Color("#4f8cff"))

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f7fb")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const (
	widthIndex    = 3
	widthTime     = 7
	widthCategory = 34
	widthDuration = 10
	widthNotes    = 24
)

// tableWidth is the rendered width of one table row, used to size the
// header above it.
const tableWidth = widthIndex + 2*widthTime + widthCategory + widthDuration + widthNotes + 10

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.headerView())
	sb.WriteString("\n")
	sb.WriteString(m.tableView())
	sb.WriteString("\n")
	sb.WriteString(totalStyle.Render("Total: " + session.FormatTotal(session.TotalMinutes(m.Rows))))
	sb.WriteString("\n")
	if m.Status != "" {
		sb.WriteString(statusStyle.Render(m.Status))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.helpLine()))

	return sb.String()
}

func (m *Model) headerView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(tableWidth).Render("Study Logging System"))
	sb.WriteString("\n\n")

	date := m.Date
	if t, err := time.Parse(dateLayout, m.Date); err == nil {
		date = t.Format("2006-01-02 (Mon)")
	}
	sb.WriteString(fmt.Sprintf("%s    %s",
		dateStyle.Render("Date: "+date),
		clockStyle.Render(m.Clock.Format("15:04:05")),
	))
	sb.WriteString("\n")

	return sb.String()
}

func (m *Model) tableView() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s  %s\n",
		columnHeaderStyle.Render(pad("#", widthIndex)),
		columnHeaderStyle.Render(pad("From", widthTime)),
		columnHeaderStyle.Render(pad("To", widthTime)),
		columnHeaderStyle.Render(pad("Category", widthCategory)),
		columnHeaderStyle.Render(pad("Duration", widthDuration)),
		columnHeaderStyle.Render(pad("Notes", widthNotes)),
	))

	if len(m.Rows) == 0 {
		sb.WriteString(inactiveStyle.Render("No rows. Press 'a' to add one."))
		sb.WriteString("\n")
		return boxStyle.Render(sb.String())
	}

	for i, r := range m.Rows {
		sb.WriteString(fmt.Sprintf("%s  %s  %s  %s  %s  %s\n",
			inactiveStyle.Render(pad(fmt.Sprintf("%d", i+1), widthIndex)),
			m.cellView(i, colStart, r.Start, widthTime),
			m.cellView(i, colEnd, r.End, widthTime),
			m.cellView(i, colCategory, r.Category, widthCategory),
			durationStyle.Render(pad(session.DurationLabel(r.Start, r.End), widthDuration)),
			m.cellView(i, colNotes, r.Notes, widthNotes),
		))
	}

	return boxStyle.Render(sb.String())
}

func (m *Model) cellView(row, col int, text string, width int) string {
	if row == m.SelectedRow && col == m.SelectedCol {
		if m.Editing {
			return cellEditingStyle.Render(pad(text+"█", width))
		}
		return cellSelectedStyle.Render(pad(text, width))
	}
	return cellStyle.Render(pad(text, width))
}

func (m *Model) helpLine() string {
	if m.Editing {
		return "Type to fill the cell | Next Cell: Tab | Done: Enter/Esc | Save: Ctrl+S"
	}
	return "Move: Arrows/hjkl | Edit: Enter | Add: a | Remove: d | Save: s | Day: [ ] | Today: t | Quit: q"
}

// pad fits s into width columns, truncating with an ellipsis when it is
// too long.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
