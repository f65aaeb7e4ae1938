package internal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akshathkulkarni/StudyTimeTracker/internal/session"
	"github.com/akshathkulkarni/StudyTimeTracker/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type MsgTick struct{}

// Editable columns, in cursor order. Duration is computed from the two
// time cells and is never focused.
const (
	colStart = iota
	colEnd
	colCategory
	colNotes
	colCount
)

const dateLayout = "2006-01-02"

type Model struct {
	Date        string // selected day, YYYY-MM-DD
	Rows        []session.Row
	SelectedRow int
	SelectedCol int
	Editing     bool   // edit mode: keystrokes go into the focused cell
	Status      string // validation or save feedback, empty when none
	Categories  []string
	Clock       time.Time
	store       *store.Store
}

func NewModel(st *store.Store, categories []string) (*Model, error) {
	m := &Model{
		Date:       time.Now().Format(dateLayout),
		Categories: categories,
		Clock:      time.Now(),
		store:      st,
	}
	if err := m.LoadDay(); err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.Clock = time.Now()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

// LoadDay fetches the selected date's entries and rebuilds the rows,
// discarding any unsaved edits. An empty day gets one blank row so there
// is an immediate place to type.
func (m *Model) LoadDay() error {
	entries, err := m.store.FetchDay(m.Date)
	if err != nil {
		return err
	}

	m.Rows = m.Rows[:0]
	for _, e := range entries {
		m.Rows = append(m.Rows, session.RowFromEntry(e))
	}
	if len(m.Rows) == 0 {
		m.Rows = append(m.Rows, session.Row{})
	}
	m.SelectedRow = 0
	m.SelectedCol = colStart
	m.Editing = false
	return nil
}

// ShiftDate moves the selected date by a number of days and reloads.
func (m *Model) ShiftDate(days int) {
	t, err := time.Parse(dateLayout, m.Date)
	if err != nil {
		t = time.Now()
	}
	m.setDate(t.AddDate(0, 0, days).Format(dateLayout))
}

// GoToday jumps back to today's date and reloads.
func (m *Model) GoToday() {
	m.setDate(time.Now().Format(dateLayout))
}

func (m *Model) setDate(date string) {
	m.Date = date
	if err := m.LoadDay(); err != nil {
		m.Status = fmt.Sprintf("Storage error: %v", err)
	}
}

// AddRow appends a blank row and moves the cursor onto it.
func (m *Model) AddRow() {
	m.Rows = append(m.Rows, session.Row{})
	m.SelectedRow = len(m.Rows) - 1
	m.SelectedCol = colStart
}

// RemoveRow deletes the selected row from the form only; the store is
// untouched until the next save.
func (m *Model) RemoveRow() {
	if len(m.Rows) == 0 {
		return
	}
	i := m.SelectedRow
	m.Rows = append(m.Rows[:i], m.Rows[i+1:]...)
	if m.SelectedRow >= len(m.Rows) {
		m.SelectedRow = len(m.Rows) - 1
	}
	if m.SelectedRow < 0 {
		m.SelectedRow = 0
	}
}

// SaveDay validates every row and replaces the selected date's stored
// entries in one go. A single row that fails to parse aborts the whole
// save and nothing is written.
func (m *Model) SaveDay() {
	if len(m.Rows) == 0 {
		m.Status = "No rows to save."
		return
	}

	entries, bad := session.Collect(m.Date, m.Rows)
	if len(bad) > 0 {
		lines := make([]string, len(bad))
		for i, n := range bad {
			lines[i] = fmt.Sprintf("Row %d: invalid time format (use HH:MM).", n)
		}
		m.Status = strings.Join(lines, "\n")
		return
	}

	if err := m.store.ReplaceDay(m.Date, entries); err != nil {
		m.Status = fmt.Sprintf("Storage error: %v", err)
		return
	}
	m.Status = fmt.Sprintf("Entries saved for %s.", m.Date)
}

// CycleCategory sets the selected row's category to the next suggestion,
// starting at the first when the current text is not in the list.
func (m *Model) CycleCategory() {
	if len(m.Categories) == 0 || len(m.Rows) == 0 {
		return
	}
	r := &m.Rows[m.SelectedRow]
	next := 0
	for i, c := range m.Categories {
		if c == r.Category {
			next = (i + 1) % len(m.Categories)
			break
		}
	}
	r.Category = m.Categories[next]
}

// cell returns the focused cell's text for in-place editing.
func (m *Model) cell(row, col int) *string {
	r := &m.Rows[row]
	switch col {
	case colStart:
		return &r.Start
	case colEnd:
		return &r.End
	case colCategory:
		return &r.Category
	default:
		return &r.Notes
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Status = ""

	if m.Editing {
		return m.handleEditInput(msg)
	}
	return m.handleNavigate(msg)
}

func (m *Model) handleNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.SelectedRow > 0 {
			m.SelectedRow--
		}
	case "down", "j":
		if m.SelectedRow < len(m.Rows)-1 {
			m.SelectedRow++
		}
	case "left", "h":
		if m.SelectedCol > 0 {
			m.SelectedCol--
		}
	case "right", "l":
		if m.SelectedCol < colCount-1 {
			m.SelectedCol++
		}
	case "enter":
		if len(m.Rows) == 0 {
			break
		}
		// The category cell cycles through the suggestions; free text
		// is still possible through edit mode.
		if m.SelectedCol == colCategory {
			m.CycleCategory()
		} else {
			m.Editing = true
		}
	case "i":
		if len(m.Rows) > 0 {
			m.Editing = true
		}
	case "a":
		m.AddRow()
	case "d":
		m.RemoveRow()
	case "s", "ctrl+s":
		m.SaveDay()
	case "[":
		m.ShiftDate(-1)
	case "]":
		m.ShiftDate(1)
	case "t":
		m.GoToday()
	}
	return m, nil
}

func (m *Model) handleEditInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.Editing = false
	case "tab":
		m.SelectedCol = (m.SelectedCol + 1) % colCount
	case "shift+tab":
		m.SelectedCol = (m.SelectedCol + colCount - 1) % colCount
	case "ctrl+s":
		m.Editing = false
		m.SaveDay()
	case "backspace":
		cell := m.cell(m.SelectedRow, m.SelectedCol)
		if len(*cell) > 0 {
			_, size := utf8.DecodeLastRuneInString(*cell)
			*cell = (*cell)[:len(*cell)-size]
		}
	default:
		runes := []rune(msg.String())
		if len(runes) == 1 {
			cell := m.cell(m.SelectedRow, m.SelectedCol)
			*cell += string(runes[0])
		}
	}
	return m, nil
}
