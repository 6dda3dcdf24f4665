// Package picker is the terminal front end for the Buddhist-Era date picker
// core. It renders core state and forwards keys as events; every rule about
// masking, validation, and synchronization lives in the core reducer.
package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teera/bepick/internal/becodec"
	"github.com/teera/bepick/internal/inputmask"
	core "github.com/teera/bepick/internal/picker"
	"github.com/teera/bepick/internal/thaical"
)

// focusArea is which part of the control receives keys.
type focusArea int

const (
	focusField focusArea = iota
	focusCalendar
	focusTime
)

// Model is the Bubble Tea model wrapping the picker core.
type Model struct {
	core  core.State
	input textinput.Model

	focus     focusArea
	cell      int            // highlighted index in the current grid
	timeField core.TimeField // highlighted sub-field in the time row

	width  int
	height int

	initial   string // canonical value supplied by the caller
	canonical string // last emitted canonical value, returned to the caller
	aborted   bool
}

// New builds a model seeded with an initial canonical value (may be empty).
func New(withTime bool, initial string) Model {
	now := time.Now()
	s := core.New(withTime, now)
	s, _ = core.Reduce(s, core.ExternalValueChanged{Canonical: initial, Now: now})
	s, _ = core.Reduce(s, core.Opened{Now: now})

	ti := textinput.New()
	ti.Prompt = "วันที่ > "
	if withTime {
		ti.Placeholder = "DD/MM/YYYY HH:mm"
	} else {
		ti.Placeholder = "DD/MM/YYYY"
	}
	ti.CharLimit = inputmask.FullLen(withTime)
	ti.SetValue(s.Display)
	ti.Focus()
	ti.CursorEnd()

	m := Model{core: s, input: ti, initial: initial, canonical: initial}
	m.cell = m.homeCell(now)
	return m
}

// Canonical returns the value to hand back to the caller. Aborting discards
// in-session edits and restores the caller's original value.
func (m Model) Canonical() string {
	if m.aborted {
		return m.initial
	}
	return m.canonical
}

// Display returns the BE-formatted entry text.
func (m Model) Display() string { return m.core.Display }

// Aborted reports whether the user quit without confirming.
func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "esc":
			m.aborted = true
			return m, tea.Quit
		case "tab":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFocus(-1)
			return m, nil
		}

		switch m.focus {
		case focusField:
			return m.updateField(msg)
		case focusCalendar:
			return m.updateCalendar(msg)
		case focusTime:
			return m.updateTime(msg)
		}
	}

	return m, nil
}

// updateField routes keys through the text input, then re-masks via the core.
func (m Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	next, emit := core.Reduce(m.core, core.KeystrokeChanged{Text: m.input.Value(), Now: time.Now()})
	m.applyEmit(next, emit)
	m.input.SetValue(m.core.Display)
	m.input.CursorEnd()
	if emit.Fired && emit.Canonical != "" {
		m.resetCell()
	}
	return m, cmd
}

// updateCalendar handles grid navigation and selection.
func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.aborted = true
		return m, tea.Quit
	case "left", "h":
		m.moveCell(-1)
	case "right", "l":
		m.moveCell(1)
	case "up", "k":
		m.moveCell(-m.gridCols())
	case "down", "j":
		m.moveCell(m.gridCols())
	case "p", "pgup":
		m.dispatch(core.Paged{Delta: -1})
		m.clampCell()
	case "n", "pgdown":
		m.dispatch(core.Paged{Delta: 1})
		m.clampCell()
	case "v":
		m.dispatch(core.ModeChanged{Mode: m.coarserMode()})
		m.resetCell()
	case "t":
		if quit := m.dispatch(core.TodayRequested{Now: time.Now()}); quit {
			return m, tea.Quit
		}
		m.resetCell()
	case "c":
		m.dispatch(core.Cleared{})
	case "enter", " ":
		if quit := m.selectCell(); quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

// updateTime adjusts the pending hour/minute (time-enabled controls only).
func (m Model) updateTime(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.aborted = true
		return m, tea.Quit
	case "left", "h", "right", "l":
		if m.timeField == core.FieldHour {
			m.timeField = core.FieldMinute
		} else {
			m.timeField = core.FieldHour
		}
	case "up", "k":
		m.bumpTime(1)
	case "down", "j":
		m.bumpTime(-1)
	case "enter":
		// Explicit confirmation closes a time-enabled picker.
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) bumpTime(delta int) {
	if m.timeField == core.FieldHour {
		value := (m.core.Time.Hour + delta + 24) % 24
		m.dispatch(core.TimeFieldChanged{Field: core.FieldHour, Value: value})
		return
	}
	value := (m.core.Time.Minute + delta + 60) % 60
	m.dispatch(core.TimeFieldChanged{Field: core.FieldMinute, Value: value})
}

// selectCell commits the highlighted cell for the current view mode.
func (m *Model) selectCell() (quit bool) {
	switch m.core.Mode {
	case core.ModeDay:
		grid := thaical.MonthGrid(m.core.Cursor.Year, m.core.Cursor.Month)
		if m.cell >= len(grid) || grid[m.cell] == 0 {
			return false
		}
		return m.dispatch(core.DaySelected{Day: grid[m.cell]})
	case core.ModeMonth:
		m.dispatch(core.MonthSelected{Month: time.Month(m.cell + 1)})
		m.resetCell()
	case core.ModeYear:
		window := thaical.YearWindow(m.core.Cursor.Year + becodec.BEOffset)
		if m.cell < len(window) {
			m.dispatch(core.YearSelected{BEYear: window[m.cell]})
		}
		m.resetCell()
	}
	return false
}

// resetCell re-homes the highlight after the view mode or cursor changed.
func (m *Model) resetCell() {
	switch m.core.Mode {
	case core.ModeDay:
		m.cell = m.homeCell(time.Now())
	case core.ModeMonth:
		m.cell = int(m.core.Cursor.Month) - 1
	case core.ModeYear:
		m.cell = 6 // the cursor year sits seventh in the window
	}
}

// dispatch runs one event through the core, records any emission, and
// reports whether the core asked to close.
func (m *Model) dispatch(ev core.Event) (quit bool) {
	next, emit := core.Reduce(m.core, ev)
	m.applyEmit(next, emit)
	return emit.ClosePicker
}

func (m *Model) applyEmit(next core.State, emit core.Emit) {
	displayChanged := next.Display != m.core.Display
	m.core = next
	if emit.Fired {
		m.canonical = emit.Canonical
	}
	if displayChanged {
		m.input.SetValue(m.core.Display)
		m.input.CursorEnd()
	}
}

// cycleFocus moves focus between the field, the calendar, and (when
// time-enabled) the time row.
func (m *Model) cycleFocus(dir int) {
	areas := 2
	if m.core.WithTime {
		areas = 3
	}
	m.focus = focusArea((int(m.focus) + dir + areas) % areas)
	if m.focus == focusField {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// coarserMode steps day -> month -> year -> day.
func (m Model) coarserMode() core.ViewMode {
	switch m.core.Mode {
	case core.ModeDay:
		return core.ModeMonth
	case core.ModeMonth:
		return core.ModeYear
	}
	return core.ModeDay
}

func (m Model) gridCols() int {
	if m.core.Mode == core.ModeDay {
		return 7
	}
	return 3
}

func (m Model) gridLen() int {
	if m.core.Mode == core.ModeDay {
		return len(thaical.MonthGrid(m.core.Cursor.Year, m.core.Cursor.Month))
	}
	return 12
}

func (m *Model) moveCell(delta int) {
	next := m.cell + delta
	if next < 0 || next >= m.gridLen() {
		return
	}
	m.cell = next
}

func (m *Model) clampCell() {
	if max := m.gridLen(); m.cell >= max {
		m.cell = max - 1
	}
}

// homeCell returns the cell to highlight for the cursor month: the selected
// day when it is in view, else today, else day 1.
func (m Model) homeCell(now time.Time) int {
	lead := thaical.FirstWeekday(m.core.Cursor.Year, m.core.Cursor.Month)
	if sel := m.core.Selected(); sel != nil &&
		sel.Year == m.core.Cursor.Year && sel.Month == m.core.Cursor.Month {
		return lead + sel.Day - 1
	}
	if now.Year() == m.core.Cursor.Year && now.Month() == m.core.Cursor.Month {
		return lead + now.Day() - 1
	}
	return lead
}

// Run launches the interactive picker and returns the emitted canonical
// value ("" when cleared or aborted).
func Run(withTime bool, initial string) (string, error) {
	p := tea.NewProgram(New(withTime, initial), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(Model); ok {
		return final.Canonical(), nil
	}
	return "", nil
}
