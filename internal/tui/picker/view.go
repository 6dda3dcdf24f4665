package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/teera/bepick/internal/becodec"
	core "github.com/teera/bepick/internal/picker"
	"github.com/teera/bepick/internal/thaical"
)

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.input.View())

	body := m.renderBody()
	if m.focus == focusCalendar {
		sections = append(sections, focusedPanelStyle.Render(body))
	} else {
		sections = append(sections, panelStyle.Render(body))
	}

	if m.core.WithTime {
		sections = append(sections, m.renderTimeRow())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBody() string {
	switch m.core.Mode {
	case core.ModeMonth:
		return m.renderMonthGrid()
	case core.ModeYear:
		return m.renderYearGrid()
	}
	return m.renderDayGrid()
}

// renderDayGrid draws the weekday header and the day cells, seven per row.
func (m Model) renderDayGrid() string {
	cur := m.core.Cursor
	var b strings.Builder

	header := fmt.Sprintf("%s %d", thaical.ThaiMonths[cur.Month-1], cur.Year+becodec.BEOffset)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, wd := range thaical.ThaiWeekdays {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(weekdayStyle.Render(padCell(wd, 3)))
	}
	b.WriteString("\n")

	now := time.Now()
	sel := m.core.Selected()
	grid := thaical.MonthGrid(cur.Year, cur.Month)
	for i, day := range grid {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.renderDayCell(day, i, cur, now, sel))
	}

	return b.String()
}

func (m Model) renderDayCell(day, idx int, cur core.Cursor, now time.Time, sel *becodec.Instant) string {
	if day == 0 {
		return "   "
	}
	text := padCell(fmt.Sprintf("%d", day), 3)

	switch {
	case m.focus == focusCalendar && idx == m.cell:
		return highlightStyle.Render(text)
	case sel != nil && sel.Year == cur.Year && sel.Month == cur.Month && sel.Day == day:
		return selectedStyle.Render(text)
	case now.Year() == cur.Year && now.Month() == cur.Month && now.Day() == day:
		return todayStyle.Render(text)
	}
	return cellStyle.Render(text)
}

// renderMonthGrid draws the twelve Thai month names, three per row.
func (m Model) renderMonthGrid() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d", m.core.Cursor.Year+becodec.BEOffset)))
	b.WriteString("\n")

	for i, name := range thaical.ThaiMonths {
		if i > 0 && i%3 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		text := padCell(name, 12)
		switch {
		case m.focus == focusCalendar && i == m.cell:
			b.WriteString(highlightStyle.Render(text))
		case time.Month(i+1) == m.core.Cursor.Month:
			b.WriteString(selectedStyle.Render(text))
		default:
			b.WriteString(cellStyle.Render(text))
		}
	}
	return b.String()
}

// renderYearGrid draws the twelve-year BE window, three per row.
func (m Model) renderYearGrid() string {
	window := thaical.YearWindow(m.core.Cursor.Year + becodec.BEOffset)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d - %d", window[0], window[len(window)-1])))
	b.WriteString("\n")

	for i, year := range window {
		if i > 0 && i%3 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		text := padCell(fmt.Sprintf("%d", year), 6)
		switch {
		case m.focus == focusCalendar && i == m.cell:
			b.WriteString(highlightStyle.Render(text))
		case year == m.core.Cursor.Year+becodec.BEOffset:
			b.WriteString(selectedStyle.Render(text))
		default:
			b.WriteString(cellStyle.Render(text))
		}
	}
	return b.String()
}

// renderTimeRow draws the pending hour and minute spinners.
func (m Model) renderTimeRow() string {
	hour := fmt.Sprintf("%02d", m.core.Time.Hour)
	minute := fmt.Sprintf("%02d", m.core.Time.Minute)

	if m.focus == focusTime {
		if m.timeField == core.FieldHour {
			hour = highlightStyle.Render(hour)
			minute = cellStyle.Render(minute)
		} else {
			hour = cellStyle.Render(hour)
			minute = highlightStyle.Render(minute)
		}
	}
	return fmt.Sprintf("เวลา %s : %s", hour, minute)
}

func (m Model) renderFooter() string {
	var help string
	switch m.focus {
	case focusField:
		help = "type digits • enter confirm • tab calendar • esc cancel"
	case focusCalendar:
		help = "←↑↓→ move • enter select • p/n page • v view • t today • c clear • tab next • esc cancel"
	case focusTime:
		help = "←/→ field • ↑/↓ adjust • enter confirm • tab next • esc cancel"
	}
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, "…")
	}
	return helpStyle.Render(help)
}

// padCell right-pads s to the given display width.
func padCell(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
