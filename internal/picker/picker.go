// Package picker holds the non-visual core of the Buddhist-Era date picker:
// a single reducer over an explicit state bundle. Keystrokes, calendar
// clicks, and externally pushed canonical values all arrive as events; every
// transition is a pure, synchronous computation that returns the next state
// plus whatever the host must be told. The presentation layer renders State
// and forwards events; it owns nothing.
package picker

import (
	"time"

	"github.com/teera/bepick/internal/becodec"
)

// ViewMode is the calendar browsing granularity.
type ViewMode int

const (
	ModeDay ViewMode = iota
	ModeMonth
	ModeYear
)

// Cursor is the AD month currently browsed in the calendar grid. It is
// independent of the selected value; the day of month is not meaningful.
type Cursor struct {
	Year  int
	Month time.Month
}

// TimeOfDay is the hour/minute pending attachment to the next selection.
// Meaningful only when the control is time-enabled.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeField names the TimeOfDay field a TimeFieldChanged event updates.
type TimeField int

const (
	FieldHour TimeField = iota
	FieldMinute
)

// State bundles all core picker state. Values are never mutated in place;
// Reduce returns a new State for every event.
type State struct {
	Display  string // BE-formatted entry text, possibly partial mid-edit
	External string // last canonical value seen from (or committed to) the host
	Mode     ViewMode
	Cursor   Cursor
	Time     TimeOfDay
	Open     bool
	WithTime bool
	Disabled bool
}

// Emit describes what a transition asks of the host. Fired with an empty
// Canonical means "clear the selection" (explicit clear or invalid entry);
// an unfired Emit leaves the host's value untouched.
type Emit struct {
	Fired       bool
	Canonical   string
	ClosePicker bool
}

// Event is the closed set of inputs the core reacts to. Events that consult
// the clock carry the reference time as a field so transitions stay
// deterministic under test.
type Event interface{ isEvent() }

// KeystrokeChanged carries the entry field's raw text after a keystroke.
type KeystrokeChanged struct {
	Text string
	Now  time.Time
}

// ExternalValueChanged carries a canonical value pushed by the host,
// including the initial value on mount.
type ExternalValueChanged struct {
	Canonical string
	Now       time.Time
}

// DaySelected is a click on a day cell; meaningful only in day mode.
type DaySelected struct{ Day int }

// MonthSelected is a click on a month entry; meaningful only in month mode.
type MonthSelected struct{ Month time.Month }

// YearSelected is a click on a year entry (BE numbering); meaningful only
// in year mode.
type YearSelected struct{ BEYear int }

// TimeFieldChanged updates one field of the pending time of day.
type TimeFieldChanged struct {
	Field TimeField
	Value int
}

// TodayRequested selects the current real date (and time, when enabled).
type TodayRequested struct{ Now time.Time }

// Cleared drops the selection and the entry text.
type Cleared struct{}

// Paged moves the cursor by Delta units; the unit depends on the mode
// (month in day mode, year in month mode, twelve years in year mode).
type Paged struct{ Delta int }

// ModeChanged switches the browsing granularity.
type ModeChanged struct{ Mode ViewMode }

// Opened opens the popover, resetting to day mode and seeding the cursor
// and pending time from the current selection or the reference time.
type Opened struct{ Now time.Time }

// Closed closes the popover.
type Closed struct{}

func (KeystrokeChanged) isEvent()     {}
func (ExternalValueChanged) isEvent() {}
func (DaySelected) isEvent()          {}
func (MonthSelected) isEvent()        {}
func (YearSelected) isEvent()         {}
func (TimeFieldChanged) isEvent()     {}
func (TodayRequested) isEvent()       {}
func (Cleared) isEvent()              {}
func (Paged) isEvent()                {}
func (ModeChanged) isEvent()          {}
func (Opened) isEvent()               {}
func (Closed) isEvent()               {}

// New returns the initial state for a control. The time-enabled flag is
// fixed for the control's lifetime.
func New(withTime bool, now time.Time) State {
	return State{
		Mode:     ModeDay,
		Cursor:   Cursor{Year: now.Year(), Month: now.Month()},
		Time:     TimeOfDay{Hour: now.Hour(), Minute: now.Minute()},
		WithTime: withTime,
	}
}

// Selected returns the currently committed instant, or nil when no valid
// value is selected.
func (s State) Selected() *becodec.Instant {
	return becodec.ParseCanonical(s.External, s.WithTime)
}
