package picker

import (
	"time"

	"github.com/teera/bepick/internal/becodec"
	"github.com/teera/bepick/internal/inputmask"
	"github.com/teera/bepick/internal/thaical"
)

// Reduce applies one event and returns the next state plus the host-facing
// emission. Events arrive one at a time and run to completion; re-entrant
// value pushes terminate on the equality short-circuit in sync.
func Reduce(s State, ev Event) (State, Emit) {
	switch ev := ev.(type) {
	case KeystrokeChanged:
		return s.keystroke(ev)
	case ExternalValueChanged:
		return s.sync(ev)
	case DaySelected:
		return s.selectDay(ev.Day)
	case MonthSelected:
		if s.Disabled || s.Mode != ModeMonth {
			return s, Emit{}
		}
		s.Cursor.Month = ev.Month
		s.Mode = ModeDay
		return s, Emit{}
	case YearSelected:
		if s.Disabled || s.Mode != ModeYear {
			return s, Emit{}
		}
		s.Cursor.Year = ev.BEYear - becodec.BEOffset
		s.Mode = ModeMonth
		return s, Emit{}
	case TimeFieldChanged:
		return s.changeTime(ev)
	case TodayRequested:
		return s.today(ev.Now)
	case Cleared:
		s.Display = ""
		s.External = ""
		return s, Emit{Fired: true}
	case Paged:
		if s.Disabled {
			return s, Emit{}
		}
		s.Cursor = s.Cursor.page(s.Mode, ev.Delta)
		return s, Emit{}
	case ModeChanged:
		if s.Disabled {
			return s, Emit{}
		}
		s.Mode = ev.Mode
		return s, Emit{}
	case Opened:
		return s.open(ev.Now), Emit{}
	case Closed:
		s.Open = false
		return s, Emit{}
	}
	return s, Emit{}
}

// keystroke re-masks the entry text and, on completion, attempts a full
// decode. Partial input emits nothing; empty input emits an explicit clear;
// a complete but invalid entry emits a clear while leaving the text visible
// for correction.
func (s State) keystroke(ev KeystrokeChanged) (State, Emit) {
	digits := inputmask.Digits(ev.Text, s.WithTime)
	s.Display = inputmask.Format(ev.Text, s.WithTime)

	if digits == "" {
		s.External = ""
		return s, Emit{Fired: true}
	}
	if !inputmask.Complete(s.Display, s.WithTime) {
		return s, Emit{}
	}

	in := becodec.ParseDisplayAt(s.Display, s.WithTime, ev.Now)
	if in == nil {
		s.External = ""
		return s, Emit{Fired: true}
	}
	s.Cursor = Cursor{Year: in.Year, Month: in.Month}
	if s.WithTime {
		s.Time = TimeOfDay{Hour: in.Hour, Minute: in.Minute}
	}
	canonical := becodec.FormatCanonical(in)
	s.External = canonical
	return s, Emit{Fired: true, Canonical: canonical}
}

// sync reconciles a host-pushed canonical value with in-progress entry
// text. It runs only when the value actually changed, never overwrites
// text that already denotes the same instant, and clears the text only on
// an explicitly empty value, not on a merely unparsable one.
func (s State) sync(ev ExternalValueChanged) (State, Emit) {
	if ev.Canonical == s.External {
		return s, Emit{}
	}
	s.External = ev.Canonical

	typed := becodec.ParseDisplayAt(s.Display, s.WithTime, ev.Now)
	external := becodec.ParseCanonical(ev.Canonical, s.WithTime)

	if typed != nil && external != nil && typed.Equal(*external) {
		return s, Emit{}
	}
	if external != nil {
		s.Display = becodec.FormatDisplay(external)
		s.Cursor = Cursor{Year: external.Year, Month: external.Month}
		if s.WithTime {
			s.Time = TimeOfDay{Hour: external.Hour, Minute: external.Minute}
		}
		return s, Emit{}
	}
	if ev.Canonical == "" {
		s.Display = ""
	}
	return s, Emit{}
}

// selectDay combines a clicked day with the cursor month/year and the
// pending time into a new committed value. Date-only controls close on
// selection; time-enabled controls keep the popover open for an explicit
// confirmation.
func (s State) selectDay(day int) (State, Emit) {
	if s.Disabled || s.Mode != ModeDay {
		return s, Emit{}
	}
	in := &becodec.Instant{
		Year:     s.Cursor.Year,
		Month:    s.Cursor.Month,
		Day:      day,
		WithTime: s.WithTime,
	}
	if s.WithTime {
		in.Hour, in.Minute = s.Time.Hour, s.Time.Minute
	}
	canonical := becodec.FormatCanonical(in)
	if canonical == "" {
		return s, Emit{}
	}
	s.Display = becodec.FormatDisplay(in)
	s.External = canonical
	emit := Emit{Fired: true, Canonical: canonical}
	if !s.WithTime {
		s.Open = false
		emit.ClosePicker = true
	}
	return s, emit
}

// changeTime updates the pending time of day and, when a value is already
// committed, re-emits it with the new time applied. Changing the time
// before any date is chosen emits nothing.
func (s State) changeTime(ev TimeFieldChanged) (State, Emit) {
	if s.Disabled || !s.WithTime {
		return s, Emit{}
	}
	switch ev.Field {
	case FieldHour:
		if ev.Value < 0 || ev.Value > 23 {
			return s, Emit{}
		}
		s.Time.Hour = ev.Value
	case FieldMinute:
		if ev.Value < 0 || ev.Value > 59 {
			return s, Emit{}
		}
		s.Time.Minute = ev.Value
	}

	selected := s.Selected()
	if selected == nil {
		return s, Emit{}
	}
	selected.Hour, selected.Minute = s.Time.Hour, s.Time.Minute
	canonical := becodec.FormatCanonical(selected)
	s.Display = becodec.FormatDisplay(selected)
	s.External = canonical
	return s, Emit{Fired: true, Canonical: canonical}
}

// today commits the current real date and time.
func (s State) today(now time.Time) (State, Emit) {
	if s.Disabled {
		return s, Emit{}
	}
	in := &becodec.Instant{
		Year:     now.Year(),
		Month:    now.Month(),
		Day:      now.Day(),
		WithTime: s.WithTime,
	}
	if s.WithTime {
		in.Hour, in.Minute = now.Hour(), now.Minute()
	}
	s.Cursor = Cursor{Year: in.Year, Month: in.Month}
	s.Time = TimeOfDay{Hour: in.Hour, Minute: in.Minute}
	canonical := becodec.FormatCanonical(in)
	s.Display = becodec.FormatDisplay(in)
	s.External = canonical
	emit := Emit{Fired: true, Canonical: canonical}
	if !s.WithTime {
		s.Open = false
		emit.ClosePicker = true
	}
	return s, emit
}

// open resets browsing to day mode and seeds the cursor and pending time
// from the committed value, falling back to the reference time.
func (s State) open(now time.Time) State {
	if s.Disabled {
		return s
	}
	s.Open = true
	s.Mode = ModeDay
	if sel := s.Selected(); sel != nil {
		s.Cursor = Cursor{Year: sel.Year, Month: sel.Month}
		if s.WithTime {
			s.Time = TimeOfDay{Hour: sel.Hour, Minute: sel.Minute}
		}
		return s
	}
	s.Cursor = Cursor{Year: now.Year(), Month: now.Month()}
	if s.WithTime {
		s.Time = TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}
	}
	return s
}

// page moves the cursor by delta units of the mode's granularity: one
// month in day mode, one year in month mode, one twelve-year window in
// year mode. Month paging rolls the year over naturally.
func (c Cursor) page(mode ViewMode, delta int) Cursor {
	switch mode {
	case ModeDay:
		t := time.Date(c.Year, c.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
		return Cursor{Year: t.Year(), Month: t.Month()}
	case ModeMonth:
		return Cursor{Year: c.Year + delta, Month: c.Month}
	case ModeYear:
		return Cursor{Year: c.Year + thaical.YearWindowSize*delta, Month: c.Month}
	}
	return c
}
