package picker

import (
	"testing"
	"time"

	"github.com/teera/bepick/internal/becodec"
)

// Fixed reference time: Wednesday, 2026-02-18 14:30:00 local.
var testNow = time.Date(2026, 2, 18, 14, 30, 0, 0, time.Local)

func TestKeystroke_CompletionEmitsCanonical(t *testing.T) {
	s := New(false, testNow)
	s, emit := Reduce(s, KeystrokeChanged{Text: "18022569", Now: testNow})

	if s.Display != "18/02/2569" {
		t.Errorf("Display = %q, want %q", s.Display, "18/02/2569")
	}
	if !emit.Fired || emit.Canonical != "2026-02-18" {
		t.Errorf("emit = %+v, want fired canonical %q", emit, "2026-02-18")
	}
	if s.Cursor.Year != 2026 || s.Cursor.Month != time.February {
		t.Errorf("Cursor = %+v, want February 2026", s.Cursor)
	}
}

func TestKeystroke_CompletionWithTime(t *testing.T) {
	s := New(true, testNow)
	s, emit := Reduce(s, KeystrokeChanged{Text: "180225691430", Now: testNow})

	if s.Display != "18/02/2569 14:30" {
		t.Errorf("Display = %q, want %q", s.Display, "18/02/2569 14:30")
	}
	if !emit.Fired || emit.Canonical != "2026-02-18 14:30" {
		t.Errorf("emit = %+v, want fired canonical %q", emit, "2026-02-18 14:30")
	}
	if s.Time.Hour != 14 || s.Time.Minute != 30 {
		t.Errorf("Time = %+v, want 14:30", s.Time)
	}
}

func TestKeystroke_PartialEmitsNothing(t *testing.T) {
	s := New(false, testNow)
	s, emit := Reduce(s, KeystrokeChanged{Text: "1802", Now: testNow})

	if s.Display != "18/02" {
		t.Errorf("Display = %q, want %q", s.Display, "18/02")
	}
	if emit.Fired {
		t.Errorf("partial input fired emit %+v", emit)
	}
}

func TestKeystroke_EmptyEmitsClear(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, KeystrokeChanged{Text: "18022569", Now: testNow})
	s, emit := Reduce(s, KeystrokeChanged{Text: "", Now: testNow})

	if !emit.Fired || emit.Canonical != "" {
		t.Errorf("emit = %+v, want fired empty canonical", emit)
	}
	if s.Display != "" {
		t.Errorf("Display = %q, want empty", s.Display)
	}
}

func TestKeystroke_InvalidCompleteKeepsTextEmitsClear(t *testing.T) {
	s := New(false, testNow)
	s, emit := Reduce(s, KeystrokeChanged{Text: "30022568", Now: testNow})

	if !emit.Fired || emit.Canonical != "" {
		t.Errorf("emit = %+v, want fired empty canonical for invalid date", emit)
	}
	// The malformed text stays visible for correction.
	if s.Display != "30/02/2568" {
		t.Errorf("Display = %q, want %q", s.Display, "30/02/2568")
	}
}

func TestSync_UnchangedValueDoesNotClobberTyping(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "2026-02-10", Now: testNow})

	// User starts retyping: partial text, then the host re-pushes the same
	// unchanged value. The text must survive.
	s, _ = Reduce(s, KeystrokeChanged{Text: "18/02/", Now: testNow})
	s, emit := Reduce(s, ExternalValueChanged{Canonical: "2026-02-10", Now: testNow})

	if s.Display != "18/02" {
		t.Errorf("Display = %q, want partial text preserved", s.Display)
	}
	if emit.Fired {
		t.Errorf("sync fired %+v, want nothing", emit)
	}
}

func TestSync_EchoOfTypedValueDoesNotRewrite(t *testing.T) {
	s := New(false, testNow)
	s, emit := Reduce(s, KeystrokeChanged{Text: "18022569", Now: testNow})
	if emit.Canonical != "2026-02-18" {
		t.Fatalf("setup emit = %+v", emit)
	}

	// Host echoes the committed value straight back.
	s, emit = Reduce(s, ExternalValueChanged{Canonical: "2026-02-18", Now: testNow})
	if emit.Fired {
		t.Errorf("echo fired %+v, want nothing", emit)
	}
	if s.Display != "18/02/2569" {
		t.Errorf("Display = %q, want unchanged", s.Display)
	}
}

func TestSync_NewExternalValueOverwritesDisplay(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, KeystrokeChanged{Text: "18022569", Now: testNow})
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "2026-03-05", Now: testNow})

	if s.Display != "05/03/2569" {
		t.Errorf("Display = %q, want %q", s.Display, "05/03/2569")
	}
	if s.Cursor.Month != time.March {
		t.Errorf("Cursor.Month = %v, want March", s.Cursor.Month)
	}
}

func TestSync_ExternalClearWipesDisplay(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "2026-02-18", Now: testNow})
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "", Now: testNow})

	if s.Display != "" {
		t.Errorf("Display = %q, want empty after explicit clear", s.Display)
	}
}

func TestSync_UnparsableNonEmptyValueKeepsDisplay(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "2026-02-18", Now: testNow})
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "garbage", Now: testNow})

	if s.Display != "18/02/2569" {
		t.Errorf("Display = %q, want preserved on transient parse failure", s.Display)
	}
}

func TestNavigation_YearThenMonthSelection(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, ModeChanged{Mode: ModeYear})

	s, _ = Reduce(s, YearSelected{BEYear: 2569})
	if s.Mode != ModeMonth {
		t.Fatalf("Mode = %v, want ModeMonth after year selection", s.Mode)
	}
	if s.Cursor.Year != 2026 {
		t.Errorf("Cursor.Year = %d, want 2026 (AD)", s.Cursor.Year)
	}

	s, _ = Reduce(s, MonthSelected{Month: time.March})
	if s.Mode != ModeDay {
		t.Fatalf("Mode = %v, want ModeDay after month selection", s.Mode)
	}
	if s.Cursor.Month != time.March || s.Cursor.Year != 2026 {
		t.Errorf("Cursor = %+v, want March 2026", s.Cursor)
	}
}

func TestNavigation_SelectionIgnoredInWrongMode(t *testing.T) {
	s := New(false, testNow)
	before := s.Cursor
	s, _ = Reduce(s, YearSelected{BEYear: 2500}) // day mode: ignored
	if s.Cursor != before || s.Mode != ModeDay {
		t.Errorf("year selection in day mode changed state: %+v", s)
	}
}

func TestPaging(t *testing.T) {
	tests := []struct {
		name      string
		mode      ViewMode
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{"day mode next month", ModeDay, 1, 2026, time.March},
		{"day mode prev month", ModeDay, -1, 2026, time.January},
		{"month mode next year", ModeMonth, 1, 2027, time.February},
		{"year mode next window", ModeYear, 1, 2038, time.February},
		{"year mode prev window", ModeYear, -1, 2014, time.February},
	}
	for _, tt := range tests {
		s := New(false, testNow)
		s.Mode = tt.mode
		s, _ = Reduce(s, Paged{Delta: tt.delta})
		if s.Cursor.Year != tt.wantYear || s.Cursor.Month != tt.wantMonth {
			t.Errorf("%s: Cursor = %+v, want %v %d", tt.name, s.Cursor, tt.wantMonth, tt.wantYear)
		}
	}
}

func TestPaging_MonthRollsOverYear(t *testing.T) {
	s := New(false, testNow)
	s.Cursor = Cursor{Year: 2026, Month: time.December}
	s, _ = Reduce(s, Paged{Delta: 1})
	if s.Cursor.Year != 2027 || s.Cursor.Month != time.January {
		t.Errorf("Cursor = %+v, want January 2027", s.Cursor)
	}
}

func TestDaySelected_DateOnlyClosesPicker(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, Opened{Now: testNow})
	s, emit := Reduce(s, DaySelected{Day: 23})

	if !emit.Fired || emit.Canonical != "2026-02-23" {
		t.Errorf("emit = %+v, want canonical 2026-02-23", emit)
	}
	if !emit.ClosePicker || s.Open {
		t.Errorf("date-only selection should close the picker, got emit=%+v open=%v", emit, s.Open)
	}
	if s.Display != "23/02/2569" {
		t.Errorf("Display = %q, want 23/02/2569", s.Display)
	}
}

func TestDaySelected_TimeEnabledStaysOpen(t *testing.T) {
	s := New(true, testNow)
	s, _ = Reduce(s, Opened{Now: testNow})
	s, emit := Reduce(s, DaySelected{Day: 23})

	if !emit.Fired || emit.Canonical != "2026-02-23 14:30" {
		t.Errorf("emit = %+v, want canonical with seeded time", emit)
	}
	if emit.ClosePicker || !s.Open {
		t.Errorf("time-enabled selection must defer closing, got emit=%+v open=%v", emit, s.Open)
	}
}

func TestDaySelected_NonexistentDayIgnored(t *testing.T) {
	s := New(false, testNow)
	s, _ = Reduce(s, Opened{Now: testNow})
	s, emit := Reduce(s, DaySelected{Day: 30}) // February

	if emit.Fired {
		t.Errorf("emit = %+v, want nothing for a nonexistent day", emit)
	}
}

func TestTimeFieldChanged_ReemitsCommittedValue(t *testing.T) {
	s := New(true, testNow)
	s, _ = Reduce(s, KeystrokeChanged{Text: "180225691430", Now: testNow})

	s, emit := Reduce(s, TimeFieldChanged{Field: FieldHour, Value: 9})
	if !emit.Fired || emit.Canonical != "2026-02-18 09:30" {
		t.Errorf("emit = %+v, want re-emission with hour 09", emit)
	}
	if s.Display != "18/02/2569 09:30" {
		t.Errorf("Display = %q, want updated time", s.Display)
	}

	s, emit = Reduce(s, TimeFieldChanged{Field: FieldMinute, Value: 5})
	if !emit.Fired || emit.Canonical != "2026-02-18 09:05" {
		t.Errorf("emit = %+v, want re-emission with minute 05", emit)
	}
}

func TestTimeFieldChanged_NoSelectionEmitsNothing(t *testing.T) {
	s := New(true, testNow)
	s, emit := Reduce(s, TimeFieldChanged{Field: FieldHour, Value: 9})

	if emit.Fired {
		t.Errorf("emit = %+v, want nothing before a date is chosen", emit)
	}
	if s.Time.Hour != 9 {
		t.Errorf("Time.Hour = %d, want pending time still updated", s.Time.Hour)
	}
}

func TestTimeFieldChanged_OutOfRangeIgnored(t *testing.T) {
	s := New(true, testNow)
	s, _ = Reduce(s, TimeFieldChanged{Field: FieldHour, Value: 24})
	if s.Time.Hour != 14 {
		t.Errorf("Time.Hour = %d, want unchanged", s.Time.Hour)
	}
	s, _ = Reduce(s, TimeFieldChanged{Field: FieldMinute, Value: -1})
	if s.Time.Minute != 30 {
		t.Errorf("Time.Minute = %d, want unchanged", s.Time.Minute)
	}
}

func TestToday(t *testing.T) {
	s := New(false, testNow)
	s.Cursor = Cursor{Year: 2010, Month: time.June}
	s, emit := Reduce(s, TodayRequested{Now: testNow})

	if !emit.Fired || emit.Canonical != "2026-02-18" {
		t.Errorf("emit = %+v, want today's canonical", emit)
	}
	if !emit.ClosePicker {
		t.Error("date-only today must close the picker")
	}
	if s.Cursor.Year != 2026 || s.Cursor.Month != time.February {
		t.Errorf("Cursor = %+v, want February 2026", s.Cursor)
	}
}

func TestOpened_ResetsModeAndSeedsFromSelection(t *testing.T) {
	s := New(true, testNow)
	s, _ = Reduce(s, ExternalValueChanged{Canonical: "2026-03-05 08:15", Now: testNow})
	s.Mode = ModeYear
	s.Cursor = Cursor{Year: 1999, Month: time.June}

	s, _ = Reduce(s, Opened{Now: testNow})
	if !s.Open || s.Mode != ModeDay {
		t.Errorf("open state = open=%v mode=%v, want open day mode", s.Open, s.Mode)
	}
	if s.Cursor.Year != 2026 || s.Cursor.Month != time.March {
		t.Errorf("Cursor = %+v, want seeded from selection", s.Cursor)
	}
	if s.Time.Hour != 8 || s.Time.Minute != 15 {
		t.Errorf("Time = %+v, want seeded 08:15", s.Time)
	}
}

func TestDisabled_SuppressesInteraction(t *testing.T) {
	s := New(false, testNow)
	s.Disabled = true

	s, _ = Reduce(s, Opened{Now: testNow})
	if s.Open {
		t.Error("disabled control opened")
	}

	before := s
	for _, ev := range []Event{
		Paged{Delta: 1},
		ModeChanged{Mode: ModeYear},
		DaySelected{Day: 10},
		TodayRequested{Now: testNow},
	} {
		next, emit := Reduce(s, ev)
		if emit.Fired {
			t.Errorf("disabled control fired %+v for %T", emit, ev)
		}
		if next.Cursor != before.Cursor || next.Mode != before.Mode {
			t.Errorf("disabled control transitioned on %T: %+v", ev, next)
		}
	}

	// Masking still computes while disabled.
	s, emit := Reduce(s, KeystrokeChanged{Text: "18022569", Now: testNow})
	if s.Display != "18/02/2569" || !emit.Fired {
		t.Errorf("masking while disabled: display=%q emit=%+v", s.Display, emit)
	}
}

func TestSelected(t *testing.T) {
	s := New(false, testNow)
	if s.Selected() != nil {
		t.Error("fresh state has a selection")
	}
	s, _ = Reduce(s, KeystrokeChanged{Text: "18022569", Now: testNow})
	sel := s.Selected()
	want := becodec.Instant{Year: 2026, Month: time.February, Day: 18}
	if sel == nil || !sel.Equal(want) {
		t.Errorf("Selected() = %+v, want %+v", sel, want)
	}
}
