// Package becodec converts between canonical Gregorian date strings
// (YYYY-MM-DD, optionally with HH:mm) and Buddhist-Era display strings
// (DD/MM/YYYY where the year is AD + 543), with strict validity checking.
// Malformed or non-existent dates never error; they parse to nil.
package becodec

import (
	"fmt"
	"time"
)

// BEOffset is the fixed difference between Buddhist-Era and Gregorian year
// numbering. It is applied only at the string boundary; all arithmetic on
// Instant values stays in AD terms.
const BEOffset = 543

// PlausibleYears bounds the AD year accepted from typed display input. A
// typo in the year field lands centuries away, so display parsing rejects
// anything more than this many years from the reference time. Canonical
// input from the host application is trusted and carries no such window.
const PlausibleYears = 100

// Instant is a validated Gregorian calendar date, optionally carrying a
// wall-clock time of day. Values are never mutated; every change produces
// a new Instant.
type Instant struct {
	Year     int
	Month    time.Month
	Day      int
	Hour     int
	Minute   int
	WithTime bool
}

// Time returns the instant as a time.Time in the local zone.
func (in Instant) Time() time.Time {
	return time.Date(in.Year, in.Month, in.Day, in.Hour, in.Minute, 0, 0, time.Local)
}

// Equal reports exact field equality; hour and minute take part only when
// the time of day is enabled.
func (in Instant) Equal(other Instant) bool {
	if in.Year != other.Year || in.Month != other.Month || in.Day != other.Day {
		return false
	}
	if in.WithTime != other.WithTime {
		return false
	}
	if in.WithTime && (in.Hour != other.Hour || in.Minute != other.Minute) {
		return false
	}
	return true
}

// valid reports whether the instant denotes a real calendar date with an
// in-range time of day. The date fields are rechecked by reconstructing the
// date: rolled-over values (day 31 of a 30-day month) are rejected, never
// normalized.
func valid(in Instant) bool {
	if in.Month < time.January || in.Month > time.December {
		return false
	}
	if in.Day < 1 || in.Day > 31 {
		return false
	}
	if in.Hour < 0 || in.Hour > 23 || in.Minute < 0 || in.Minute > 59 {
		return false
	}
	t := time.Date(in.Year, in.Month, in.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == in.Year && t.Month() == in.Month && t.Day() == in.Day
}

// FormatCanonical renders the canonical AD form, YYYY-MM-DD or
// YYYY-MM-DD HH:mm. A nil or invalid instant renders as "".
func FormatCanonical(in *Instant) string {
	if in == nil || !valid(*in) {
		return ""
	}
	s := fmt.Sprintf("%04d-%02d-%02d", in.Year, int(in.Month), in.Day)
	if in.WithTime {
		s += fmt.Sprintf(" %02d:%02d", in.Hour, in.Minute)
	}
	return s
}

// FormatDisplay renders the Buddhist-Era display form, DD/MM/YYYY or
// DD/MM/YYYY HH:mm, with the year shifted by BEOffset. A nil or invalid
// instant renders as "".
func FormatDisplay(in *Instant) string {
	if in == nil || !valid(*in) {
		return ""
	}
	s := fmt.Sprintf("%02d/%02d/%04d", in.Day, int(in.Month), in.Year+BEOffset)
	if in.WithTime {
		s += fmt.Sprintf(" %02d:%02d", in.Hour, in.Minute)
	}
	return s
}

// ParseCanonical decodes a canonical AD string. The string must have the
// exact expected length and separators, digit-only numeric fields, and must
// denote an existing calendar date; anything else parses to nil.
func ParseCanonical(s string, withTime bool) *Instant {
	wantLen := len("2006-01-02")
	if withTime {
		wantLen = len("2006-01-02 15:04")
	}
	if len(s) != wantLen {
		return nil
	}
	if s[4] != '-' || s[7] != '-' {
		return nil
	}
	year, ok1 := numField(s, 0, 4)
	month, ok2 := numField(s, 5, 2)
	day, ok3 := numField(s, 8, 2)
	if !ok1 || !ok2 || !ok3 {
		return nil
	}
	in := Instant{Year: year, Month: time.Month(month), Day: day, WithTime: withTime}
	if withTime {
		if s[10] != ' ' || s[13] != ':' {
			return nil
		}
		hour, ok4 := numField(s, 11, 2)
		minute, ok5 := numField(s, 14, 2)
		if !ok4 || !ok5 {
			return nil
		}
		in.Hour, in.Minute = hour, minute
	}
	if !valid(in) {
		return nil
	}
	return &in
}

// ParseDisplay decodes a Buddhist-Era display string against the current
// real time. See ParseDisplayAt.
func ParseDisplay(s string, withTime bool) *Instant {
	return ParseDisplayAt(s, withTime, time.Now())
}

// ParseDisplayAt decodes a Buddhist-Era display string. The BE year is
// converted to AD before validation, and the decoded AD year must lie
// within PlausibleYears of the reference time's year. Structure, ranges,
// and calendar existence are checked exactly as in ParseCanonical; any
// failure parses to nil. The explicit reference time keeps tests
// deterministic.
func ParseDisplayAt(s string, withTime bool, now time.Time) *Instant {
	wantLen := len("02/01/2006")
	if withTime {
		wantLen = len("02/01/2006 15:04")
	}
	if len(s) != wantLen {
		return nil
	}
	if s[2] != '/' || s[5] != '/' {
		return nil
	}
	day, ok1 := numField(s, 0, 2)
	month, ok2 := numField(s, 3, 2)
	beYear, ok3 := numField(s, 6, 4)
	if !ok1 || !ok2 || !ok3 {
		return nil
	}
	year := beYear - BEOffset
	if year < now.Year()-PlausibleYears || year > now.Year()+PlausibleYears {
		return nil
	}
	in := Instant{Year: year, Month: time.Month(month), Day: day, WithTime: withTime}
	if withTime {
		if s[10] != ' ' || s[13] != ':' {
			return nil
		}
		hour, ok4 := numField(s, 11, 2)
		minute, ok5 := numField(s, 14, 2)
		if !ok4 || !ok5 {
			return nil
		}
		in.Hour, in.Minute = hour, minute
	}
	if !valid(in) {
		return nil
	}
	return &in
}

// numField reads an n-digit decimal field at offset off. Any non-digit
// byte fails the field.
func numField(s string, off, n int) (int, bool) {
	v := 0
	for i := off; i < off+n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
