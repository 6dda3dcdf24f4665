// Package inputmask turns raw typed digits into a punctuated Buddhist-Era
// display string, one keystroke at a time. Date-only input masks eight
// digits as DD/MM/YYYY; date+time input masks twelve as DD/MM/YYYY HH:mm.
package inputmask

import "strings"

const (
	dateDigits = 8
	timeDigits = 12

	dateFullLen = len("18/02/2569")
	timeFullLen = len("18/02/2569 14:30")
)

// MaxDigits returns the digit capacity for the mode.
func MaxDigits(withTime bool) int {
	if withTime {
		return timeDigits
	}
	return dateDigits
}

// FullLen returns the punctuated length of a complete entry for the mode.
func FullLen(withTime bool) int {
	if withTime {
		return timeFullLen
	}
	return dateFullLen
}

// Digits strips every non-digit character from s and truncates the result
// to the mode's capacity.
func Digits(s string, withTime bool) string {
	max := MaxDigits(withTime)
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// Format re-punctuates the digits of s left to right: two day digits, a
// slash, two month digits, a slash, four year digits, then (time mode) a
// space, two hour digits, a colon, and two minute digits.
func Format(s string, withTime bool) string {
	d := Digits(s, withTime)
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch {
		case i == 2 || i == 4:
			b.WriteByte('/')
		case withTime && i == 8:
			b.WriteByte(' ')
		case withTime && i == 10:
			b.WriteByte(':')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// Complete reports whether s masks to a full-length entry, ready to decode.
func Complete(s string, withTime bool) bool {
	return len(Format(s, withTime)) == FullLen(withTime)
}
