// Package thaical provides the calendar arithmetic behind the Buddhist-Era
// date picker: days-in-month, first-weekday offsets, day-grid construction,
// and the 12-year paging window used by the year view. All arithmetic is done
// in Gregorian (AD) terms; Buddhist-Era numbering only appears where years
// are labeled for display.
package thaical

import "time"

// YearWindowSize is the number of years shown per page in the year view.
const YearWindowSize = 12

// ThaiMonths holds the Thai month names, January first.
var ThaiMonths = [12]string{
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

// ThaiWeekdays holds abbreviated Thai weekday names, Sunday first to match
// the grid's week-start column.
var ThaiWeekdays = [7]string{"อา", "จ", "อ", "พ", "พฤ", "ศ", "ส"}

// DaysInMonth returns the number of days in the given Gregorian month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index (0 = Sunday) of day 1 of the month.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthGrid returns the ordered day-view cells for a month: FirstWeekday
// leading zeros (blank cells aligning day 1 to its weekday column) followed
// by the day numbers 1..DaysInMonth.
func MonthGrid(year int, month time.Month) []int {
	lead := FirstWeekday(year, month)
	days := DaysInMonth(year, month)
	cells := make([]int, lead+days)
	for d := 1; d <= days; d++ {
		cells[lead+d-1] = d
	}
	return cells
}

// YearWindow returns the page of BE years shown in the year view. The window
// starts six years before the given year, placing it seventh of twelve.
func YearWindow(beYear int) []int {
	years := make([]int, YearWindowSize)
	for i := range years {
		years[i] = beYear - 6 + i
	}
	return years
}
