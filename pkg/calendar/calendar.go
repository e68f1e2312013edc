// Package calendar maps signed week/month offsets from "today" onto concrete
// dates for the paging calendar views. Weeks start on Sunday.
package calendar

import (
	"time"

	"github.com/cyclehq/cycle/pkg/journal"
)

// DaysPerWeek is the length of a week row; GridCells is the fixed 6-week
// month grid used by the month view.
const (
	DaysPerWeek = 7
	GridCells   = 42
)

// PageHorizon bounds the offsets the paging views render: one year in each
// direction. The math itself is unbounded; this is a product decision.
const PageHorizon = 52

// StartOfWeek returns the most recent Sunday on or before d, at midnight in
// d's location.
func StartOfWeek(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekDays returns the 7 days of the week at the given offset from today.
// Offset 0 is the week containing today; the first element is always the
// Sunday on or before today plus offset weeks.
func WeekDays(offset int, today time.Time) []time.Time {
	sunday := StartOfWeek(today.AddDate(0, 0, offset*DaysPerWeek))
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

// weekOf returns the Sunday-start week-numbering pair for d: the year of the
// week's Sunday, and that week's ordinal within the year counting from the
// first Sunday on or before January 1st.
func weekOf(d time.Time) (year, week int) {
	sunday := StartOfWeek(d)
	year = sunday.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, sunday.Location())
	first := StartOfWeek(jan1)
	week = int(sunday.Sub(first)/(DaysPerWeek*24*time.Hour)) + 1
	return year, week
}

// DateToOffset maps a date back to its week offset from today using a fixed
// 52-weeks-per-year multiplier: offset = yearDiff*52 + weekDiff.
//
// The multiplier is deliberately kept at 52 even though some years contain 53
// weeks, so results can be off by one week near year boundaries. Calendar
// paging has always behaved this way; see DESIGN.md before changing it.
func DateToOffset(date, today time.Time) int {
	dy, dw := weekOf(date)
	ty, tw := weekOf(today)
	return (dy-ty)*52 + (dw - tw)
}

// MonthGrid returns the fixed 42-cell grid for the month containing m: six
// full weeks starting from the Sunday on or before the 1st.
func MonthGrid(m time.Time) []time.Time {
	first := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, m.Location())
	start := StartOfWeek(first)
	cells := make([]time.Time, GridCells)
	for i := range cells {
		cells[i] = start.AddDate(0, 0, i)
	}
	return cells
}

// MonthForOffset returns the first of the month at the given whole-month
// offset from today.
func MonthForOffset(offset int, today time.Time) time.Time {
	base := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return base.AddDate(0, offset, 0)
}

// MonthOffset is the inverse of MonthForOffset: whole months between today's
// month and the month containing date.
func MonthOffset(date, today time.Time) int {
	return (date.Year()-today.Year())*12 + int(date.Month()) - int(today.Month())
}

// HasEntries reports whether any entry falls on the same calendar day as
// date. The views use it to render per-day indicator dots.
func HasEntries(date time.Time, entries []journal.Entry) bool {
	for _, e := range entries {
		if e.Date.SameDay(date) {
			return true
		}
	}
	return false
}

// SameDay reports whether a and b share a calendar day in local time.
func SameDay(a, b time.Time) bool {
	return a.Local().Year() == b.Local().Year() &&
		a.Local().Month() == b.Local().Month() &&
		a.Local().Day() == b.Local().Day()
}
