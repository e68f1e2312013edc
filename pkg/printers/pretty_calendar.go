package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cyclehq/cycle/pkg/calendar"
	"github.com/cyclehq/cycle/pkg/journal"
)

const width = len("Su Mo Tu We Th Fr Sa")

// Week prints one 7-day strip with indicator dots under days that have
// entries, the way the week pager renders in the app.
func (pp *PrettyPrint) Week(days []time.Time, today time.Time, entries []journal.Entry) {
	h := color.New(color.Faint)
	p := color.New()
	b := color.New(color.Bold, color.Underline)
	d := color.New(color.FgHiYellow)

	for _, day := range days {
		_, _ = h.Printf("%s ", day.Format("Mon")[:2])
	}
	fmt.Print("\n")
	for _, day := range days {
		printer := p
		if calendar.SameDay(day, today) {
			printer = b
		}
		_, _ = printer.Printf("%2d ", day.Day())
	}
	fmt.Print("\n")
	for _, day := range days {
		if calendar.HasEntries(day, entries) {
			_, _ = d.Print(" • ")
		} else {
			fmt.Print("   ")
		}
	}
	fmt.Print("\n\n")
}

// Month prints the fixed 6-week grid for the month containing then. Days
// outside the month render faint; days with entries render bold.
func (pp *PrettyPrint) Month(then time.Time, entries []journal.Entry) {
	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	out := color.New(color.Faint, color.Italic)
	today := color.New(color.Bold, color.Underline)

	now := time.Now()
	for i, day := range calendar.MonthGrid(then) {
		printer := l1
		switch {
		case calendar.SameDay(day, now):
			printer = today
		case day.Month() != then.Month():
			printer = out
		case calendar.HasEntries(day, entries):
			printer = l2
		}
		_, _ = printer.Printf("%2d ", day.Day())

		if (i+1)%calendar.DaysPerWeek == 0 {
			fmt.Print("\n")
		}
	}
	fmt.Print("\n")
}
