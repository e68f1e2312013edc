package week

import (
	"context"
	"fmt"
	"time"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/calendar"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Week prints one week of the calendar plus the entries written in it.
// Offset zero is the current week.
type Week struct {
	Offset  int
	Service *app.Service
	ShowID  bool
}

func (r *Week) Do(ctx context.Context) error {
	if r.Offset < -calendar.PageHorizon || r.Offset > calendar.PageHorizon {
		return fmt.Errorf("offset %d out of range [%d, %d]",
			r.Offset, -calendar.PageHorizon, calendar.PageHorizon)
	}

	today := time.Now()
	days := calendar.WeekDays(r.Offset, today)
	entries := r.Service.Entries()

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Week(days, today, entries)

	for _, day := range days {
		forDay := r.Service.ForDay(day)
		if len(forDay) == 0 {
			continue
		}
		pp.Title(day.Format("Monday, Jan 2"))
		pp.Entries(forDay...)
	}
	return nil
}
