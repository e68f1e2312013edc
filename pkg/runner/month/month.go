package month

import (
	"context"
	"fmt"
	"time"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/calendar"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Month prints a month grid with entry markers. Offset zero is the
// current month.
type Month struct {
	Offset  int
	Service *app.Service
	ShowID  bool
}

func (r *Month) Do(ctx context.Context) error {
	if r.Offset < -calendar.PageHorizon || r.Offset > calendar.PageHorizon {
		return fmt.Errorf("offset %d out of range [%d, %d]",
			r.Offset, -calendar.PageHorizon, calendar.PageHorizon)
	}

	today := time.Now()
	then := calendar.MonthForOffset(r.Offset, today)

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Month(then, r.Service.Entries())
	return nil
}
