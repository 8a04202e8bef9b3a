// Package cal prints the month calendar with perfect-day stickers.
package cal

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/printers"
)

const layoutMonth = "2006-01"

type Cal struct {
	Month string

	Service *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	var then time.Time
	if n.Month != "" {
		t, err := time.ParseInLocation(layoutMonth, n.Month, time.Local)
		if err != nil {
			return err
		}
		then = t
	} else {
		t, err := dateutil.ParseDayKey(n.Service.SelectedDate())
		if err != nil {
			return err
		}
		then = t
	}

	pp := printers.PrettyPrint{}
	pp.Header(n.Service.Settings(), n.Service.Stats().PerfectDays)
	pp.NewLine()
	pp.Calendar(then, n.Service.Data())
	return nil
}
