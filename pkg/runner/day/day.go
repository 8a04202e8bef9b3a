// Package day prints one day's full page: level header, tasks, and the
// record timeline.
package day

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/printers"
)

type Day struct {
	Date   string
	ShowID bool

	Service *app.Service
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show day, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	rec := n.Service.Day(date)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Header(n.Service.Settings(), n.Service.Stats().PerfectDays)
	pp.NewLine()
	pp.Title(date)
	fmt.Println("tasks")
	pp.Tasks(rec.Tasks)
	fmt.Println("records")
	pp.Timeline(rec.Timeline())
	return nil
}
