// Package stats prints the cross-day report.
package stats

import (
	"context"
	"errors"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/printers"
)

type Stats struct {
	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show stats, no service")
	}
	pp := printers.PrettyPrint{}
	pp.Header(n.Service.Settings(), n.Service.Stats().PerfectDays)
	pp.NewLine()
	pp.Stats(n.Service.Stats())
	return nil
}
