// Package ui launches the full-screen terminal interface.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/tui"
)

type UI struct {
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open ui, no service")
	}
	return tui.Run(n.Service)
}
