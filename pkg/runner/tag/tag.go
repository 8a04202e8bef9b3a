// Package tag runs the commendation tag verbs.
package tag

import (
	"context"
	"errors"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/printers"
)

type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tags, no service")
	}
	pp := printers.PrettyPrint{}
	pp.Highlights(n.Service.Settings().Highlights)
	return nil
}

type Add struct {
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add tag, no service")
	}
	n.Service.AddHighlight()
	pp := printers.PrettyPrint{}
	pp.Highlights(n.Service.Settings().Highlights)
	return nil
}

type Rename struct {
	ID    int64
	Label string

	Service *app.Service
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename tag, no service")
	}
	if err := n.Service.RenameHighlight(n.ID, n.Label); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Highlights(n.Service.Settings().Highlights)
	return nil
}

type Remove struct {
	ID int64

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove tag, no service")
	}
	if err := n.Service.RemoveHighlight(n.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Highlights(n.Service.Settings().Highlights)
	return nil
}
