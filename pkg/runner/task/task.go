// Package task runs the task verbs: save, toggle, and delete.
package task

import (
	"context"
	"errors"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/printers"
)

type Save struct {
	Date   string
	Form   app.TaskForm
	EditID int64
	ShowID bool

	Service *app.Service
}

func (n *Save) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save task, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	if err := n.Service.SaveTask(n.Form, n.EditID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	date := n.Service.SelectedDate()
	pp.Title(date)
	pp.Tasks(n.Service.Day(date).Tasks)
	return nil
}

type Toggle struct {
	Date   string
	ID     int64
	ShowID bool

	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle task, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.ToggleTask(date, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(date)
	pp.Header(n.Service.Settings(), n.Service.Stats().PerfectDays)
	pp.Tasks(n.Service.Day(date).Tasks)
	return nil
}

type Delete struct {
	Date string
	ID   int64

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete task, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.DeleteTask(date, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(date)
	pp.Tasks(n.Service.Day(date).Tasks)
	return nil
}
