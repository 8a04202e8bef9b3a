// Package record runs the record verbs: reading, practice, game, and
// delete.
package record

import (
	"context"
	"errors"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/journal"
	"tableflip.dev/winterplan/pkg/printers"
)

type Reading struct {
	Date  string
	Title string
	Stars int

	Service *app.Service
}

func (n *Reading) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add reading, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.AddReading(date, n.Title, n.Stars); err != nil {
		return err
	}
	return show(n.Service, date)
}

type Practice struct {
	Date string
	Time string

	Service *app.Service
}

func (n *Practice) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add practice, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.AddPractice(date, n.Time); err != nil {
		return err
	}
	return show(n.Service, date)
}

type Game struct {
	Date        string
	Result      journal.Result
	Opponent    string
	HighlightID int64

	Service *app.Service
}

func (n *Game) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add game, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.AddGame(date, n.Result, n.Opponent, n.HighlightID); err != nil {
		return err
	}
	return show(n.Service, date)
}

type Delete struct {
	Date string
	Kind journal.Kind
	ID   string

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete record, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.DeleteRecord(date, n.Kind, n.ID); err != nil {
		return err
	}
	return show(n.Service, date)
}

func show(s *app.Service, date string) error {
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(date)
	pp.Header(s.Settings(), s.Stats().PerfectDays)
	pp.Timeline(s.Timeline(date))
	return nil
}
