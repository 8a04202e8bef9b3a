// Package diary runs the diary verbs: text, mood, show, and export.
package diary

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/canvas"
	"tableflip.dev/winterplan/pkg/printers"
)

type Text struct {
	Date string
	Text string

	Service *app.Service
}

func (n *Text) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write diary, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	n.Service.SetDiaryText(date, n.Text)

	pp := printers.PrettyPrint{}
	pp.Diary(date, n.Service.Day(date))
	return nil
}

type Mood struct {
	Date string
	Mood string

	Service *app.Service
}

func (n *Mood) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set mood, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	if err := n.Service.SetMood(date, n.Mood); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Diary(date, n.Service.Day(date))
	return nil
}

type Show struct {
	Date string

	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show diary, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()

	pp := printers.PrettyPrint{}
	pp.Diary(date, n.Service.Day(date))
	return nil
}

type Export struct {
	Date  string
	Dir   string
	Label string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export diary, no service")
	}
	if n.Date != "" {
		if err := n.Service.SelectDate(n.Date); err != nil {
			return err
		}
	}
	date := n.Service.SelectedDate()
	rec := n.Service.Day(date)
	if rec.DiaryDrawing == nil {
		return fmt.Errorf("no drawing saved for %s", date)
	}

	e := canvas.New()
	if err := e.Load(rec.DiaryDrawing); err != nil {
		return err
	}
	label := n.Label
	if label == "" {
		label = "성장일기"
	}
	path, err := e.ExportFile(n.Dir, label, date)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s\n", path)
	return nil
}
