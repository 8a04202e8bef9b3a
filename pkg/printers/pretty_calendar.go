package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/journal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month grid for then, marking days that have tasks
// and stamping a sticker on perfect days.
func (pp *PrettyPrint) Calendar(then time.Time, data journal.AllData) {
	first := time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.Local)

	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	d := StartDay(first)
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	quiet := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	sticker := color.New(color.Bold, color.FgHiYellow)
	today := color.New(color.Bold, color.FgHiWhite, color.Underline)

	days := DaysIn(first)
	now := time.Now()
	for i := 1; i <= days; i++ {
		key := dateutil.DayKey(time.Date(then.Year(), then.Month(), i, 12, 0, 0, 0, time.Local))
		day, has := data[key]

		printer := quiet
		if has && len(day.Tasks) > 0 {
			printer = busy
		}
		if day.Perfect() {
			printer = sticker
		}
		if now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == i {
			printer = today
		}
		_, _ = printer.Printf("%2d ", i)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Println("")
		}
	}
	if d != time.Sunday {
		fmt.Println("")
	}

	_, _ = quiet.Println("\nbold: has tasks, yellow: perfect day")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
