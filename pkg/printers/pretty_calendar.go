package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/record"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the reconciled month grid: day numbers tinted by the
// recorded emotion, out-of-month days faint, today bolded.
func (pp *PrettyPrint) Month(title string, weeks [][]calendar.Day) {
	tf := color.New(color.FgWhite, color.Italic)

	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	pad := width - mid - len(title)
	if pad < 0 {
		pad = 0
	}
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), title, strings.Repeat(" ", pad))

	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	out := color.New(color.Faint)
	in := color.New(color.FgHiWhite)

	for _, week := range weeks {
		for _, d := range week {
			printer := in
			switch {
			case !d.InMonth:
				printer = out
			case d.Record != nil:
				printer = attrFor(d.Display).Add(color.Bold)
			}
			if d.IsToday {
				printer = color.New(color.Bold, color.Underline)
			}
			_, _ = printer.Printf("%2d", d.Day)
			fmt.Print(" ")
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")

	pp.monthDetail(weeks)
}

// monthDetail lists the in-month days that carry a record.
func (pp *PrettyPrint) monthDetail(weeks [][]calendar.Day) {
	p := color.New()
	for _, week := range weeks {
		for _, d := range week {
			if !d.InMonth || d.Record == nil {
				continue
			}
			line := fmt.Sprintf("%2d %s %s", d.Day, d.Display.Glyph, labelFor(d.Record))
			if d.Record.Memo != "" {
				line += "  " + d.Record.Memo
			}
			if d.Record.Sports != nil {
				line += fmt.Sprintf(" (%s)", emotion.ActivityLabel(*d.Record.Sports))
			}
			_, _ = p.Println(line)
		}
	}
}

func labelFor(r *record.Record) string {
	k := emotion.Display(r.Emotion)
	if k.Label != "" {
		return attrFor(k).Sprint(k.Label)
	}
	return r.Emotion
}
