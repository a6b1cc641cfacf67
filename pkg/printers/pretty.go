package printers

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/record"
)

type PrettyPrint struct {
	ShowGlyphs bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Records prints a date-sorted listing of emotion records.
func (pp *PrettyPrint) Records(records ...*record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	sorted := append([]*record.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("DATE", "EMOTION", "ACTIVITY", "MEMO")
	for _, r := range sorted {
		k := emotion.Display(r.Emotion)
		label := k.Label
		if label == "" {
			label = r.Emotion
		}
		name := fmt.Sprintf("%s %s", k.Glyph, label)
		activity := ""
		if r.Sports != nil {
			activity = emotion.ActivityLabel(*r.Sports)
		}
		table.AddRow(r.Date, name, activity, r.Memo)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Legend prints the emotion palette.
func (pp *PrettyPrint) Legend() {
	table := uitable.New()
	for _, k := range emotion.Kinds() {
		c := attrFor(k)
		table.AddRow(k.Glyph, c.Sprint(k.Label))
	}
	fmt.Println(table)
}

// attrFor maps a palette hex color onto the nearest basic terminal color so
// records stay legible on terminals without truecolor.
func attrFor(k emotion.Kind) *color.Color {
	target := k.Color()

	best := color.FgWhite
	bestDist := -1.0
	for attr, hex := range basicColors {
		ref, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		d := target.DistanceLab(ref)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = attr
		}
	}
	return color.New(best)
}

var basicColors = map[color.Attribute]string{
	color.FgRed:       "#cc0000",
	color.FgGreen:     "#4e9a06",
	color.FgYellow:    "#c4a000",
	color.FgBlue:      "#3465a4",
	color.FgMagenta:   "#75507b",
	color.FgCyan:      "#06989a",
	color.FgHiRed:     "#ef2929",
	color.FgHiGreen:   "#8ae234",
	color.FgHiYellow:  "#fce94f",
	color.FgHiBlue:    "#729fcf",
	color.FgHiMagenta: "#ad7fa8",
	color.FgHiCyan:    "#34e2e2",
	color.FgWhite:     "#d3d7cf",
}
