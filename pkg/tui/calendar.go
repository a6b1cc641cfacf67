package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/record"
)

const weekHeader = "Su Mo Tu We Th Fr Sa"

type calState struct {
	rec      *calendar.Reconciler
	selected time.Time
	legend   bool
}

func newCalState(a *app.App) *calState {
	now := time.Now()
	return &calState{
		rec:      calendar.NewReconciler(a.Records, a.Gateway),
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// moveSelection shifts the selected day; moves that leave the viewed month
// are ignored, matching the grid's interactive area.
func (c *calState) moveSelection(days int) {
	next := c.selected.AddDate(0, 0, days)
	if c.rec.Selectable(next) {
		c.selected = next
	}
}

// clampToCursor pulls the selection into the viewed month after the cursor
// moves, keeping the day-of-month when it exists.
func (c *calState) clampToCursor() {
	cur := c.rec.Cursor()
	day := c.selected.Day()
	if last := cur.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	c.selected = time.Date(cur.Year(), cur.Month(), day, 0, 0, 0, 0, time.UTC)
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	c := m.cal

	switch msg.String() {
	case "q", "esc":
		*cmds = append(*cmds, tea.Quit)
	case "left":
		c.moveSelection(-1)
	case "right":
		c.moveSelection(1)
	case "up":
		c.moveSelection(-7)
	case "down":
		c.moveSelection(7)
	case "h", "pgup":
		c.rec.MoveCursor(c.rec.Cursor().AddDate(0, -1, 0))
		c.clampToCursor()
		*cmds = append(*cmds, m.fetchMonth())
	case "l", "pgdown":
		c.rec.MoveCursor(c.rec.Cursor().AddDate(0, 1, 0))
		c.clampToCursor()
		*cmds = append(*cmds, m.fetchMonth())
	case "t":
		now := time.Now()
		c.rec.MoveCursor(now)
		c.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		*cmds = append(*cmds, m.fetchMonth())
	case "r":
		*cmds = append(*cmds, m.fetchMonth())
	case "g":
		c.legend = !c.legend
	case "enter":
		if !c.rec.Selectable(c.selected) {
			return true
		}
		existing, _ := c.rec.Resolve(c.selected)
		m.editor = newEditorState(c.selected, existing, m.app.Records, m.app.Gateway)
		m.mode = modeEditor
		m.status = ""
	default:
		return false
	}
	return true
}

func (m *Model) viewCalendar() string {
	c := m.cal
	th := m.th.Calendar

	width := len(weekHeader)
	title := c.rec.Cursor().Format("January 2006")
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}

	lines := []string{
		strings.Repeat(" ", pad) + th.Title.Render(title),
		th.Header.Render(weekHeader),
	}

	selectedKey := record.DateKey(c.selected)
	for _, week := range c.rec.Grid() {
		cells := make([]string, 0, 7)
		for _, d := range week {
			cells = append(cells, m.renderDay(d, selectedKey))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	lines = append(lines, "", m.renderSelectedDetail())
	if c.legend {
		lines = append(lines, "", m.renderLegend())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderDay(d calendar.Day, selectedKey string) string {
	th := m.th.Calendar
	text := fmt.Sprintf("%2d", d.Day)

	if !d.InMonth {
		return th.OutMonth.Render(text)
	}

	style := lipgloss.NewStyle()
	if d.Record != nil {
		style = style.Background(lipgloss.Color(d.Display.Hex))
		if d.Display.Light() {
			style = style.Foreground(lipgloss.Color("0"))
		} else {
			style = style.Foreground(lipgloss.Color("15"))
		}
	}
	if d.IsToday {
		style = style.Inherit(th.Today)
	}
	if record.DateKey(d.Date) == selectedKey {
		style = style.Inherit(th.Selected)
	}
	return style.Render(text)
}

func (m *Model) renderSelectedDetail() string {
	c := m.cal
	key := record.DateKey(c.selected)
	rec, ok := c.rec.Resolve(c.selected)
	if !ok {
		return m.th.Calendar.Legend.Render(key + "  no entry, press enter to add one")
	}

	k := emotion.Display(rec.Emotion)
	label := k.Label
	if label == "" {
		label = rec.Emotion
	}
	detail := fmt.Sprintf("%s  %s %s", key, k.Glyph, label)
	if rec.Memo != "" {
		detail += "  " + rec.Memo
	}
	if rec.Sports != nil {
		detail += fmt.Sprintf("  (%s)", emotion.ActivityLabel(*rec.Sports))
	}
	return detail
}

// renderLegend lays the palette out two kinds per row.
func (m *Model) renderLegend() string {
	kinds := emotion.Kinds()
	rows := make([]string, 0, (len(kinds)+1)/2)
	for i := 0; i < len(kinds); i += 2 {
		row := m.renderLegendEntry(kinds[i])
		if i+1 < len(kinds) {
			row += "   " + m.renderLegendEntry(kinds[i+1])
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderLegendEntry(k emotion.Kind) string {
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(k.Hex)).Render("  ")
	return fmt.Sprintf("%s %s %-8s", swatch, k.Glyph, k.Label)
}
