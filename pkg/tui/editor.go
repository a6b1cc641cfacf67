package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/editor"
	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/gateway"
	"tableflip.dev/moodcal/pkg/record"
)

type editorField int

const (
	editorFieldEmotion editorField = iota
	editorFieldMemo
	editorFieldActivity
)

type editorState struct {
	ed *editor.Editor

	memo  textinput.Model
	kinds []emotion.Kind
	acts  []emotion.Activity

	kindIdx int // -1 means none selected yet
	actIdx  int // -1 means no activity

	focus  editorField
	errMsg string
	busy   bool
}

func newEditorState(date time.Time, existing *record.Record, records *record.Map, saver editor.Saver) *editorState {
	ed := editor.New(date, existing, records, saver)

	memo := textinput.New()
	memo.Placeholder = "how was the day?"
	memo.CharLimit = editor.MaxCommentLen
	memo.Prompt = "> "
	memo.SetValue(ed.Comment())

	s := &editorState{
		ed:      ed,
		memo:    memo,
		kinds:   emotion.Kinds(),
		acts:    emotion.Activities(),
		kindIdx: -1,
		actIdx:  -1,
	}

	for i, k := range s.kinds {
		if k.ID == ed.Emotion() {
			s.kindIdx = i
		}
	}
	if id, ok := ed.Activity(); ok {
		for i, a := range s.acts {
			if a.ID == id {
				s.actIdx = i
			}
		}
	}
	return s
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	e := m.editor
	if e.busy {
		return true
	}

	switch msg.String() {
	case "esc":
		m.editor = nil
		m.mode = modeCalendar
		return true
	case "tab", "down":
		m.setEditorFocus(e.focus+1, cmds)
		return true
	case "shift+tab", "up":
		m.setEditorFocus(e.focus-1, cmds)
		return true
	case "left":
		switch e.focus {
		case editorFieldEmotion:
			e.kindIdx = cycle(e.kindIdx, len(e.kinds), -1)
			return true
		case editorFieldActivity:
			e.actIdx = cycleWithNone(e.actIdx, len(e.acts), -1)
			return true
		}
	case "right":
		switch e.focus {
		case editorFieldEmotion:
			e.kindIdx = cycle(e.kindIdx, len(e.kinds), 1)
			return true
		case editorFieldActivity:
			e.actIdx = cycleWithNone(e.actIdx, len(e.acts), 1)
			return true
		}
	case "enter":
		if e.kindIdx < 0 {
			// Never reaches the network without an emotion.
			e.errMsg = "pick an emotion first"
			return true
		}
		e.ed.SelectEmotion(e.kinds[e.kindIdx].ID)
		e.ed.SetComment(e.memo.Value())
		if e.actIdx >= 0 {
			e.ed.SetActivity(e.acts[e.actIdx].ID)
		} else {
			e.ed.SetActivity(0)
		}
		e.errMsg = ""
		e.busy = true
		*cmds = append(*cmds, m.submitSave())
		return true
	}
	return false
}

// cycle wraps an index over [0, n).
func cycle(i, n, by int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		if by > 0 {
			return 0
		}
		return n - 1
	}
	return ((i+by)%n + n) % n
}

// cycleWithNone wraps over [-1, n), where -1 is the "none" slot.
func cycleWithNone(i, n, by int) int {
	span := n + 1
	return ((i+1+by)%span+span)%span - 1
}

func (m *Model) setEditorFocus(f editorField, cmds *[]tea.Cmd) {
	if f < editorFieldEmotion {
		f = editorFieldActivity
	}
	if f > editorFieldActivity {
		f = editorFieldEmotion
	}
	m.editor.focus = f
	if f == editorFieldMemo {
		*cmds = append(*cmds, m.editor.memo.Focus())
	} else {
		m.editor.memo.Blur()
	}
}

// submitSave runs the save round trip. On failure the overlay keeps its
// input; nothing typed is lost.
func (m *Model) submitSave() tea.Cmd {
	ed := m.editor.ed
	return func() tea.Msg {
		rec, err := ed.Save(m.ctx)
		return saveResultMsg{rec: rec, err: err}
	}
}

func saveFailureText(err error) string {
	switch {
	case errors.Is(err, editor.ErrNoEmotion):
		return "pick an emotion first"
	case errors.Is(err, gateway.ErrNetworkUnreachable):
		return "save failed: cannot reach the server"
	default:
		return "save failed: " + gateway.FailureMessage(err)
	}
}

func (m *Model) viewEditor() string {
	e := m.editor
	f := m.th.Form

	emotionLabel := f.Label.Render("emotion")
	memoLabel := f.Label.Render("memo")
	activityLabel := f.Label.Render("activity")
	switch e.focus {
	case editorFieldEmotion:
		emotionLabel = f.Focused.Render("emotion")
	case editorFieldMemo:
		memoLabel = f.Focused.Render("memo")
	case editorFieldActivity:
		activityLabel = f.Focused.Render("activity")
	}

	lines := []string{
		f.Title.Render(e.ed.DateKey()),
		"",
		emotionLabel,
		e.renderEmotionRow(),
		memoLabel,
		e.memo.View(),
		activityLabel,
		e.renderActivityRow(),
	}
	if e.busy {
		lines = append(lines, "", f.Hint.Render("saving..."))
	} else if e.errMsg != "" {
		lines = append(lines, "", f.Error.Render(e.errMsg))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return f.Frame.Render(body)
}

func (e *editorState) renderEmotionRow() string {
	cells := make([]string, 0, len(e.kinds))
	for i, k := range e.kinds {
		cell := k.Glyph
		if i == e.kindIdx {
			style := lipgloss.NewStyle().Background(lipgloss.Color(k.Hex))
			if k.Light() {
				style = style.Foreground(lipgloss.Color("0"))
			} else {
				style = style.Foreground(lipgloss.Color("15"))
			}
			cell = style.Render(fmt.Sprintf(" %s %s ", k.Glyph, k.Label))
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

func (e *editorState) renderActivityRow() string {
	cells := make([]string, 0, len(e.acts)+1)

	none := "none"
	if e.actIdx < 0 {
		none = lipgloss.NewStyle().Reverse(true).Render(" none ")
	}
	cells = append(cells, none)

	for i, a := range e.acts {
		cell := a.Label
		if i == e.actIdx {
			cell = lipgloss.NewStyle().Reverse(true).Render(" " + a.Label + " ")
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}
