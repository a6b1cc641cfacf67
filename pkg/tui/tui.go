// Package tui renders the interactive client: the login form, the
// mood-tinted month grid, and the entry editor overlay.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/gateway"
	"tableflip.dev/moodcal/pkg/record"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

type mode int

const (
	modeLogin mode = iota
	modeCalendar
	modeEditor
)

// Gateway is the slice of the backend client the UI needs beyond what the
// app root already exposes.
type Gateway interface {
	Login(ctx context.Context, username, password string) (*gateway.LoginResponse, error)
	KakaoLoginURL() string
}

type loginResultMsg struct {
	username string
	err      error
}

type monthLoadedMsg struct {
	seq      uint64
	emotions map[string]*record.Record
	err      error
}

type saveResultMsg struct {
	rec *record.Record
	err error
}

// Model is the root UI model. The mode decides which surface owns the
// keyboard; the editor is an overlay on top of the calendar.
type Model struct {
	app *app.App
	gw  Gateway
	ctx context.Context

	th   theme.Theme
	mode mode

	termWidth  int
	termHeight int
	status     string

	login  *loginState
	cal    *calState
	editor *editorState
}

// New creates a UI model. The app root decides the starting view; Bootstrap
// must already have run.
func New(a *app.App, gw Gateway) *Model {
	m := &Model{
		app:   a,
		gw:    gw,
		ctx:   context.Background(),
		th:    theme.Default(),
		login: newLoginState(),
	}
	if a.View == app.ViewCalendar {
		m.mode = modeCalendar
		m.cal = newCalState(a)
	}
	return m
}

// Run launches the Bubble Tea program.
func Run(a *app.App, gw Gateway) error {
	p := tea.NewProgram(New(a, gw), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.mode == modeCalendar {
		return m.fetchMonth()
	}
	return m.login.username.Focus()
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	handled := false

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = v.Width
		m.termHeight = v.Height
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeLogin:
			handled = m.handleLoginKey(v, &cmds)
		case modeCalendar:
			handled = m.handleCalendarKey(v, &cmds)
		case modeEditor:
			handled = m.handleEditorKey(v, &cmds)
		}
	case loginResultMsg:
		m.login.busy = false
		if v.err != nil {
			m.login.errMsg = loginFailureText(v.err)
			break
		}
		m.mode = modeCalendar
		m.cal = newCalState(m.app)
		m.status = fmt.Sprintf("welcome, %s. %d recorded days loaded", v.username, m.app.Records.Len())
		cmds = append(cmds, m.fetchMonth())
	case monthLoadedMsg:
		if m.cal != nil && m.cal.rec.Apply(v.seq, v.emotions, v.err) && v.err != nil {
			m.status = "month load failed; showing local entries"
		}
	case saveResultMsg:
		if m.editor == nil {
			break
		}
		m.editor.busy = false
		if v.err != nil {
			m.editor.errMsg = saveFailureText(v.err)
			break
		}
		if m.cal != nil {
			m.cal.rec.Patch(v.rec)
		}
		k := emotion.Display(v.rec.Emotion)
		m.status = fmt.Sprintf("saved %s %s for %s", k.Glyph, k.Label, v.rec.Date)
		m.editor = nil
		m.mode = modeCalendar
	}

	if !handled {
		m.routeInputs(msg, &cmds)
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// routeInputs forwards messages to whichever text input has focus.
func (m *Model) routeInputs(msg tea.Msg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeLogin:
		var cmd tea.Cmd
		if m.login.focus == loginFieldUsername {
			m.login.username, cmd = m.login.username.Update(msg)
		} else {
			m.login.password, cmd = m.login.password.Update(msg)
		}
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	case modeEditor:
		if m.editor != nil && m.editor.focus == editorFieldMemo {
			var cmd tea.Cmd
			m.editor.memo, cmd = m.editor.memo.Update(msg)
			if cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		}
	}
}

// fetchMonth issues a sequence-numbered fetch for the viewed month. The
// result lands as a monthLoadedMsg; stale results are dropped by Apply.
func (m *Model) fetchMonth() tea.Cmd {
	seq, year, month := m.cal.rec.IssueFetch()
	return func() tea.Msg {
		emotions, err := m.app.Gateway.CalendarMonth(m.ctx, year, month)
		return monthLoadedMsg{seq: seq, emotions: emotions, err: err}
	}
}

// View renders the active surface centered in the terminal with a key-hint
// footer pinned to the bottom.
func (m *Model) View() string {
	var body, help string
	switch m.mode {
	case modeLogin:
		body = m.viewLogin()
		help = "tab: next field  enter: sign in  esc: quit"
	case modeEditor:
		body = m.viewEditor()
		help = "tab: next field  left/right: choose  enter: save  esc: cancel"
	default:
		body = m.viewCalendar()
		help = "arrows: move  h/l: month  enter: edit  g: legend  t: today  q: quit"
	}

	footer := m.th.Footer.Help.Render(help)
	if m.status != "" {
		status := m.status
		if m.termWidth > 0 {
			status = wordwrap.String(status, m.termWidth)
		}
		footer = m.th.Footer.Status.Render(status) + "\n" + footer
	}

	if m.termWidth > 0 && m.termHeight > 2 {
		placed := lipgloss.Place(m.termWidth, m.termHeight-2,
			lipgloss.Center, lipgloss.Center, body)
		return placed + "\n" + footer
	}
	return body + "\n" + footer
}
