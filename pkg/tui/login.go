package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodcal/pkg/gateway"
	"tableflip.dev/moodcal/pkg/session"
)

type loginField int

const (
	loginFieldUsername loginField = iota
	loginFieldPassword
)

type loginState struct {
	username textinput.Model
	password textinput.Model
	focus    loginField
	errMsg   string
	busy     bool
}

func newLoginState() *loginState {
	u := textinput.New()
	u.Placeholder = "username"
	u.CharLimit = 128
	u.Prompt = "> "

	p := textinput.New()
	p.Placeholder = "password"
	p.CharLimit = 128
	p.Prompt = "> "
	p.EchoMode = textinput.EchoPassword

	return &loginState{username: u, password: p}
}

func (m *Model) handleLoginKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if m.login.busy {
		return true
	}

	switch msg.String() {
	case "esc":
		*cmds = append(*cmds, tea.Quit)
		return true
	case "tab", "down":
		m.setLoginFocus(m.login.focus+1, cmds)
		return true
	case "shift+tab", "up":
		m.setLoginFocus(m.login.focus-1, cmds)
		return true
	case "enter":
		if m.login.focus == loginFieldUsername {
			m.setLoginFocus(loginFieldPassword, cmds)
			return true
		}
		username := strings.TrimSpace(m.login.username.Value())
		password := m.login.password.Value()
		if username == "" || password == "" {
			m.login.errMsg = "username and password are required"
			return true
		}
		m.login.errMsg = ""
		m.login.busy = true
		*cmds = append(*cmds, m.submitLogin(username, password))
		return true
	}
	return false
}

func (m *Model) setLoginFocus(f loginField, cmds *[]tea.Cmd) {
	if f < loginFieldUsername {
		f = loginFieldPassword
	}
	if f > loginFieldPassword {
		f = loginFieldUsername
	}
	m.login.focus = f
	m.login.username.Blur()
	m.login.password.Blur()
	if f == loginFieldUsername {
		*cmds = append(*cmds, m.login.username.Focus())
	} else {
		*cmds = append(*cmds, m.login.password.Focus())
	}
}

// submitLogin runs the grant round trip off the UI goroutine. A failed
// history load after a successful grant is not a login failure.
func (m *Model) submitLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.gw.Login(m.ctx, username, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		profile := &session.Profile{Username: username}
		if id, err := resp.UserID.Int64(); err == nil {
			profile.ID = id
		}
		_ = m.app.EnterSession(m.ctx, profile)
		return loginResultMsg{username: username}
	}
}

func loginFailureText(err error) string {
	switch {
	case errors.Is(err, gateway.ErrNetworkUnreachable):
		return "cannot reach the server"
	case gateway.IsBadRequest(err):
		return "invalid username or password"
	default:
		return gateway.FailureMessage(err)
	}
}

func (m *Model) viewLogin() string {
	f := m.th.Form

	title := f.Title.Render("moodcal")

	userLabel := f.Label.Render("username")
	passLabel := f.Label.Render("password")
	if m.login.focus == loginFieldUsername {
		userLabel = f.Focused.Render("username")
	} else {
		passLabel = f.Focused.Render("password")
	}

	lines := []string{
		title,
		"",
		userLabel,
		m.login.username.View(),
		passLabel,
		m.login.password.View(),
	}
	if m.login.busy {
		lines = append(lines, "", f.Hint.Render("signing in..."))
	} else if m.login.errMsg != "" {
		lines = append(lines, "", f.Error.Render(m.login.errMsg))
	}
	lines = append(lines, "", f.Hint.Render("kakao sign-in: "+m.gw.KakaoLoginURL()))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return f.Frame.Render(body)
}
