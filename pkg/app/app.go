// Package app owns the application root: the session value, the local record
// map, and the startup decision between the authenticated and anonymous
// views. UIs and CLIs share this logic.
package app

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"tableflip.dev/moodcal/pkg/record"
	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/store"
)

// View names which surface the client should be showing.
type View int

const (
	ViewLogin View = iota
	ViewCalendar
)

// Gateway is the slice of the backend client the app root uses.
type Gateway interface {
	CheckLiveness(ctx context.Context) bool
	ListEmotions(ctx context.Context) ([]*record.Record, error)
	SaveEmotion(ctx context.Context, r record.Record) (*record.Record, error)
	CalendarMonth(ctx context.Context, year, month int) (map[string]*record.Record, error)
}

// App is the application root. It owns the Session explicitly; components
// that need authentication state receive it from here rather than reading
// storage themselves.
type App struct {
	Tokens  store.Tokens
	Gateway Gateway

	Session *session.Session
	Records *record.Map
	View    View
}

func New(tokens store.Tokens, gw Gateway) *App {
	return &App{
		Tokens:  tokens,
		Gateway: gw,
		Records: record.NewMap(),
		View:    ViewLogin,
	}
}

// handoff is the token triple a third-party login leaves in the redirect URL.
type handoff struct {
	access  string
	refresh string
	userID  string
}

// parseHandoff extracts the redirect-handoff triple from rawURL and returns
// the URL with those parameters stripped, so re-visiting the cleaned URL
// cannot re-trigger the handoff.
func parseHandoff(rawURL string) (h handoff, cleaned string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return handoff{}, rawURL, false
	}
	q := u.Query()
	h = handoff{
		access:  q.Get("access"),
		refresh: q.Get("refresh"),
		userID:  q.Get("user_id"),
	}
	if h.access == "" || h.refresh == "" {
		return handoff{}, rawURL, false
	}
	q.Del("access")
	q.Del("refresh")
	q.Del("user_id")
	u.RawQuery = q.Encode()
	return h, u.String(), true
}

// Bootstrap runs once at startup and decides which view the client lands in.
// The decision order is fixed:
//
//  1. a redirect-handoff URL short-circuits everything: store the triple,
//     synthesize a profile, and enter the calendar;
//  2. an unreachable backend reads as not authenticated, even with cached
//     tokens, since a stale session cannot be validated;
//  3. cached tokens plus a structurally valid cached profile restore the
//     previous session;
//  4. anything else lands anonymous.
//
// Every anonymous exit clears the token store so no partial session survives
// a failed bootstrap. Bootstrap never surfaces errors; failures degrade to
// the login view. It returns rawURL with any consumed handoff parameters
// removed.
func (a *App) Bootstrap(ctx context.Context, rawURL string) string {
	if h, cleaned, ok := parseHandoff(rawURL); ok {
		if err := a.Tokens.SetTokens(h.access, h.refresh); err != nil {
			a.resetToAnonymous()
			return cleaned
		}
		_ = a.Tokens.SetUserID(h.userID)
		profile := session.Synthesize(h.userID)
		_ = a.Tokens.SaveProfile(profile)

		a.Session = &session.Session{
			Access:  h.access,
			Refresh: h.refresh,
			UserID:  h.userID,
			Profile: profile,
		}
		a.View = ViewCalendar
		a.reload(ctx)
		return cleaned
	}

	if !a.Gateway.CheckLiveness(ctx) {
		a.resetToAnonymous()
		return rawURL
	}

	if a.Tokens.IsAuthenticated() {
		profile, err := a.Tokens.LoadProfile()
		if err == nil && profile.Valid() {
			a.Session = &session.Session{
				Access:  a.Tokens.Access(),
				Refresh: a.Tokens.Refresh(),
				UserID:  a.Tokens.UserID(),
				Profile: profile,
			}
			a.View = ViewCalendar
			a.reload(ctx)
			return rawURL
		}
	}

	a.resetToAnonymous()
	return rawURL
}

// EnterSession installs a freshly granted session (password login or code
// exchange already persisted the tokens) and loads the record history.
func (a *App) EnterSession(ctx context.Context, profile *session.Profile) error {
	if err := a.Tokens.SaveProfile(profile); err != nil {
		return err
	}
	a.Session = &session.Session{
		Access:  a.Tokens.Access(),
		Refresh: a.Tokens.Refresh(),
		UserID:  a.Tokens.UserID(),
		Profile: profile,
	}
	a.View = ViewCalendar
	return a.ReloadRecords(ctx)
}

// ReloadRecords replaces the local record map with the backend's full
// history for this user.
func (a *App) ReloadRecords(ctx context.Context) error {
	records, err := a.Gateway.ListEmotions(ctx)
	if err != nil {
		return err
	}
	a.Records.Replace(records)
	return nil
}

// reload is the bootstrap-phase variant: failures are logged, never shown.
func (a *App) reload(ctx context.Context) {
	if err := a.ReloadRecords(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "moodcal: load records: %v\n", err)
	}
}

// Logout drops the session locally. The backend contract has no server-side
// invalidation call.
func (a *App) Logout() {
	a.resetToAnonymous()
}

func (a *App) resetToAnonymous() {
	if err := a.Tokens.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "moodcal: clear session: %v\n", err)
	}
	a.Session = nil
	a.Records.Clear()
	a.View = ViewLogin
}
