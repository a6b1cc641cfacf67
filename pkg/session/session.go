// Package session defines the user session value owned by the application
// root. Components receive a *Session explicitly; nothing reads ambient
// authentication state.
package session

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports a cached profile that exists but cannot be trusted.
var ErrMalformed = errors.New("session: malformed cached profile")

// Profile is the minimal user identity kept on this machine.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Valid reports whether the profile is structurally usable. A profile with
// an empty username came from a broken or partial write and must be dropped.
func (p *Profile) Valid() bool {
	return p != nil && strings.TrimSpace(p.Username) != ""
}

// Session holds the credentials and identity for the active user.
type Session struct {
	Access  string
	Refresh string
	UserID  string
	Profile *Profile
}

// Authenticated reports whether the session carries an access token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Access != ""
}

// Synthesize builds a display-only profile from a provider-issued user id,
// as happens after a redirect handoff where no profile endpoint is called.
func Synthesize(userID string) *Profile {
	return &Profile{Username: fmt.Sprintf("kakao_%s", userID)}
}
