package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/gateway"
	"tableflip.dev/moodcal/pkg/session"
)

// Login signs the user in, either with a username/password pair or by
// completing the third-party (Kakao) flow.
type Login struct {
	Username string
	Password string

	// Kakao flow: print the provider URL when nothing else is given, or
	// consume a redirect URL / authorization code.
	Kakao      bool
	HandoffURL string
	Code       string

	App     *app.App
	Gateway *gateway.Client
}

func (n *Login) Do(ctx context.Context) error {
	switch {
	case n.HandoffURL != "":
		return n.handoff(ctx)
	case n.Code != "":
		return n.exchange(ctx)
	case n.Kakao:
		return n.printProviderURL()
	default:
		return n.password(ctx)
	}
}

func (n *Login) password(ctx context.Context) error {
	if n.Username == "" || n.Password == "" {
		return errors.New("username and password are required")
	}

	resp, err := n.Gateway.Login(ctx, n.Username, n.Password)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrNetworkUnreachable):
			return errors.New("cannot reach the server; check that the backend is running")
		case gateway.IsBadRequest(err):
			return errors.New("invalid username or password")
		default:
			return errors.New(gateway.FailureMessage(err))
		}
	}

	profile := &session.Profile{Username: n.Username}
	if id, err := resp.UserID.Int64(); err == nil {
		profile.ID = id
	}
	if err := n.App.EnterSession(ctx, profile); err != nil {
		// The session is established; a failed history load only costs
		// the prefetched records.
		fmt.Fprintf(color.Output, "warning: %s\n", gateway.FailureMessage(err))
	}

	n.welcome()
	return nil
}

func (n *Login) printProviderURL() error {
	fmt.Fprintln(color.Output, "Open this URL in a browser to sign in with Kakao:")
	fmt.Fprintln(color.Output, "")
	fmt.Fprintf(color.Output, "    %s\n", n.Gateway.KakaoLoginURL())
	fmt.Fprintln(color.Output, "")
	fmt.Fprintln(color.Output, "then finish with the URL the provider redirected you to:")
	fmt.Fprintln(color.Output, "")
	fmt.Fprintln(color.Output, "    moodcal login kakao <redirect-url>")
	return nil
}

// handoff consumes a redirect URL carrying the token triple as query
// parameters.
func (n *Login) handoff(ctx context.Context) error {
	n.App.Bootstrap(ctx, n.HandoffURL)
	if n.App.View != app.ViewCalendar {
		return errors.New("the redirect URL did not carry a usable token handoff")
	}
	n.welcome()
	return nil
}

// exchange trades a provider authorization code for tokens.
func (n *Login) exchange(ctx context.Context) error {
	resp, err := n.Gateway.ExchangeKakaoCode(ctx, n.Code)
	if err != nil {
		return errors.New(gateway.FailureMessage(err))
	}
	profile := session.Synthesize(resp.UserID.String())
	if id, err := resp.UserID.Int64(); err == nil {
		profile.ID = id
	}
	if err := n.App.EnterSession(ctx, profile); err != nil {
		fmt.Fprintf(color.Output, "warning: %s\n", gateway.FailureMessage(err))
	}
	n.welcome()
	return nil
}

func (n *Login) welcome() {
	name := ""
	if n.App.Session != nil && n.App.Session.Profile != nil {
		name = n.App.Session.Profile.Username
	}
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "welcome, %s!", name)
	fmt.Fprintf(color.Output, " %d recorded days loaded\n", n.App.Records.Len())
}
