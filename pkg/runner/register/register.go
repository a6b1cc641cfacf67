package register

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/gateway"
)

// Register creates a new account. The field rules are checked here so a
// half-filled form never reaches the network.
type Register struct {
	Username  string
	Email     string
	Password  string
	Password2 string

	Gateway *gateway.Client
}

func (n *Register) Do(ctx context.Context) error {
	if err := n.validate(); err != nil {
		return err
	}

	err := n.Gateway.Register(ctx, gateway.RegisterRequest{
		Username:  n.Username,
		Email:     n.Email,
		Password:  n.Password,
		Password2: n.Password2,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrNetworkUnreachable) {
			return errors.New("cannot reach the server; check that the backend is running")
		}
		return errors.New(gateway.FailureMessage(err))
	}

	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "welcome, %s!", n.Username)
	fmt.Fprintln(color.Output, " your account is ready; sign in with: moodcal login")
	return nil
}

func (n *Register) validate() error {
	if strings.TrimSpace(n.Username) == "" {
		return errors.New("a username is required")
	}
	if !strings.Contains(n.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if n.Password == "" {
		return errors.New("a password is required")
	}
	if n.Password != n.Password2 {
		return errors.New("the two passwords do not match")
	}
	return nil
}
