package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a username and password.",
		Example: `
moodcal login -u dana -p hunter2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, gw, err := load()
			if err != nil {
				return err
			}
			s := login.Login{
				Username: co.Username,
				Password: co.Password,
				App:      a,
				Gateway:  gw,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)

	addLoginKakao(cmd)

	topLevel.AddCommand(cmd)
}

func addLoginKakao(topLevel *cobra.Command) {
	code := ""

	cmd := &cobra.Command{
		Use:   "kakao [redirect-url]",
		Short: "Sign in through Kakao.",
		Long: strings.TrimSpace(`
Prints the provider URL to open in a browser. After signing in, the provider
redirects to a URL carrying the token handoff; paste that URL back here to
finish.
`),
		Example: `
moodcal login kakao
moodcal login kakao "http://localhost:3000/?access=...&refresh=...&user_id=7"
moodcal login kakao --code 4/abcdef
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, gw, err := load()
			if err != nil {
				return err
			}
			s := login.Login{
				Kakao:   true,
				Code:    code,
				App:     a,
				Gateway: gw,
			}
			if len(args) == 1 {
				s.HandoffURL = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Provider authorization code to exchange directly.")

	topLevel.AddCommand(cmd)
}
