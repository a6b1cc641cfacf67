package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/runner/register"
)

func addRegister(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}
	email := ""
	password2 := ""

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account.",
		Example: `
moodcal register -u dana -e dana@example.com -p hunter2 --confirm hunter2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gw, err := load()
			if err != nil {
				return err
			}
			s := register.Register{
				Username:  co.Username,
				Email:     email,
				Password:  co.Password,
				Password2: password2,
				Gateway:   gw,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCredentialArgs(cmd, co)
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email address.")
	cmd.Flags().StringVar(&password2, "confirm", "", "Password, again.")

	topLevel.AddCommand(cmd)
}
