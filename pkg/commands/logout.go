package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session.",
		Example: `
moodcal logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := load()
			if err != nil {
				return err
			}
			s := logout.Logout{App: a}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
