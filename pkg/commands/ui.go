package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	startURL := ""

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar.",
		Example: `
moodcal ui
moodcal ui --url "http://localhost:3000/?access=...&refresh=...&user_id=7"
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, gw, err := load()
			if err != nil {
				return err
			}
			i := ui.UI{StartURL: startURL, App: a, Gateway: gw}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&startURL, "url", "",
		"Redirect URL from a provider sign-in, consumed at startup.")

	topLevel.AddCommand(cmd)
}
