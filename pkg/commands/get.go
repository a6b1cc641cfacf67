package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	since := ""

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "List recorded moods, all of them or a single day.",
		Example: `
moodcal get
moodcal get today
moodcal get 2024-03-15
moodcal get --since 2w
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, _, err := load()
			if err != nil {
				return err
			}
			a.Bootstrap(ctx, "")
			s := get.Get{Since: since, App: a}
			if len(args) == 1 {
				s.Date = args[0]
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&since, "since", "",
		"Only list entries inside a lookback window, like 2w or 1mo.")

	topLevel.AddCommand(cmd)
}
