package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	month := ""
	legend := false

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print the month as a mood-tinted calendar.",
		Example: `
moodcal cal
moodcal cal --month 2024-03 --legend
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, _, err := load()
			if err != nil {
				return err
			}
			a.Bootstrap(ctx, "")
			s := cal.Cal{
				Month:  month,
				Legend: legend,
				App:    a,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show, like 2024-03.")
	cmd.Flags().BoolVar(&legend, "legend", false, "Print the emotion legend below the grid.")

	topLevel.AddCommand(cmd)
}
