package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodcal/pkg/commands/options"
	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/prompt"
	"tableflip.dev/moodcal/pkg/runner/save"
)

func addSave(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	date := ""

	long := strings.Builder{}
	long.WriteString("Record how a day felt.\n\n")
	long.WriteString("Emotions:\n")

	validArgs := make([]string, 0, 0)
	for _, k := range emotion.Kinds() {
		long.WriteString(fmt.Sprintf("%s %s\n", k.Glyph, k.ID))
		validArgs = append(validArgs, k.ID)
	}

	cmd := &cobra.Command{
		Use:   "save [emotion]",
		Short: "Record how a day felt.",
		Long:  long.String(),
		Example: `
moodcal save
moodcal save happy
moodcal save calm --date 2024-03-15 -m "quiet afternoon"
moodcal save excited -a gym
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, _, err := load()
			if err != nil {
				return err
			}
			a.Bootstrap(ctx, "")
			s := save.Save{
				Date:     date,
				Memo:     eo.Memo,
				Activity: eo.Activity,
				App:      a,
			}
			if len(args) == 1 {
				s.Emotion = args[0]
			} else if err := promptEntry(&s); err != nil {
				return err
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	cmd.Flags().StringVarP(&date, "date", "d", "today",
		"Day to record, like 2024-03-15.")

	topLevel.AddCommand(cmd)
}

// promptEntry fills the runner interactively when no emotion argument was
// given. Flags that were set stay as given.
func promptEntry(s *save.Save) error {
	id, err := prompt.Emotion()
	if err != nil {
		return err
	}
	s.Emotion = id

	if s.Memo == "" {
		memo, err := prompt.Memo()
		if err != nil {
			return err
		}
		s.Memo = memo
	}

	if s.Activity == "" {
		id, err := prompt.Activity()
		if err != nil {
			return err
		}
		if id != 0 {
			s.Activity = emotion.ActivityLabel(id)
		}
	}
	return nil
}
