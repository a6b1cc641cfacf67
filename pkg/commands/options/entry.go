package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the optional parts of a day's entry.
type EntryOptions struct {
	Memo     string
	Activity string
}

// AddEntryArgs wires the entry flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Memo, "memo", "m", "",
		"A one-line comment for the day (200 characters max).")
	cmd.Flags().StringVarP(&o.Activity, "activity", "a", "",
		"Activity tag for the day (running, gym, swimming, cycling, walking).")
}
