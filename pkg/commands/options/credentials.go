// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions captures the username/password pair for auth commands.
type CredentialOptions struct {
	Username string
	Password string
}

// AddCredentialArgs wires the credential flags on the provided command.
func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Account username.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
}
