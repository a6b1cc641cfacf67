package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/gateway"
	"tableflip.dev/moodcal/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodcal",
		Short: base.Wrap80("A mood journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addGet(topLevel)
	addSave(topLevel)
	addCal(topLevel)
	addVersion(topLevel)
}

// load wires the application root from local config: token store, gateway,
// and the app that owns the session.
func load() (*app.App, *gateway.Client, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	tokens, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	gw := gateway.New(cfg.APIBase(), tokens)
	return app.New(tokens, gw), gw, nil
}
