package logout

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
)

// Logout drops the stored session. Purely local, no network call.
type Logout struct {
	App *app.App
}

func (n *Logout) Do(ctx context.Context) error {
	n.App.Logout()
	_, _ = fmt.Fprintln(color.Output, "signed out")
	return nil
}
