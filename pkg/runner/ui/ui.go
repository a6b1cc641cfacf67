package ui

import (
	"context"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/gateway"
	"tableflip.dev/moodcal/pkg/tui"
)

// UI opens the interactive calendar.
type UI struct {
	// StartURL lets a redirect-handoff URL be consumed at startup, the
	// same short-circuit a browser client gets.
	StartURL string

	App     *app.App
	Gateway *gateway.Client
}

func (n *UI) Do(ctx context.Context) error {
	n.App.Bootstrap(ctx, n.StartURL)
	return tui.Run(n.App, n.Gateway)
}
