package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/printers"
	"tableflip.dev/moodcal/pkg/record"
	"tableflip.dev/moodcal/pkg/timeutil"
)

// Get lists recorded emotions, either the full history or a single day.
type Get struct {
	Date  string // YYYY-MM-DD, "today", or empty for everything
	Since string // lookback window like "2w", empty for no filter
	App   *app.App
}

const layoutISO = "2006-01-02"

func (n *Get) Do(ctx context.Context) error {
	if n.App.View != app.ViewCalendar {
		return errors.New("not signed in; run: moodcal login")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	if n.Date != "" {
		key, err := resolveDate(n.Date)
		if err != nil {
			return err
		}
		pp.Title(key)
		if r, ok := n.App.Records.Get(key); ok {
			pp.Records(r)
		} else {
			pp.Records()
		}
		return nil
	}

	title := "mood journal"
	if n.App.Session != nil && n.App.Session.Profile != nil {
		title = n.App.Session.Profile.Username + "'s mood journal"
	}

	records := n.App.Records.All()
	if n.Since != "" {
		window, err := timeutil.ParseWindow(n.Since)
		if err != nil {
			return err
		}
		cutoff := record.DateKey(timeutil.WindowStart(time.Now(), window))
		kept := records[:0]
		for _, r := range records {
			if record.NormalizeKey(r.Date) >= cutoff {
				kept = append(kept, r)
			}
		}
		records = kept
		title += " (last " + n.Since + ")"
	}

	pp.Title(title)
	pp.Records(records...)
	return nil
}

func resolveDate(v string) (string, error) {
	if v == "today" {
		return record.DateKey(time.Now()), nil
	}
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return "", fmt.Errorf("dates look like 2024-03-15: %w", err)
	}
	return record.DateKey(t), nil
}
