package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/printers"
)

// Cal prints the month grid for the viewed month.
type Cal struct {
	Month  string // YYYY-MM, empty for the current month
	Legend bool

	App *app.App
}

func (n *Cal) Do(ctx context.Context) error {
	if n.App.View != app.ViewCalendar {
		return errors.New("not signed in; run: moodcal login")
	}

	rec := calendar.NewReconciler(n.App.Records, n.App.Gateway)
	if n.Month != "" {
		t, err := time.Parse("2006-01", n.Month)
		if err != nil {
			return fmt.Errorf("months look like 2024-03: %w", err)
		}
		rec.SetCursor(ctx, t)
	} else {
		rec.Refresh(ctx)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	cursor := rec.Cursor()
	pp.Month(cursor.Format("January 2006"), rec.Grid())
	if n.Legend {
		pp.Legend()
	}
	return nil
}
