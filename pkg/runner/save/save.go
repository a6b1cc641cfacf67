package save

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/editor"
	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/gateway"
)

// Save records an emotion for one day through the editor flow.
type Save struct {
	Date     string // YYYY-MM-DD or "today"
	Emotion  string
	Memo     string
	Activity string // label or numeric id, empty for none

	App *app.App
}

const layoutISO = "2006-01-02"

func (n *Save) Do(ctx context.Context) error {
	if n.App.View != app.ViewCalendar {
		return errors.New("not signed in; run: moodcal login")
	}

	date, err := n.resolveDate()
	if err != nil {
		return err
	}

	if n.Emotion != "" && !emotion.Known(n.Emotion) {
		return fmt.Errorf("unknown emotion %q; pick one of %s", n.Emotion, kindList())
	}

	// Prefill follows the calendar's own resolution so editing from the
	// CLI sees the same record the grid shows.
	rec := calendar.NewReconciler(n.App.Records, n.App.Gateway)
	rec.SetCursor(ctx, date)
	existing, _ := rec.Resolve(date)

	ed := editor.New(date, existing, n.App.Records, n.App.Gateway)
	if n.Emotion != "" {
		ed.SelectEmotion(n.Emotion)
	}
	if n.Memo != "" {
		ed.SetComment(n.Memo)
	}
	if n.Activity != "" {
		act, ok := emotion.ActivityForLabel(n.Activity)
		if !ok {
			return fmt.Errorf("unknown activity %q; pick one of %s", n.Activity, activityList())
		}
		ed.SetActivity(act.ID)
	}

	saved, err := ed.Save(ctx)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrNoEmotion):
			return fmt.Errorf("an emotion is required; pick one of %s", kindList())
		case errors.Is(err, gateway.ErrNetworkUnreachable):
			return errors.New("save failed: cannot reach the server")
		default:
			return fmt.Errorf("save failed: %s", gateway.FailureMessage(err))
		}
	}

	k := emotion.Display(saved.Emotion)
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(color.Output, "saved %s %s for %s\n", k.Glyph, k.Label, saved.Date)
	return nil
}

func (n *Save) resolveDate() (time.Time, error) {
	if n.Date == "" || n.Date == "today" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(layoutISO, n.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates look like 2024-03-15: %w", err)
	}
	return t, nil
}

func kindList() string {
	ids := make([]string, 0, len(emotion.Kinds()))
	for _, k := range emotion.Kinds() {
		ids = append(ids, k.ID)
	}
	return strings.Join(ids, ", ")
}

func activityList() string {
	labels := make([]string, 0, len(emotion.Activities()))
	for _, a := range emotion.Activities() {
		labels = append(labels, a.Label)
	}
	return strings.Join(labels, ", ")
}
