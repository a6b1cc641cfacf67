// Package calendar reconciles the two sources of month data — the bulk
// per-month fetch and the incrementally patched local record map — into a
// single per-day view, and owns the viewed-month cursor.
package calendar

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"tableflip.dev/moodcal/pkg/emotion"
	"tableflip.dev/moodcal/pkg/record"
)

// MonthFetcher fetches the backend month view.
type MonthFetcher interface {
	CalendarMonth(ctx context.Context, year, month int) (map[string]*record.Record, error)
}

// Reconciler holds the viewed-month cursor and the month-scoped record map.
// Month fetches carry a sequence number; a fetch that completes after a newer
// one was issued is discarded, so rapid navigation cannot install stale data.
type Reconciler struct {
	local   *record.Map
	fetcher MonthFetcher

	cursor  time.Time // first of the viewed month
	monthly map[string]*record.Record

	seq    uint64 // last issued fetch
	newest uint64 // last applied fetch
}

func NewReconciler(local *record.Map, fetcher MonthFetcher) *Reconciler {
	now := time.Now()
	return &Reconciler{
		local:   local,
		fetcher: fetcher,
		cursor:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		monthly: map[string]*record.Record{},
	}
}

// Cursor returns the first day of the viewed month.
func (r *Reconciler) Cursor() time.Time {
	return r.cursor
}

// SetCursor jumps the view to the month containing t and refreshes.
func (r *Reconciler) SetCursor(ctx context.Context, t time.Time) {
	r.MoveCursor(t)
	r.Refresh(ctx)
}

// MoveCursor jumps the view to the month containing t without fetching. UIs
// that fetch asynchronously pair this with IssueFetch and Apply.
func (r *Reconciler) MoveCursor(t time.Time) {
	r.cursor = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PreviousMonth shifts the cursor back one month and re-fetches.
func (r *Reconciler) PreviousMonth(ctx context.Context) {
	r.cursor = r.cursor.AddDate(0, -1, 0)
	r.Refresh(ctx)
}

// NextMonth shifts the cursor forward one month and re-fetches.
func (r *Reconciler) NextMonth(ctx context.Context) {
	r.cursor = r.cursor.AddDate(0, 1, 0)
	r.Refresh(ctx)
}

// IssueFetch reserves a sequence number for an asynchronous month fetch of
// the current cursor. The caller fetches and hands the result to Apply.
func (r *Reconciler) IssueFetch() (seq uint64, year int, month int) {
	r.seq++
	return r.seq, r.cursor.Year(), int(r.cursor.Month())
}

// Apply installs a completed fetch. Results that are not from the latest
// issued fetch are dropped. Fetch failures are swallowed: the monthly map is
// reset to empty and display falls back to the local record map.
func (r *Reconciler) Apply(seq uint64, emotions map[string]*record.Record, err error) bool {
	if seq != r.seq || seq <= r.newest {
		return false
	}
	r.newest = seq
	if err != nil {
		r.monthly = map[string]*record.Record{}
		return true
	}
	if emotions == nil {
		emotions = map[string]*record.Record{}
	}
	r.monthly = emotions
	return true
}

// Patch installs a saved record into the month view immediately, without
// waiting for the next fetch. Records outside the viewed month are ignored;
// the local map already covers them.
func (r *Reconciler) Patch(rec *record.Record) {
	if rec == nil {
		return
	}
	t, err := time.Parse("2006-01-02", record.NormalizeKey(rec.Date))
	if err != nil {
		return
	}
	if t.Month() == r.cursor.Month() && t.Year() == r.cursor.Year() {
		r.monthly[strconv.Itoa(t.Day())] = rec
	}
}

// Refresh synchronously fetches the viewed month.
func (r *Reconciler) Refresh(ctx context.Context) {
	seq, year, month := r.IssueFetch()
	emotions, err := r.fetcher.CalendarMonth(ctx, year, month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "moodcal: load month: %v\n", err)
	}
	r.Apply(seq, emotions, err)
}

// Day is one cell of the month grid.
type Day struct {
	Date    time.Time
	Day     int
	InMonth bool // interactive; leading/trailing days are display-only
	IsToday bool
	Record  *record.Record
	Display emotion.Kind
}

// Grid lays out the viewed month as whole Sunday-to-Saturday weeks: the grid
// starts on the Sunday at or before the 1st and ends on the Saturday at or
// after the last day.
func (r *Reconciler) Grid() [][]Day {
	first := r.cursor
	start := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	today := record.DateKey(time.Now())

	var weeks [][]Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
		week := make([]Day, 7)
		for i := 0; i < 7; i++ {
			date := d.AddDate(0, 0, i)
			rec, _ := r.Resolve(date)
			week[i] = Day{
				Date:    date,
				Day:     date.Day(),
				InMonth: date.Month() == first.Month(),
				IsToday: record.DateKey(date) == today,
				Record:  rec,
				Display: displayFor(rec),
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Resolve finds the record shown for a date: the month-scoped map first
// (keyed by day-of-month), then the local map (keyed by normalized date).
func (r *Reconciler) Resolve(date time.Time) (*record.Record, bool) {
	if date.Month() == r.cursor.Month() && date.Year() == r.cursor.Year() {
		if rec, ok := r.monthly[strconv.Itoa(date.Day())]; ok && rec != nil {
			return rec, true
		}
	}
	if rec, ok := r.local.GetDate(date); ok {
		return rec, true
	}
	return nil, false
}

// Selectable reports whether the date can open the editor: only days of the
// viewed month are interactive.
func (r *Reconciler) Selectable(date time.Time) bool {
	return date.Month() == r.cursor.Month() && date.Year() == r.cursor.Year()
}

func displayFor(rec *record.Record) emotion.Kind {
	if rec == nil {
		return emotion.Kind{}
	}
	return emotion.Display(rec.Emotion)
}
