// Package editor implements the date-scoped entry form: prefill, input
// rules, and the save round trip that patches the local record map.
package editor

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/moodcal/pkg/record"
)

// ErrNoEmotion blocks a save with no emotion selected. It never reaches the
// network.
var ErrNoEmotion = errors.New("editor: an emotion must be selected")

// MaxCommentLen caps the free-text comment, enforced as the user types, not
// only at save time.
const MaxCommentLen = 200

// Saver is the slice of the gateway the editor needs.
type Saver interface {
	SaveEmotion(ctx context.Context, r record.Record) (*record.Record, error)
}

// Editor edits exactly one date's record.
type Editor struct {
	key     string
	emotion string
	comment string
	sports  *int

	saver   Saver
	records *record.Map
}

// New opens an editor for date, prefilled from existing when a record is
// already resolvable for that day (existing may be nil).
func New(date time.Time, existing *record.Record, records *record.Map, saver Saver) *Editor {
	e := &Editor{
		key:     record.DateKey(date),
		saver:   saver,
		records: records,
	}
	if existing != nil {
		e.emotion = existing.Emotion
		e.SetComment(existing.Memo)
		if existing.Sports != nil {
			v := *existing.Sports
			e.sports = &v
		}
	}
	return e
}

// DateKey returns the normalized day this editor is scoped to.
func (e *Editor) DateKey() string { return e.key }

func (e *Editor) Emotion() string { return e.emotion }
func (e *Editor) Comment() string { return e.comment }

func (e *Editor) Activity() (int, bool) {
	if e.sports == nil {
		return 0, false
	}
	return *e.sports, true
}

// SelectEmotion sets the emotion id for this entry.
func (e *Editor) SelectEmotion(id string) {
	e.emotion = id
}

// SetComment replaces the comment, capping it at MaxCommentLen runes.
func (e *Editor) SetComment(s string) {
	runes := []rune(s)
	if len(runes) > MaxCommentLen {
		runes = runes[:MaxCommentLen]
	}
	e.comment = string(runes)
}

// SetActivity tags the entry with an activity id; id 0 clears the tag.
func (e *Editor) SetActivity(id int) {
	if id == 0 {
		e.sports = nil
		return
	}
	e.sports = &id
}

// Save validates, submits, and on success merges the canonical record into
// the local map under this editor's date key. On failure the map is left
// untouched and the editor keeps its input, so nothing the user typed is
// lost.
func (e *Editor) Save(ctx context.Context) (*record.Record, error) {
	if e.emotion == "" {
		return nil, ErrNoEmotion
	}

	payload := record.Record{
		Date:    e.key,
		Emotion: e.emotion,
		Memo:    strings.TrimSpace(e.comment),
		Sports:  e.sports,
		Created: &record.Timestamp{Time: time.Now()},
	}

	saved, err := e.saver.SaveEmotion(ctx, payload)
	if err != nil {
		return nil, err
	}
	if saved.Date == "" {
		saved.Date = e.key
	}
	e.records.Merge(saved)
	return saved, nil
}
