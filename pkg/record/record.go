// Package record holds the client-side copy of emotion records and the
// date-keyed map they live in. The backend owns the records; everything here
// is a derived, possibly stale view.
package record

import (
	"time"
)

const layoutISO = "2006-01-02"

// Record is one day's emotion entry. Identity is the date: one record per
// calendar day, last write wins.
type Record struct {
	Date    string     `json:"date"`
	Emotion string     `json:"emotion"`
	Memo    string     `json:"memo,omitempty"`
	Sports  *int       `json:"sports,omitempty"`
	Created *Timestamp `json:"created_at,omitempty"`
}

// DateKey normalizes an instant to its UTC calendar day. The same instant
// yields the same key regardless of the local clock offset.
func DateKey(t time.Time) string {
	return t.UTC().Format(layoutISO)
}

// NormalizeKey coerces a backend-provided date value into map-key form.
// Full timestamps are reduced to their UTC date portion; values already in
// YYYY-MM-DD form pass through untouched.
func NormalizeKey(v string) string {
	if len(v) <= len(layoutISO) {
		return v
	}
	if t, err := ParseTime(v); err == nil {
		return DateKey(t)
	}
	return v[:len(layoutISO)]
}

// Map is the in-memory record map for the active session, keyed by
// normalized date string. It is populated by a full reload after login and
// patched after each successful save. Not safe for concurrent use; the
// client is single-threaded at this layer.
type Map struct {
	byDate map[string]*Record
}

func NewMap() *Map {
	return &Map{byDate: make(map[string]*Record)}
}

// Get returns the record stored under the normalized key, if any.
func (m *Map) Get(key string) (*Record, bool) {
	r, ok := m.byDate[NormalizeKey(key)]
	return r, ok
}

// GetDate looks up the record for the calendar day of t.
func (m *Map) GetDate(t time.Time) (*Record, bool) {
	return m.Get(DateKey(t))
}

// Merge stores r under its normalized date key, replacing any prior entry
// for that day.
func (m *Map) Merge(r *Record) {
	if r == nil || r.Date == "" {
		return
	}
	m.byDate[NormalizeKey(r.Date)] = r
}

// Replace swaps the full contents of the map for the given records.
func (m *Map) Replace(records []*Record) {
	m.byDate = make(map[string]*Record, len(records))
	for _, r := range records {
		m.Merge(r)
	}
}

// Clear drops every record, used on logout.
func (m *Map) Clear() {
	m.byDate = make(map[string]*Record)
}

func (m *Map) Len() int {
	return len(m.byDate)
}

// All returns the records in no particular order.
func (m *Map) All() []*Record {
	out := make([]*Record, 0, len(m.byDate))
	for _, r := range m.byDate {
		out = append(out, r)
	}
	return out
}
