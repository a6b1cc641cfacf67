package record

import (
	"testing"
	"time"
)

func TestDateKeyIsTimezoneIndependent(t *testing.T) {
	// The same instant expressed in three zones must produce one key.
	utc := time.Date(2024, time.March, 15, 23, 30, 0, 0, time.UTC)
	seoul := utc.In(time.FixedZone("KST", 9*60*60))
	la := utc.In(time.FixedZone("PDT", -7*60*60))

	want := "2024-03-15"
	for _, tt := range []time.Time{utc, seoul, la} {
		if got := DateKey(tt); got != want {
			t.Fatalf("DateKey(%v) = %q, want %q", tt, got, want)
		}
	}
}

func TestDateKeyStableUnderRederivation(t *testing.T) {
	now := time.Now()
	first := DateKey(now)
	for i := 0; i < 3; i++ {
		if got := DateKey(now); got != first {
			t.Fatalf("DateKey not stable: %q then %q", first, got)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-15", "2024-03-15"},
		{"2024-03-15T23:30:00+09:00", "2024-03-15"},
		{"2024-03-15T01:00:00Z", "2024-03-15"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeKey(tc.in); got != tc.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapMergeLastWriteWins(t *testing.T) {
	m := NewMap()
	m.Merge(&Record{Date: "2024-03-15", Emotion: "sad"})
	m.Merge(&Record{Date: "2024-03-15", Emotion: "happy"})

	got, ok := m.Get("2024-03-15")
	if !ok || got.Emotion != "happy" {
		t.Fatalf("expected last write to win, got %+v", got)
	}
	if m.Len() != 1 {
		t.Fatalf("expected one record, got %d", m.Len())
	}
}

func TestMapMergeDoesNotTouchOtherDates(t *testing.T) {
	m := NewMap()
	m.Merge(&Record{Date: "2024-03-14", Emotion: "calm"})
	m.Merge(&Record{Date: "2024-03-15", Emotion: "happy"})

	other, ok := m.Get("2024-03-14")
	if !ok || other.Emotion != "calm" {
		t.Fatalf("neighboring date affected by merge: %+v", other)
	}
}

func TestMapReplace(t *testing.T) {
	m := NewMap()
	m.Merge(&Record{Date: "2023-01-01", Emotion: "sad"})
	m.Replace([]*Record{
		{Date: "2024-03-15T09:00:00Z", Emotion: "happy"},
		{Date: "2024-03-16", Emotion: "calm"},
	})
	if m.Len() != 2 {
		t.Fatalf("expected 2 records after replace, got %d", m.Len())
	}
	if _, ok := m.Get("2023-01-01"); ok {
		t.Fatal("replace kept a stale record")
	}
	if r, ok := m.Get("2024-03-15"); !ok || r.Emotion != "happy" {
		t.Fatalf("timestamped date not normalized on replace: %+v", r)
	}
}
