package editor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodcal/pkg/record"
)

type fakeSaver struct {
	calls  int
	err    error
	result *record.Record
	last   record.Record
}

func (f *fakeSaver) SaveEmotion(_ context.Context, r record.Record) (*record.Record, error) {
	f.calls++
	f.last = r
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	saved := r
	return &saved, nil
}

var testDate = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestSaveWithoutEmotionNeverHitsNetwork(t *testing.T) {
	saver := &fakeSaver{}
	records := record.NewMap()
	e := New(testDate, nil, records, saver)
	e.SetComment("long day")

	_, err := e.Save(context.Background())
	if !errors.Is(err, ErrNoEmotion) {
		t.Fatalf("expected ErrNoEmotion, got %v", err)
	}
	if saver.calls != 0 {
		t.Fatalf("save call reached the gateway %d times", saver.calls)
	}
	if records.Len() != 0 {
		t.Fatal("local map changed on a blocked save")
	}
}

func TestSaveMergesCanonicalRecord(t *testing.T) {
	saver := &fakeSaver{result: &record.Record{Date: "2024-03-15", Emotion: "happy", Memo: "server copy"}}
	records := record.NewMap()
	e := New(testDate, nil, records, saver)
	e.SelectEmotion("happy")
	e.SetComment("  local copy  ")

	saved, err := e.Save(context.Background())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Memo != "server copy" {
		t.Fatalf("expected the canonical record back, got %+v", saved)
	}
	got, ok := records.Get("2024-03-15")
	if !ok || got.Memo != "server copy" {
		t.Fatalf("canonical record not merged: %+v", got)
	}
	if saver.last.Memo != "local copy" {
		t.Fatalf("comment not trimmed in payload: %q", saver.last.Memo)
	}
	if saver.last.Date != "2024-03-15" {
		t.Fatalf("payload keyed by %q", saver.last.Date)
	}
}

func TestSaveFailureLeavesMapUntouchedAndKeepsInput(t *testing.T) {
	saver := &fakeSaver{err: errors.New("boom")}
	records := record.NewMap()
	records.Merge(&record.Record{Date: "2024-03-15", Emotion: "calm"})
	e := New(testDate, nil, records, saver)
	e.SelectEmotion("happy")
	e.SetComment("do not lose me")

	_, err := e.Save(context.Background())
	if err == nil {
		t.Fatal("expected save failure")
	}

	prior, _ := records.Get("2024-03-15")
	if prior.Emotion != "calm" {
		t.Fatalf("failed save modified the map: %+v", prior)
	}
	if e.Emotion() != "happy" || e.Comment() != "do not lose me" {
		t.Fatal("editor lost its input after a failed save")
	}
}

func TestCommentCappedAtInputTime(t *testing.T) {
	e := New(testDate, nil, record.NewMap(), &fakeSaver{})
	e.SetComment(strings.Repeat("가", 300))
	if got := len([]rune(e.Comment())); got != MaxCommentLen {
		t.Fatalf("comment length = %d, want %d", got, MaxCommentLen)
	}
}

func TestPrefillFromExistingRecord(t *testing.T) {
	sports := 2
	existing := &record.Record{Date: "2024-03-15", Emotion: "calm", Memo: "nap", Sports: &sports}
	e := New(testDate, existing, record.NewMap(), &fakeSaver{})

	if e.Emotion() != "calm" || e.Comment() != "nap" {
		t.Fatalf("prefill = %q/%q", e.Emotion(), e.Comment())
	}
	if id, ok := e.Activity(); !ok || id != 2 {
		t.Fatalf("activity prefill = %d/%v", id, ok)
	}

	// Mutating the editor's copy must not touch the existing record.
	e.SetActivity(5)
	if *existing.Sports != 2 {
		t.Fatal("editor aliased the existing record's activity")
	}
}

func TestLastWriteWinsOnRepeatSave(t *testing.T) {
	saver := &fakeSaver{}
	records := record.NewMap()

	first := New(testDate, nil, records, saver)
	first.SelectEmotion("sad")
	if _, err := first.Save(context.Background()); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := New(testDate, nil, records, saver)
	second.SelectEmotion("happy")
	if _, err := second.Save(context.Background()); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, _ := records.Get("2024-03-15")
	if got.Emotion != "happy" {
		t.Fatalf("expected last write to win, got %+v", got)
	}
}
