package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/moodcal/pkg/record"
)

type fakeTokens struct {
	access  string
	refresh string
	userID  string
	cleared bool
}

func (f *fakeTokens) Access() string { return f.access }
func (f *fakeTokens) SetTokens(access, refresh string) error {
	f.access, f.refresh = access, refresh
	return nil
}
func (f *fakeTokens) SetUserID(id string) error {
	f.userID = id
	return nil
}
func (f *fakeTokens) Clear() error {
	f.access, f.refresh, f.userID = "", "", ""
	f.cleared = true
	return nil
}

func TestBearerHeaderAttachedOnlyWithToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tokens := &fakeTokens{}
	c := New(srv.URL, tokens)

	if _, err := c.ListEmotions(context.Background()); err != nil {
		t.Fatalf("list emotions: %v", err)
	}
	if got != "" {
		t.Fatalf("anonymous call sent Authorization %q", got)
	}

	tokens.access = "tok-123"
	if _, err := c.ListEmotions(context.Background()); err != nil {
		t.Fatalf("list emotions: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestRequestFailedCarriesStatusAndPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"no such user"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeTokens{})
	_, err := c.Login(context.Background(), "nope", "wrong")

	var rf *RequestFailed
	if !errors.As(err, &rf) {
		t.Fatalf("expected RequestFailed, got %v", err)
	}
	if rf.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", rf.Status)
	}
	if rf.Detail() != "no such user" {
		t.Fatalf("detail = %q", rf.Detail())
	}
	if !IsBadRequest(err) {
		t.Fatal("IsBadRequest = false for a 400")
	}
}

func TestRequestFailedUnparsableBodyYieldsEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeTokens{})
	_, err := c.ListEmotions(context.Background())

	var rf *RequestFailed
	if !errors.As(err, &rf) {
		t.Fatalf("expected RequestFailed, got %v", err)
	}
	if len(rf.Payload) != 0 {
		t.Fatalf("expected empty payload, got %v", rf.Payload)
	}
	if rf.Detail() != "" {
		t.Fatalf("detail = %q", rf.Detail())
	}
}

func TestLoginPersistsGrant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"msg":"ok","user_id":42,"access":"a1","refresh":"r1"}`))
	}))
	defer srv.Close()

	tokens := &fakeTokens{}
	c := New(srv.URL, tokens)

	resp, err := c.Login(context.Background(), "dana", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Access != "a1" {
		t.Fatalf("access = %q", resp.Access)
	}
	if tokens.access != "a1" || tokens.refresh != "r1" || tokens.userID != "42" {
		t.Fatalf("grant not persisted: %+v", tokens)
	}
}

func TestCheckLivenessTrueOnAnyHTTPResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeTokens{})
	if !c.CheckLiveness(context.Background()) {
		t.Fatal("5xx response should still count as alive")
	}
}

func TestCheckLivenessFalseOnConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, &fakeTokens{})
	if c.CheckLiveness(context.Background()) {
		t.Fatal("closed server should read as down")
	}
}

func TestCalendarMonth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/emotions/calendar/2024/3/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"emotions":{"15":{"date":"2024-03-15","emotion":"happy"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeTokens{access: "tok"})
	got, err := c.CalendarMonth(context.Background(), 2024, 3)
	if err != nil {
		t.Fatalf("calendar month: %v", err)
	}
	if r, ok := got["15"]; !ok || r.Emotion != "happy" {
		t.Fatalf("month map = %v", got)
	}
}

func TestSaveEmotionNonJSONEchoesSubmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(`saved`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeTokens{access: "tok"})
	in := record.Record{Date: "2024-03-15", Emotion: "happy"}
	got, err := c.SaveEmotion(context.Background(), in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.Date != in.Date || got.Emotion != in.Emotion {
		t.Fatalf("echoed record = %+v", got)
	}
}

func TestNetworkFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, &fakeTokens{})
	_, err := c.ListEmotions(context.Background())
	if !errors.Is(err, ErrNetworkUnreachable) {
		t.Fatalf("expected ErrNetworkUnreachable, got %v", err)
	}
}
