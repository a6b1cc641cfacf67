package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"tableflip.dev/moodcal/pkg/record"
	"tableflip.dev/moodcal/pkg/session"
)

type memoryTokens struct {
	access  string
	refresh string
	userID  string
	profile []byte
}

func (m *memoryTokens) Access() string  { return m.access }
func (m *memoryTokens) Refresh() string { return m.refresh }
func (m *memoryTokens) UserID() string  { return m.userID }

func (m *memoryTokens) SetTokens(access, refresh string) error {
	m.access, m.refresh = access, refresh
	return nil
}

func (m *memoryTokens) SetUserID(id string) error {
	m.userID = id
	return nil
}

func (m *memoryTokens) SaveProfile(p *session.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	m.profile = data
	return nil
}

func (m *memoryTokens) LoadProfile() (*session.Profile, error) {
	if m.profile == nil {
		return nil, session.ErrMalformed
	}
	p := &session.Profile{}
	if err := json.Unmarshal(m.profile, p); err != nil {
		return nil, session.ErrMalformed
	}
	if !p.Valid() {
		return nil, session.ErrMalformed
	}
	return p, nil
}

func (m *memoryTokens) Clear() error {
	m.access, m.refresh, m.userID, m.profile = "", "", "", nil
	return nil
}

func (m *memoryTokens) IsAuthenticated() bool { return m.access != "" }

type fakeGateway struct {
	alive   bool
	records []*record.Record
	listErr error
	saved   []record.Record
}

func (f *fakeGateway) CheckLiveness(_ context.Context) bool { return f.alive }

func (f *fakeGateway) ListEmotions(_ context.Context) ([]*record.Record, error) {
	return f.records, f.listErr
}

func (f *fakeGateway) SaveEmotion(_ context.Context, r record.Record) (*record.Record, error) {
	f.saved = append(f.saved, r)
	saved := r
	return &saved, nil
}

func (f *fakeGateway) CalendarMonth(_ context.Context, year, month int) (map[string]*record.Record, error) {
	return map[string]*record.Record{}, nil
}

func TestBootstrapRedirectHandoff(t *testing.T) {
	tokens := &memoryTokens{}
	gw := &fakeGateway{alive: false, records: []*record.Record{
		{Date: "2024-03-15", Emotion: "happy"},
	}}
	a := New(tokens, gw)

	raw := "http://localhost:3000/?access=a1&refresh=r1&user_id=42&theme=dark"
	cleaned := a.Bootstrap(context.Background(), raw)

	if a.View != ViewCalendar {
		t.Fatal("handoff should land in the calendar view")
	}
	if tokens.access != "a1" || tokens.refresh != "r1" || tokens.userID != "42" {
		t.Fatalf("tokens not persisted: %+v", tokens)
	}
	if a.Session == nil || a.Session.Profile.Username != "kakao_42" {
		t.Fatalf("session = %+v", a.Session)
	}

	u, err := url.Parse(cleaned)
	if err != nil {
		t.Fatalf("cleaned URL unparsable: %v", err)
	}
	q := u.Query()
	for _, param := range []string{"access", "refresh", "user_id"} {
		if q.Get(param) != "" {
			t.Fatalf("%s survived in cleaned URL %q", param, cleaned)
		}
	}
	if q.Get("theme") != "dark" {
		t.Fatalf("unrelated parameter dropped from %q", cleaned)
	}

	// The handoff path short-circuits the liveness probe, so records were
	// loaded even though the fake gateway reports not-alive.
	if a.Records.Len() != 1 {
		t.Fatalf("expected record reload, map has %d", a.Records.Len())
	}
}

func TestBootstrapLivenessFailureClearsSession(t *testing.T) {
	tokens := &memoryTokens{access: "valid", refresh: "valid", userID: "7"}
	_ = tokens.SaveProfile(&session.Profile{ID: 7, Username: "dana"})
	a := New(tokens, &fakeGateway{alive: false})

	a.Bootstrap(context.Background(), "http://localhost:3000/")

	if a.View != ViewLogin {
		t.Fatal("unreachable backend must land anonymous")
	}
	if tokens.IsAuthenticated() || tokens.profile != nil {
		t.Fatal("cached session must be cleared when the backend is down")
	}
	if a.Session != nil {
		t.Fatalf("session = %+v", a.Session)
	}
}

func TestBootstrapRestoresCachedSession(t *testing.T) {
	tokens := &memoryTokens{access: "a1", refresh: "r1", userID: "7"}
	_ = tokens.SaveProfile(&session.Profile{ID: 7, Username: "dana"})
	gw := &fakeGateway{alive: true, records: []*record.Record{
		{Date: "2024-03-14", Emotion: "calm"},
		{Date: "2024-03-15", Emotion: "happy"},
	}}
	a := New(tokens, gw)

	a.Bootstrap(context.Background(), "http://localhost:3000/")

	if a.View != ViewCalendar {
		t.Fatal("valid cached session should restore the calendar view")
	}
	if a.Session == nil || a.Session.Profile.Username != "dana" {
		t.Fatalf("session = %+v", a.Session)
	}
	if a.Records.Len() != 2 {
		t.Fatalf("expected full reload, map has %d", a.Records.Len())
	}
}

func TestBootstrapMalformedProfileLandsAnonymous(t *testing.T) {
	tokens := &memoryTokens{access: "a1", refresh: "r1"}
	tokens.profile = []byte(`{broken`)
	a := New(tokens, &fakeGateway{alive: true})

	a.Bootstrap(context.Background(), "http://localhost:3000/")

	if a.View != ViewLogin {
		t.Fatal("corrupt profile must land anonymous")
	}
	if tokens.IsAuthenticated() {
		t.Fatal("corrupt profile must clear the token store")
	}
}

func TestBootstrapNoTokensLandsAnonymous(t *testing.T) {
	tokens := &memoryTokens{}
	a := New(tokens, &fakeGateway{alive: true})

	a.Bootstrap(context.Background(), "http://localhost:3000/")

	if a.View != ViewLogin {
		t.Fatal("no tokens must land anonymous")
	}
}

func TestBootstrapReloadFailureStaysAuthenticated(t *testing.T) {
	tokens := &memoryTokens{access: "a1", refresh: "r1"}
	_ = tokens.SaveProfile(&session.Profile{Username: "dana"})
	gw := &fakeGateway{alive: true, listErr: errors.New("boom")}
	a := New(tokens, gw)

	a.Bootstrap(context.Background(), "http://localhost:3000/")

	// A record-load failure degrades to an empty map, not to logout.
	if a.View != ViewCalendar {
		t.Fatal("reload failure must not force the login view")
	}
	if a.Records.Len() != 0 {
		t.Fatalf("map should be empty, has %d", a.Records.Len())
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	tokens := &memoryTokens{access: "a1", refresh: "r1"}
	_ = tokens.SaveProfile(&session.Profile{Username: "dana"})
	gw := &fakeGateway{alive: true, records: []*record.Record{{Date: "2024-03-15", Emotion: "happy"}}}
	a := New(tokens, gw)
	a.Bootstrap(context.Background(), "http://localhost:3000/")

	a.Logout()

	if a.View != ViewLogin || a.Session != nil || a.Records.Len() != 0 {
		t.Fatal("logout left session state behind")
	}
	if tokens.IsAuthenticated() {
		t.Fatal("logout left tokens behind")
	}
}

func TestParseHandoffRequiresBothTokens(t *testing.T) {
	for _, raw := range []string{
		"http://localhost:3000/?access=a1",
		"http://localhost:3000/?refresh=r1",
		"http://localhost:3000/",
	} {
		if _, _, ok := parseHandoff(raw); ok {
			t.Fatalf("parseHandoff(%q) accepted a partial triple", raw)
		}
	}
	if _, cleaned, ok := parseHandoff("http://x/?access=a&refresh=r"); !ok || strings.Contains(cleaned, "access=") {
		t.Fatalf("parseHandoff full triple: ok=%v cleaned=%q", ok, cleaned)
	}
}
