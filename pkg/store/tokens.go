package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodcal/pkg/session"
)

// Tokens is the persisted credential store. IsAuthenticated only checks for
// token presence; nothing here validates expiry or signatures, and there is
// no refresh exchange. Once the backend rejects the access token the only
// recovery is a full re-login.
type Tokens interface {
	Access() string
	Refresh() string
	UserID() string
	SetTokens(access, refresh string) error
	SetUserID(id string) error
	SaveProfile(p *session.Profile) error
	LoadProfile() (*session.Profile, error)
	Clear() error
	IsAuthenticated() bool
}

const (
	keyAccess  = "access"
	keyRefresh = "refresh"
	keyUserID  = "user_id"
	keyProfile = "current_user"
)

// Open creates a Tokens store backed by diskv under the config base path.
func Open(cfg Config) (Tokens, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &tokens{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{"session"} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type tokens struct {
	d *diskv.Diskv
}

func (t *tokens) read(key string) string {
	val, err := t.d.Read(key)
	if err != nil {
		return ""
	}
	return string(val)
}

func (t *tokens) Access() string  { return t.read(keyAccess) }
func (t *tokens) Refresh() string { return t.read(keyRefresh) }
func (t *tokens) UserID() string  { return t.read(keyUserID) }

func (t *tokens) SetTokens(access, refresh string) error {
	if err := t.d.Write(keyAccess, []byte(access)); err != nil {
		return fmt.Errorf("store: write access token: %w", err)
	}
	if err := t.d.Write(keyRefresh, []byte(refresh)); err != nil {
		return fmt.Errorf("store: write refresh token: %w", err)
	}
	return nil
}

func (t *tokens) SetUserID(id string) error {
	if err := t.d.Write(keyUserID, []byte(id)); err != nil {
		return fmt.Errorf("store: write user id: %w", err)
	}
	return nil
}

func (t *tokens) SaveProfile(p *session.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: marshal profile: %w", err)
	}
	if err := t.d.Write(keyProfile, data); err != nil {
		return fmt.Errorf("store: write profile: %w", err)
	}
	return nil
}

func (t *tokens) LoadProfile() (*session.Profile, error) {
	val, err := t.d.Read(keyProfile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, session.ErrMalformed
		}
		return nil, fmt.Errorf("%w: %v", session.ErrMalformed, err)
	}
	p := &session.Profile{}
	if err := json.Unmarshal(val, p); err != nil {
		return nil, fmt.Errorf("%w: %v", session.ErrMalformed, err)
	}
	if !p.Valid() {
		return nil, session.ErrMalformed
	}
	return p, nil
}

// Clear removes every persisted credential together so a failed bootstrap
// never leaves a partial session behind.
func (t *tokens) Clear() error {
	var firstErr error
	for _, key := range []string{keyAccess, keyRefresh, keyUserID, keyProfile} {
		if err := t.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (t *tokens) IsAuthenticated() bool {
	return t.Access() != ""
}
