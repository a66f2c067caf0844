// Package session owns the current identity and bearer credential with an
// explicit lifecycle: Login stores it, Logout clears it, Restore brings it
// back from disk on startup. Everything else borrows it read-only.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/logging"
)

// ErrNoSession means no credential is stored locally.
var ErrNoSession = errors.New("no stored session")

const (
	keyIdentity = "identity"
	keyToken    = "token"
)

// Session couples the authenticated identity with its bearer token.
type Session struct {
	Identity models.Identity
	Token    string
}

// Holder is the credential holder. Safe for concurrent reads; writes happen
// only on login/logout/restore.
type Holder struct {
	store *Store
	log   logging.Logger
	now   func() time.Time

	mu      sync.RWMutex
	current *Session
}

// NewHolder builds a holder backed by store.
func NewHolder(store *Store, log logging.Logger) *Holder {
	return &Holder{store: store, log: log, now: time.Now}
}

// Login installs the credential and persists it.
func (h *Holder) Login(ctx context.Context, identity models.Identity, token string) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := h.store.SetAll(ctx, map[string][]byte{
		keyIdentity: raw,
		keyToken:    []byte(token),
	}); err != nil {
		return err
	}

	h.mu.Lock()
	h.current = &Session{Identity: identity, Token: token}
	h.mu.Unlock()

	h.log.Info(ctx, "logged in", "username", identity.Username, "role", identity.Role)
	return nil
}

// Logout clears the in-memory credential and wipes the store.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	h.current = nil
	h.mu.Unlock()
	return h.store.Clear(ctx)
}

// Restore loads a persisted credential. It returns ErrNoSession when none
// is stored, and common.ErrTokenExpired / common.ErrInvalidToken when the
// stored token is no longer usable (the stale entry is wiped in that case).
func (h *Holder) Restore(ctx context.Context) error {
	token, err := h.store.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	rawIdentity, err := h.store.Get(ctx, keyIdentity)
	if err != nil {
		return err
	}
	if token == nil || rawIdentity == nil {
		return ErrNoSession
	}

	if err := checkToken(string(token), h.now()); err != nil {
		h.log.Info(ctx, "stored session unusable", "err", err)
		_ = h.store.Clear(ctx)
		return err
	}

	var identity models.Identity
	if err := json.Unmarshal(rawIdentity, &identity); err != nil {
		_ = h.store.Clear(ctx)
		return fmt.Errorf("unmarshal identity: %w", err)
	}

	h.mu.Lock()
	h.current = &Session{Identity: identity, Token: string(token)}
	h.mu.Unlock()
	return nil
}

// Identity returns a copy of the current identity, or nil when logged out.
func (h *Holder) Identity() *models.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil
	}
	identity := h.current.Identity
	return &identity
}

// Token returns the current bearer token, "" when logged out. It satisfies
// api.TokenSource.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return ""
	}
	return h.current.Token
}
