package session

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/mindful-notes/platform/notify"
	"github.com/ribgsilva/mindful-notes/sys"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"sync"
)

const DefaultKey = "user"

// Store holds the current Identity and keeps it persisted under a single key of the bucket
type Store struct {
	bucket   *blob.Bucket
	key      string
	auth     Authenticator
	notifier notify.Notifier

	mu        sync.RWMutex
	identity  *Identity
	loading   bool
	listeners []func(*Identity)
}

// New creates a Store that is loading until Restore is called
func New(bucket *blob.Bucket, key string, auth Authenticator, notifier notify.Notifier) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		bucket:   bucket,
		key:      key,
		auth:     auth,
		notifier: notifier,
		loading:  true,
	}
}

// Subscribe registers fn to be called with the new identity every time it changes, nil meaning logged out
func (s *Store) Subscribe(fn func(*Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Current returns a copy of the identity, ok is false when nobody is logged in
func (s *Store) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Restore loads the identity persisted by a previous process.
// A missing or unreadable identity leaves the store logged out, a corrupt one is also removed.
func (s *Store) Restore(ctx context.Context) {
	logger := sys.R.Log
	defer s.setLoading(false)

	data, err := s.bucket.ReadAll(ctx, s.key)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return
	case err != nil:
		logger.Errorw("session", "status", "failed to read stored identity", "ERROR", err)
		return
	}

	var id Identity
	if err := json.Unmarshal(data, &id); err != nil || id.ID == "" {
		logger.Warnw("session", "status", "discarding corrupt stored identity", "ERROR", err)
		if err := s.bucket.Delete(ctx, s.key); err != nil {
			logger.Errorw("session", "status", "failed to remove corrupt identity", "ERROR", err)
		}
		return
	}

	s.set(&id)
}

// Login authenticates the credentials and persists the resulting identity
func (s *Store) Login(ctx context.Context, email, password string) (Identity, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	id, err := s.auth.Login(ctx, email, password)
	if err == nil {
		err = s.persist(ctx, id)
	}
	if err != nil {
		sys.R.Log.Errorw("session", "status", "login failed", "ERROR", err)
		s.notifier.Notify(ctx, notify.Notification{
			Title:       "Login failed",
			Description: "Please check your credentials and try again",
			Variant:     notify.Destructive,
		})
		return Identity{}, fmt.Errorf("login: %w", err)
	}

	s.set(&id)
	s.notifier.Notify(ctx, notify.Notification{
		Title:       "Logged in successfully",
		Description: fmt.Sprintf("Welcome back, %s!", id.Name),
		Variant:     notify.Default,
	})
	return id, nil
}

// Register creates the account and logs it in
func (s *Store) Register(ctx context.Context, name, email, password string) (Identity, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	id, err := s.auth.Register(ctx, name, email, password)
	if err == nil {
		err = s.persist(ctx, id)
	}
	if err != nil {
		sys.R.Log.Errorw("session", "status", "registration failed", "ERROR", err)
		s.notifier.Notify(ctx, notify.Notification{
			Title:       "Registration failed",
			Description: "Please try again later",
			Variant:     notify.Destructive,
		})
		return Identity{}, fmt.Errorf("register: %w", err)
	}

	s.set(&id)
	s.notifier.Notify(ctx, notify.Notification{
		Title:       "Account created",
		Description: "You've been successfully registered and logged in",
		Variant:     notify.Default,
	})
	return id, nil
}

// Logout forgets the identity. It is cleared from memory even when removing it from the bucket fails.
func (s *Store) Logout(ctx context.Context) error {
	s.set(nil)

	var result error
	if err := s.bucket.Delete(ctx, s.key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		sys.R.Log.Errorw("session", "status", "failed to remove stored identity", "ERROR", err)
		result = fmt.Errorf("logout: %w", err)
	}

	s.notifier.Notify(ctx, notify.Notification{
		Title:       "Logged out",
		Description: "You've been successfully logged out",
		Variant:     notify.Default,
	})
	return result
}

func (s *Store) persist(ctx context.Context, id Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return fmt.Errorf("store identity: %w", err)
	}
	return nil
}

func (s *Store) set(id *Identity) {
	s.mu.Lock()
	s.identity = id
	listeners := append([]func(*Identity){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		if id == nil {
			fn(nil)
			continue
		}
		cp := *id
		fn(&cp)
	}
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}
