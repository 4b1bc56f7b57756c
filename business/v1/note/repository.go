package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/mindful-notes/business/v1/session"
	"github.com/ribgsilva/mindful-notes/platform/notify"
	"github.com/ribgsilva/mindful-notes/sys"
	"sort"
	"sync"
)

// Repository runs the note operations of the logged in identity against a Store and keeps a local
// copy of its notes, most recently updated first. The copy is only changed after the Store confirms
// an operation. Updates and deletes of the same note are serialized.
type Repository struct {
	session  *session.Store
	store    Store
	notifier notify.Notifier
	locks    keyedMutex

	mu      sync.RWMutex
	owner   string
	notes   []Note
	loading bool
	lastErr string
}

// NewRepository creates a Repository bound to the identity held by s.
// Its notes are cleared every time the identity changes.
func NewRepository(s *session.Store, store Store, notifier notify.Notifier) *Repository {
	r := &Repository{
		session:  s,
		store:    store,
		notifier: notifier,
		notes:    []Note{},
	}
	if id, ok := s.Current(); ok {
		r.owner = id.ID
	}
	s.Subscribe(r.identityChanged)
	return r
}

func (r *Repository) identityChanged(id *session.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owner = ""
	if id != nil {
		r.owner = id.ID
	}
	r.notes = []Note{}
	r.lastErr = ""
}

// Notes returns a copy of the local notes
func (r *Repository) Notes() []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Note{}, r.notes...)
}

func (r *Repository) IsLoading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// LastError returns the message of the latest failed operation, empty once a fetch starts
func (r *Repository) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// FetchAll replaces the local notes with the ones in the Store.
// On failure the local notes are kept and returned along with the error.
func (r *Repository) FetchAll(ctx context.Context) ([]Note, error) {
	id, ok := r.session.Current()
	if !ok {
		r.identityChanged(nil)
		return []Note{}, ErrNotAuthenticated
	}

	r.mu.Lock()
	r.loading = true
	r.lastErr = ""
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.loading = false
		r.mu.Unlock()
	}()

	notes, err := r.store.List(ctx, id.ID)
	if err != nil {
		return r.Notes(), r.fail(ctx, "fetch notes", err)
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owner != id.ID {
		// logged out or switched while the request was in flight
		return []Note{}, ErrNotAuthenticated
	}
	r.notes = notes
	return append([]Note{}, notes...), nil
}

// GetOne asks the Store for the note id, ok is false when there is none. The local notes are untouched.
func (r *Repository) GetOne(ctx context.Context, id string) (n Note, ok bool, err error) {
	ident, authenticated := r.session.Current()
	if !authenticated {
		return Note{}, false, ErrNotAuthenticated
	}

	n, err = r.store.Find(ctx, ident.ID, id)
	if err != nil {
		return Note{}, false, r.fail(ctx, "get note", err)
	}
	return n, n.ID != "", nil
}

// Create stores a new note and puts it first in the local notes.
// A color is drawn from the Palette when newN has none.
func (r *Repository) Create(ctx context.Context, newN NewNote) (Note, error) {
	ident, ok := r.session.Current()
	if !ok {
		return Note{}, ErrNotAuthenticated
	}
	if newN.Color == "" {
		newN.Color = RandomColor()
	}

	n, err := r.store.Create(ctx, ident.ID, newN)
	if err != nil {
		return Note{}, r.fail(ctx, "create note", err)
	}

	r.mu.Lock()
	if r.owner == ident.ID {
		r.notes = append([]Note{n}, r.notes...)
	}
	r.mu.Unlock()

	r.notifier.Notify(ctx, notify.Notification{
		Title:       "Note created",
		Description: "Your note has been saved",
		Variant:     notify.Default,
	})
	return n, nil
}

// Update sends the patch and replaces the local copy of the note where it is, without reordering
func (r *Repository) Update(ctx context.Context, id string, p Patch) (Note, error) {
	ident, ok := r.session.Current()
	if !ok {
		return Note{}, ErrNotAuthenticated
	}

	unlock := r.locks.Lock(id)
	defer unlock()

	n, err := r.store.Update(ctx, ident.ID, id, p)
	if err != nil {
		return Note{}, r.fail(ctx, "update note", err)
	}

	r.mu.Lock()
	if r.owner == ident.ID {
		for i := range r.notes {
			if r.notes[i].ID == id {
				r.notes[i] = n
				break
			}
		}
	}
	r.mu.Unlock()

	r.notifier.Notify(ctx, notify.Notification{
		Title:       "Note updated",
		Description: "Your changes have been saved",
		Variant:     notify.Default,
	})
	return n, nil
}

// Delete removes the note from the Store and from the local notes, reporting whether the Store had it
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	ident, ok := r.session.Current()
	if !ok {
		return false, ErrNotAuthenticated
	}

	unlock := r.locks.Lock(id)
	defer unlock()

	deleted, err := r.store.Delete(ctx, ident.ID, id)
	if err != nil {
		return false, r.fail(ctx, "delete note", err)
	}

	// a note missing from the store is dropped locally as well
	r.mu.Lock()
	if r.owner == ident.ID {
		for i := range r.notes {
			if r.notes[i].ID == id {
				r.notes = append(r.notes[:i:i], r.notes[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if !deleted {
		r.notifier.Notify(ctx, notify.Notification{
			Title:       "Note not found",
			Description: "The note was already deleted",
			Variant:     notify.Destructive,
		})
		return false, nil
	}
	r.notifier.Notify(ctx, notify.Notification{
		Title:       "Note deleted",
		Description: "Your note has been deleted",
		Variant:     notify.Default,
	})
	return true, nil
}

func (r *Repository) fail(ctx context.Context, op string, err error) error {
	sys.R.Log.Errorw("notes", "operation", op, "ERROR", err)

	r.mu.Lock()
	r.lastErr = err.Error()
	r.mu.Unlock()

	r.notifier.Notify(ctx, notify.Notification{
		Title:       "Error",
		Description: err.Error(),
		Variant:     notify.Destructive,
	})
	return fmt.Errorf("%s: %w", op, err)
}
