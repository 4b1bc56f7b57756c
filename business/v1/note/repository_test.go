package note

import (
	"context"
	"sync"
	"testing"

	"github.com/ribgsilva/mindful-notes/business/v1/session"
	"github.com/ribgsilva/mindful-notes/platform/notify"
	"github.com/ribgsilva/mindful-notes/sys"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
)

type fixture struct {
	session *session.Store
	store   *memStore
	rec     *notify.Recorder
	repo    *Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sys.R.Log = zap.NewNop().Sugar()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	rec := &notify.Recorder{}
	s := session.New(bucket, session.DefaultKey, session.DemoAuthenticator{}, rec)
	s.Restore(context.Background())

	store := newMemStore()
	return &fixture{session: s, store: store, rec: rec, repo: NewRepository(s, store, rec)}
}

func (f *fixture) login(t *testing.T, email string) session.Identity {
	t.Helper()
	id, err := f.session.Login(context.Background(), email, "pass")
	require.NoError(t, err)
	return id
}

func (f *fixture) requireCoherent(t *testing.T) {
	t.Helper()
	cached := f.repo.Notes()
	ident, _ := f.session.Current()
	remote, err := f.store.List(context.Background(), ident.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, remote, cached)
}

func strPtr(s string) *string { return &s }

func TestCacheCoherence(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	_, err := f.repo.FetchAll(ctx)
	require.NoError(t, err)

	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		n, err := f.repo.Create(ctx, NewNote{Title: title, Content: title + " content"})
		require.NoError(t, err)
		ids = append(ids, n.ID)
		f.requireCoherent(t)
	}

	// newest first
	cached := f.repo.Notes()
	require.Equal(t, ids[2], cached[0].ID)
	require.Equal(t, ids[0], cached[2].ID)

	_, err = f.repo.Update(ctx, ids[0], Patch{Content: strPtr("changed")})
	require.NoError(t, err)
	f.requireCoherent(t)
	// updated in place, no reordering
	require.Equal(t, ids[0], f.repo.Notes()[2].ID)

	deleted, err := f.repo.Delete(ctx, ids[1])
	require.NoError(t, err)
	require.True(t, deleted)
	f.requireCoherent(t)

	fetched, err := f.repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	require.Equal(t, ids[0], fetched[0].ID)
}

func TestCreateThenGetOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	created, err := f.repo.Create(ctx, NewNote{Title: "Groceries", Content: "milk, eggs", Color: "#0EA5E9"})
	require.NoError(t, err)

	got, ok, err := f.repo.GetOne(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, created, got)
	require.Equal(t, "#0EA5E9", got.Color)

	last, _ := f.rec.Last()
	require.Equal(t, "Note created", last.Title)
}

func TestCreateDefaultsToPaletteColor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	for i := 0; i < 20; i++ {
		n, err := f.repo.Create(ctx, NewNote{Title: "Groceries", Content: "milk, eggs"})
		require.NoError(t, err)
		require.Contains(t, []string{"#9b87f5", "#0EA5E9", "#14b8a6", "#7E69AB"}, n.Color)
	}
}

func TestUpdateChangesOnlyTitle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	before, err := f.repo.Create(ctx, NewNote{Title: "Groceries", Content: "milk, eggs"})
	require.NoError(t, err)

	after, err := f.repo.Update(ctx, before.ID, Patch{Title: strPtr("X")})
	require.NoError(t, err)

	require.Equal(t, "X", after.Title)
	require.Equal(t, before.Content, after.Content)
	require.Equal(t, before.Color, after.Color)
	require.Equal(t, before.CreatedAt, after.CreatedAt)
	require.True(t, after.UpdatedAt.After(before.UpdatedAt))

	last, _ := f.rec.Last()
	require.Equal(t, "Note updated", last.Title)
}

func TestDeleteThenGetOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	n, err := f.repo.Create(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)

	deleted, err := f.repo.Delete(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, ok, err := f.repo.GetOne(ctx, n.ID)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, f.repo.Notes())

	last, _ := f.rec.Last()
	require.Equal(t, "Note deleted", last.Title)

	deleted, err = f.repo.Delete(ctx, n.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	last, _ = f.rec.Last()
	require.Equal(t, "Note not found", last.Title)
	require.Equal(t, notify.Destructive, last.Variant)
}

func TestIdentityIsolation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	mine, err := f.repo.Create(ctx, NewNote{Title: "secret", Content: "only ada"})
	require.NoError(t, err)
	require.NoError(t, f.session.Logout(ctx))

	f.login(t, "bob@example.com")
	require.Empty(t, f.repo.Notes())

	notes, err := f.repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Empty(t, notes)

	_, ok, err := f.repo.GetOne(ctx, mine.ID)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = f.repo.Update(ctx, mine.ID, Patch{Title: strPtr("stolen")})
	require.ErrorIs(t, err, ErrNotFound)

	deleted, err := f.repo.Delete(ctx, mine.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	got, err := f.store.Find(ctx, mine.UserID, mine.ID)
	require.NoError(t, err)
	require.Equal(t, "secret", got.Title)
}

func TestFetchWhenStoreIsUnreachable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	_, err := f.repo.Create(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)
	before := f.repo.Notes()

	f.store.setDown(true)
	notes, err := f.repo.FetchAll(ctx)

	require.ErrorIs(t, err, errUnreachable)
	require.Equal(t, before, notes)
	require.Equal(t, before, f.repo.Notes())
	require.Equal(t, errUnreachable.Error(), f.repo.LastError())
	require.False(t, f.repo.IsLoading())

	last, _ := f.rec.Last()
	require.Equal(t, notify.Destructive, last.Variant)
	require.Equal(t, errUnreachable.Error(), last.Description)

	f.store.setDown(false)
	_, err = f.repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Empty(t, f.repo.LastError())
}

func TestMutationFailureKeepsCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	n, err := f.repo.Create(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)
	before := f.repo.Notes()

	f.store.setDown(true)
	_, err = f.repo.Create(ctx, NewNote{Title: "c", Content: "d"})
	require.Error(t, err)
	_, err = f.repo.Update(ctx, n.ID, Patch{Title: strPtr("x")})
	require.Error(t, err)
	_, err = f.repo.Delete(ctx, n.ID)
	require.Error(t, err)
	_, _, err = f.repo.GetOne(ctx, n.ID)
	require.Error(t, err)

	require.Equal(t, before, f.repo.Notes())
	require.NotEmpty(t, f.repo.LastError())
}

func TestLogoutThenFetchAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	_, err := f.repo.Create(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)
	require.NotEmpty(t, f.repo.Notes())

	require.NoError(t, f.session.Logout(ctx))
	require.Empty(t, f.repo.Notes())

	calls := f.store.callCount()
	notes, err := f.repo.FetchAll(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Empty(t, notes)
	require.Empty(t, f.repo.Notes())
	require.Equal(t, calls, f.store.callCount())

	_, err = f.repo.Create(ctx, NewNote{Title: "a", Content: "b"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Equal(t, calls, f.store.callCount())
}

func TestUpdatesOfTheSameNoteAreSerialized(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.login(t, "ada@example.com")

	n, err := f.repo.Create(ctx, NewNote{Title: "a", Content: "b"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.repo.Update(ctx, n.ID, Patch{Content: strPtr("c")})
		}()
	}
	wg.Wait()

	require.False(t, f.store.overlap)
	f.requireCoherent(t)
}
