package session

import (
	"context"
	"testing"

	"github.com/ribgsilva/mindful-notes/platform/notify"
	"github.com/ribgsilva/mindful-notes/sys"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newStore(t *testing.T) (*Store, *blob.Bucket, *notify.Recorder) {
	t.Helper()
	sys.R.Log = zap.NewNop().Sugar()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	rec := &notify.Recorder{}
	return New(bucket, "", DemoAuthenticator{}, rec), bucket, rec
}

func TestRestoreEmpty(t *testing.T) {
	s, _, rec := newStore(t)
	require.True(t, s.IsLoading())

	s.Restore(context.Background())

	require.False(t, s.IsLoading())
	require.False(t, s.IsAuthenticated())
	require.Empty(t, rec.All())
}

func TestLoginPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	s, bucket, rec := newStore(t)
	s.Restore(ctx)

	id, err := s.Login(ctx, "ada@example.com", "whatever")
	require.NoError(t, err)
	require.Equal(t, "ada", id.Name)
	require.Equal(t, "ada@example.com", id.Email)
	require.NotEmpty(t, id.ID)
	require.True(t, s.IsAuthenticated())
	require.False(t, s.IsLoading())

	last, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, notify.Notification{Title: "Logged in successfully", Description: "Welcome back, ada!", Variant: notify.Default}, last)

	exists, err := bucket.Exists(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, exists)

	restored := New(bucket, DefaultKey, DemoAuthenticator{}, rec)
	restored.Restore(ctx)
	current, ok := restored.Current()
	require.True(t, ok)
	require.Equal(t, id, current)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	s, _, rec := newStore(t)

	id, err := s.Register(ctx, "Ada Lovelace", "ada@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", id.Name)

	current, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, id, current)

	last, _ := rec.Last()
	require.Equal(t, "Account created", last.Title)
}

func TestIdentityIsStablePerEmail(t *testing.T) {
	ctx := context.Background()
	a1, err := DemoAuthenticator{}.Login(ctx, "ada@example.com", "")
	require.NoError(t, err)
	a2, err := DemoAuthenticator{}.Register(ctx, "Ada", "ADA@example.com", "")
	require.NoError(t, err)
	b, err := DemoAuthenticator{}.Login(ctx, "bob@example.com", "")
	require.NoError(t, err)

	require.Equal(t, a1.ID, a2.ID)
	require.NotEqual(t, a1.ID, b.ID)

	_, err = DemoAuthenticator{}.Login(ctx, " ", "")
	require.ErrorIs(t, err, ErrEmailRequired)
}

func TestRestoreDiscardsCorruptIdentity(t *testing.T) {
	ctx := context.Background()
	s, bucket, rec := newStore(t)
	require.NoError(t, bucket.WriteAll(ctx, DefaultKey, []byte("{not json"), nil))

	s.Restore(ctx)

	require.False(t, s.IsAuthenticated())
	require.False(t, s.IsLoading())
	require.Empty(t, rec.All())

	exists, err := bucket.Exists(ctx, DefaultKey)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	s, bucket, rec := newStore(t)

	var seen []*Identity
	s.Subscribe(func(id *Identity) { seen = append(seen, id) })

	_, err := s.Login(ctx, "ada@example.com", "x")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	require.False(t, s.IsAuthenticated())
	exists, err := bucket.Exists(ctx, DefaultKey)
	require.NoError(t, err)
	require.False(t, exists)

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	require.Nil(t, seen[1])

	last, _ := rec.Last()
	require.Equal(t, "Logged out", last.Title)

	// logging out twice is harmless
	require.NoError(t, s.Logout(ctx))
}

func TestLoginFailsWhenStorageFails(t *testing.T) {
	ctx := context.Background()
	s, bucket, rec := newStore(t)
	require.NoError(t, bucket.Close())

	_, err := s.Login(ctx, "ada@example.com", "x")
	require.Error(t, err)
	require.False(t, s.IsAuthenticated())
	require.False(t, s.IsLoading())

	last, _ := rec.Last()
	require.Equal(t, notify.Destructive, last.Variant)
	require.Equal(t, "Login failed", last.Title)
}
