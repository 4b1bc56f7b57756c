package note

import "context"

// Store is the remote store the Repository works against, every call is scoped to the owner userID
type Store interface {
	List(ctx context.Context, userID string) ([]Note, error)
	Find(ctx context.Context, userID, id string) (Note, error)
	Create(ctx context.Context, userID string, newN NewNote) (Note, error)
	Update(ctx context.Context, userID, id string, p Patch) (Note, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// SQLStore is the Store backed by the configured database and cache in sys.R
type SQLStore struct{}

func (SQLStore) List(ctx context.Context, userID string) ([]Note, error) {
	return List(ctx, userID)
}

func (SQLStore) Find(ctx context.Context, userID, id string) (Note, error) {
	return Find(ctx, userID, id)
}

func (SQLStore) Create(ctx context.Context, userID string, newN NewNote) (Note, error) {
	return Create(ctx, userID, newN)
}

func (SQLStore) Update(ctx context.Context, userID, id string, p Patch) (Note, error) {
	return Update(ctx, userID, id, p)
}

func (SQLStore) Delete(ctx context.Context, userID, id string) (bool, error) {
	return Delete(ctx, userID, id)
}

var _ Store = SQLStore{}
