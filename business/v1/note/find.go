package note

import (
	"context"
	"github.com/ribgsilva/mindful-notes/persistence/v1/note"
)

func Find(ctx context.Context, userID, id string) (Note, error) {
	find, err := note.Find(ctx, userID, id)
	if err != nil {
		return Note{}, err
	}
	if find.ID == "" {
		return Note{}, nil
	}
	return fromRow(find), nil
}
