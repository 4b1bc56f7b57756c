package note

import (
	"context"
	"github.com/ribgsilva/mindful-notes/persistence/v1/note"
)

// Update changes the supplied fields of the note, ErrNotFound when userID owns no such note
func Update(ctx context.Context, userID, id string, p Patch) (Note, error) {
	row, err := note.Update(ctx, userID, id, toChanges(p))
	if err != nil {
		return Note{}, err
	}
	if row.ID == "" {
		return Note{}, ErrNotFound
	}
	return fromRow(row), nil
}
