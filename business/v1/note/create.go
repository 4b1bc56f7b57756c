package note

import (
	"context"
	"github.com/ribgsilva/mindful-notes/persistence/v1/note"
)

// Create stores a new note for userID, a palette color is picked when none is given
func Create(ctx context.Context, userID string, newN NewNote) (Note, error) {
	if newN.Color == "" {
		newN.Color = RandomColor()
	}
	row, err := note.Insert(ctx, toNewRow(userID, newN))
	if err != nil {
		return Note{}, err
	}
	return fromRow(row), nil
}
