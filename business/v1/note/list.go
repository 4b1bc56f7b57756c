package note

import (
	"context"
	"github.com/ribgsilva/mindful-notes/persistence/v1/note"
)

// List returns the notes of userID, most recently updated first
func List(ctx context.Context, userID string) ([]Note, error) {
	rows, err := note.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(rows))
	for _, r := range rows {
		notes = append(notes, fromRow(r))
	}
	return notes, nil
}
