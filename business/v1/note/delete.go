package note

import (
	"context"
	"github.com/ribgsilva/mindful-notes/persistence/v1/note"
)

func Delete(ctx context.Context, userID, id string) (bool, error) {
	return note.Delete(ctx, userID, id)
}
