package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/mindful-notes/sys"
	"strings"
	"time"
)

// Update applies the changes to the note id owned by userID and returns the stored result.
// An empty Row means there was no such note.
func Update(ctx context.Context, userID, id string, c Changes) (Row, error) {
	db := sys.R.Database

	current, err := findRow(ctx, userID, id)
	if err != nil || current.ID == "" {
		return current, err
	}

	// updated_at must move forward even when two updates land within the same second
	updatedAt := now()
	if !updatedAt.After(current.UpdatedAt) {
		updatedAt = current.UpdatedAt.Add(time.Second)
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 6)
	if c.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *c.Title)
	}
	if c.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *c.Content)
	}
	if c.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, nullable(c.Color))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, timestamp(updatedAt), id, userID)

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, rebind("UPDATE notes SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?"))
	if err != nil {
		return Row{}, fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, args...); err != nil {
		return Row{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	evict(ctx, userID, id)

	updated := current
	if c.Title != nil {
		updated.Title = *c.Title
	}
	if c.Content != nil {
		updated.Content = *c.Content
	}
	if c.Color != nil {
		updated.Color = nil
		if *c.Color != "" {
			color := *c.Color
			updated.Color = &color
		}
	}
	updated.UpdatedAt = updatedAt

	return updated, nil
}
