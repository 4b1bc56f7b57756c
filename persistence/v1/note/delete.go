package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/mindful-notes/sys"
)

// Delete removes the note id owned by userID, reporting whether a row was removed
func Delete(ctx context.Context, userID, id string) (bool, error) {
	db := sys.R.Database

	current, err := findRow(ctx, userID, id)
	if err != nil || current.ID == "" {
		return false, err
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, rebind("DELETE FROM notes WHERE id = ? AND user_id = ?"))
	if err != nil {
		return false, fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, id, userID); err != nil {
		return false, fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	evict(ctx, userID, id)

	return true, nil
}
