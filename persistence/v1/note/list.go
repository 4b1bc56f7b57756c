package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/mindful-notes/sys"
)

// List returns every note owned by userID, most recently updated first
func List(ctx context.Context, userID string) ([]Row, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, rebind("SELECT "+columns+" FROM notes WHERE user_id = ? ORDER BY updated_at DESC"))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list rows: %w", err)
	}

	return result, nil
}
