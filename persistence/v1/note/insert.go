package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/mindful-notes/sys"
	"time"
)

// Insert stores a new note, the id and both timestamps are assigned here
func Insert(ctx context.Context, newN NewRow) (Row, error) {
	db := sys.R.Database

	n := now()
	row := Row{
		ID:        uuid.NewString(),
		UserID:    newN.UserID,
		Title:     newN.Title,
		Content:   newN.Content,
		Color:     newN.Color,
		CreatedAt: n,
		UpdatedAt: n,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, rebind("INSERT INTO notes ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?)"))
	if err != nil {
		return Row{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(dbCtx, row.ID, row.UserID, row.Title, row.Content, nullable(row.Color), timestamp(row.CreatedAt), timestamp(row.UpdatedAt))
	if err != nil {
		return Row{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return row, nil
}

// timestamps are kept at second precision, the smallest one every supported database stores
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
