package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/mindful-notes/platform/database"
	"github.com/ribgsilva/mindful-notes/sys"
	"time"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (Row, error) {
	var r Row
	var color sql.NullString
	if err := s.Scan(&r.ID, &r.UserID, &r.Title, &r.Content, &color, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return Row{}, err
	}
	if color.Valid {
		r.Color = &color.String
	}
	return r, nil
}

func rebind(query string) string {
	return database.Rebind(sys.Configs.Database.Driver, query)
}

func timestamp(t time.Time) any {
	return database.Time(sys.Configs.Database.Driver, t)
}

// findRow reads the row straight from the database, an empty Row means it was not found
func findRow(ctx context.Context, userID, id string) (Row, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, rebind("SELECT "+columns+" FROM notes WHERE id = ? AND user_id = ?"))
	if err != nil {
		return Row{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	r, err := scanRow(stmt.QueryRowContext(dbCtx, id, userID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Row{}, nil
	case err != nil:
		return Row{}, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return r, nil
	}
}
