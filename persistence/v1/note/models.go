package note

import "time"

const (
	noteKey = "notes.%s.%s"
	columns = "id, user_id, title, content, color, created_at, updated_at"
)

// Row is a note as it is stored in the notes table, color is nullable
type Row struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewRow struct {
	UserID  string
	Title   string
	Content string
	Color   *string
}

// Changes holds the columns an update must set, nil fields are left untouched.
// A Color pointing to an empty string clears the column.
type Changes struct {
	Title   *string
	Content *string
	Color   *string
}
