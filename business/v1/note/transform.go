package note

import "github.com/ribgsilva/mindful-notes/persistence/v1/note"

func fromRow(r note.Row) Note {
	n := Note{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Color != nil {
		n.Color = *r.Color
	}
	return n
}

func toNewRow(userID string, newN NewNote) note.NewRow {
	return note.NewRow{
		UserID:  userID,
		Title:   newN.Title,
		Content: newN.Content,
		Color:   optional(newN.Color),
	}
}

func toChanges(p Patch) note.Changes {
	return note.Changes{
		Title:   p.Title,
		Content: p.Content,
		Color:   p.Color,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
