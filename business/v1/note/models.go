package note

import (
	"errors"
	"time"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("note not found")
	ErrInvalidNote      = errors.New("title and content are required")
)

type Note struct {
	ID        string    `json:"id" example:"1f0c2a4e-8d1b-4a57-9a53-0d8b5e0f6a11"`
	UserID    string    `json:"userId" example:"user-6ba7b811-9dad-11d1-80b4-00c04fd430c8"`
	Title     string    `json:"title" example:"Groceries"`
	Content   string    `json:"content" example:"milk, eggs"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	Color     string    `json:"color,omitempty" example:"#9b87f5"`
}

type NewNote struct {
	Title   string `json:"title" example:"Groceries"`
	Content string `json:"content" example:"milk, eggs"`
	Color   string `json:"color,omitempty" example:"#0EA5E9"`
}

// Patch carries the fields an update changes, nil fields are kept as they are
type Patch struct {
	Title   *string `json:"title,omitempty" example:"Groceries for sunday"`
	Content *string `json:"content,omitempty" example:"milk, eggs, bread"`
	Color   *string `json:"color,omitempty" example:"#14b8a6"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// EventData is the payload of the create, update and delete events
type EventData struct {
	UserID  string  `json:"userId"`
	ID      string  `json:"id,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Color   *string `json:"color,omitempty"`
}
