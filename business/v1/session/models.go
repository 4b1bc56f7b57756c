package session

import "errors"

// Identity is the authenticated user of the running process
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var ErrEmailRequired = errors.New("email is required")
