package note

import (
	"fmt"
	"strings"
)

// Validate checks a note can be submitted, the editor requires both title and content
func (n NewNote) Validate() error {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Content) == "" {
		return ErrInvalidNote
	}
	return nil
}

// Validate rejects patches that would blank the title or the content
func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrInvalidNote)
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrInvalidNote)
	}
	return nil
}
