package note

import "strings"

// Search keeps the notes whose title or content contains query, ignoring case.
// An empty query keeps everything.
func Search(notes []Note, query string) []Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}
	found := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), query) || strings.Contains(strings.ToLower(n.Content), query) {
			found = append(found, n)
		}
	}
	return found
}
