package note

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var errUnreachable = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

// memStore is an in memory Store with its own clock, so every write gets a later timestamp
type memStore struct {
	mu       sync.Mutex
	rows     map[string]Note
	clock    time.Time
	down     bool
	calls    int
	inflight map[string]int
	overlap  bool
}

func newMemStore() *memStore {
	return &memStore{
		rows:     make(map[string]Note),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		inflight: make(map[string]int),
	}
}

func (m *memStore) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.down {
		return errUnreachable
	}
	return nil
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) List(_ context.Context, userID string) ([]Note, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	notes := make([]Note, 0)
	for _, n := range m.rows {
		if n.UserID == userID {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].UpdatedAt.After(notes[j].UpdatedAt) })
	return notes, nil
}

func (m *memStore) Find(_ context.Context, userID, id string) (Note, error) {
	if err := m.begin(); err != nil {
		return Note{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.rows[id]
	if !ok || n.UserID != userID {
		return Note{}, nil
	}
	return n, nil
}

func (m *memStore) Create(_ context.Context, userID string, newN NewNote) (Note, error) {
	if err := m.begin(); err != nil {
		return Note{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	n := Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     newN.Title,
		Content:   newN.Content,
		Color:     newN.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.rows[n.ID] = n
	return n, nil
}

func (m *memStore) Update(_ context.Context, userID, id string, p Patch) (Note, error) {
	if err := m.begin(); err != nil {
		return Note{}, err
	}
	m.mu.Lock()
	m.inflight[id]++
	if m.inflight[id] > 1 {
		m.overlap = true
	}
	m.mu.Unlock()

	time.Sleep(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.inflight[id]-- }()
	n, ok := m.rows[id]
	if !ok || n.UserID != userID {
		return Note{}, ErrNotFound
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	n.UpdatedAt = m.tick()
	m.rows[id] = n
	return n, nil
}

func (m *memStore) Delete(_ context.Context, userID, id string) (bool, error) {
	if err := m.begin(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.rows[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memStore) setDown(down bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.down = down
}

func (m *memStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var _ Store = (*memStore)(nil)
