// Package notify delivers user facing notifications about the outcome of an operation.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"io"
	"sync"
)

type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

// Notification is a short message shown to the user, destructive ones report failures
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Log writes notifications into the logger
type Log struct {
	Log *zap.SugaredLogger
}

func (l Log) Notify(_ context.Context, n Notification) {
	if n.Variant == Destructive {
		l.Log.Warnw("notification", "title", n.Title, "description", n.Description)
		return
	}
	l.Log.Infow("notification", "title", n.Title, "description", n.Description)
}

// Writer prints notifications as plain lines, used by the cli
type Writer struct {
	W io.Writer
}

func (w Writer) Notify(_ context.Context, n Notification) {
	prefix := ""
	if n.Variant == Destructive {
		prefix = "! "
	}
	_, _ = fmt.Fprintf(w.W, "%s%s: %s\n", prefix, n.Title, n.Description)
}

// Topic publishes notifications as json messages, so other services can forward them to the user
type Topic struct {
	Topic *pubsub.Topic
	Log   *zap.SugaredLogger
}

func (t Topic) Notify(ctx context.Context, n Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		t.Log.Errorf("failed to marshal notification %+v: %s", n, err)
		return
	}
	if err := t.Topic.Send(ctx, &pubsub.Message{Body: body, Metadata: map[string]string{"variant": string(n.Variant)}}); err != nil {
		t.Log.Errorf("failed to publish notification %q: %s", n.Title, err)
	}
}

// Multi fans a notification out to every notifier
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, nt := range m {
		nt.Notify(ctx, n)
	}
}

// Recorder keeps every notification in memory
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// All returns a copy of the recorded notifications in order
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

// Last returns the latest notification, ok is false when nothing was recorded
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}
