package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/sys"
	"gocloud.dev/pubsub"
)

// Consume reads note events until ctx is canceled, handling up to maxWorkers messages at a time
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			if err := handle(ctx, e); err != nil {
				logger.Errorf("failed to handle %s event %+v: err: %s", e.Type, e.Data, err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func handle(ctx context.Context, e note.Event) error {
	var d note.EventData
	marshal, _ := json.Marshal(e.Data)
	if err := json.Unmarshal(marshal, &d); err != nil {
		return err
	}
	if d.UserID == "" {
		return errors.New("event without userId")
	}

	switch e.Type {
	case "create":
		newN := note.NewNote{}
		if d.Title != nil {
			newN.Title = *d.Title
		}
		if d.Content != nil {
			newN.Content = *d.Content
		}
		if d.Color != nil {
			newN.Color = *d.Color
		}
		if err := newN.Validate(); err != nil {
			return err
		}
		_, err := note.Create(ctx, d.UserID, newN)
		return err
	case "update":
		p := note.Patch{Title: d.Title, Content: d.Content, Color: d.Color}
		if err := p.Validate(); err != nil {
			return err
		}
		_, err := note.Update(ctx, d.UserID, d.ID, p)
		return err
	case "delete":
		deleted, err := note.Delete(ctx, d.UserID, d.ID)
		if err == nil && !deleted {
			return note.ErrNotFound
		}
		return err
	default:
		return errors.New("unknown event type: " + e.Type)
	}
}
