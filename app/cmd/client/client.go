package client

import (
	"context"
	"fmt"
	"github.com/ribgsilva/mindful-notes/business/v1/note"
	"github.com/ribgsilva/mindful-notes/business/v1/session"
	"github.com/ribgsilva/mindful-notes/platform/bootstrap"
	"github.com/ribgsilva/mindful-notes/platform/env"
	"github.com/ribgsilva/mindful-notes/platform/notify"
	"github.com/ribgsilva/mindful-notes/sys"
	"go.uber.org/zap"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/pubsub"
	"io"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "gocloud.dev/pubsub/awssnssqs"
	_ "gocloud.dev/pubsub/mempubsub"
)

// App is what the cli commands work with: the session of the local user and its notes
type App struct {
	Session *session.Store
	Notes   *note.Repository

	closers []func()
}

// Close releases every resource opened by Open, in reverse order
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// LoadConfigs reads the cli configuration from env vars
func LoadConfigs(log *zap.SugaredLogger) {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}

	bootstrap.DatabaseConfigs(log)
	bootstrap.CacheConfigs(log, "")
	sys.Configs.Session.Dir = env.OrDefault(log, "SESSION_DIR", filepath.Join(dir, "mindful-notes"))
	sys.Configs.Session.Key = env.OrDefault(log, "SESSION_KEY", session.DefaultKey)
	sys.Configs.Notify.TopicURL = env.OrDefault(log, "NOTIFY_TOPIC_URL", "")
	sys.Configs.Notify.ShutdownTimeout = env.DurationDefault(log, "NOTIFY_SHUTDOWN_TIMEOUT", "5s")
}

// Open restores the session persisted in the session dir. The database and cache are only
// connected when withStore is set, the session commands do not need them.
func Open(ctx context.Context, log *zap.SugaredLogger, out io.Writer, withStore bool) (*App, error) {
	sys.R.Log = log
	app := &App{}

	notifier := notify.Multi{notify.Writer{W: out}}
	if url := sys.Configs.Notify.TopicURL; url != "" {
		topic, err := pubsub.OpenTopic(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("could not open notification topic: %w", err)
		}
		app.closers = append(app.closers, func() {
			stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Notify.ShutdownTimeout)
			defer stdCancel()
			if err := topic.Shutdown(stdCtx); err != nil {
				log.Errorf("could not stop notification topic gracefully: %s", err)
			}
		})
		notifier = append(notifier, notify.Topic{Topic: topic, Log: log})
	}

	bucket, err := openBucket(sys.Configs.Session.Dir)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.closers = append(app.closers, func() {
		_ = bucket.Close()
	})

	if withStore {
		if err := connect(app); err != nil {
			app.Close()
			return nil, err
		}
	}

	app.Session = session.New(bucket, sys.Configs.Session.Key, session.DemoAuthenticator{}, notifier)
	app.Session.Restore(ctx)
	app.Notes = note.NewRepository(app.Session, note.SQLStore{}, notifier)

	return app, nil
}

func openBucket(dir string) (*blob.Bucket, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create session dir: %w", err)
	}
	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open session dir: %w", err)
	}
	return bucket, nil
}

func connect(app *App) error {
	closeDB, err := bootstrap.Database(sys.R.Log)
	if err != nil {
		return err
	}
	app.closers = append(app.closers, closeDB)

	if sys.Configs.Cache.ConnectionURL == "" {
		return nil
	}
	closeCache, err := bootstrap.Cache(sys.R.Log)
	if err != nil {
		return err
	}
	app.closers = append(app.closers, closeCache)
	return nil
}
