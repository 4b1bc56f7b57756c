package bootstrap

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/mindful-notes/platform/database"
	"github.com/ribgsilva/mindful-notes/platform/env"
	"github.com/ribgsilva/mindful-notes/sys"
	"go.uber.org/zap"
)

// DatabaseConfigs reads the database settings into sys.Configs
func DatabaseConfigs(log *zap.SugaredLogger) {
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
}

// CacheConfigs reads the redis settings into sys.Configs. An empty address disables the cache.
func CacheConfigs(log *zap.SugaredLogger, defaultURL string) {
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", defaultURL)
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
}

// NewRelicConfigs reads the agent settings into sys.Configs, the licence is required once the agent is enabled
func NewRelicConfigs(log *zap.SugaredLogger, appName string) {
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", appName)
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	if sys.Configs.NewRelic.Enabled {
		sys.Configs.NewRelic.Licence = env.Must(log, "NEW_RELIC_LICENCE")
	}
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}

// Database connects sys.R.Database, the returned func closes it
func Database(log *zap.SugaredLogger) (func(), error) {
	db, err := database.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return nil, err
	}
	sys.R.Database = db
	return func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}, nil
}

// Cache connects sys.R.Cache, the returned func closes it
func Cache(log *zap.SugaredLogger) (func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     sys.Configs.Cache.ConnectionURL,
		Username: sys.Configs.Cache.User,
		Password: sys.Configs.Cache.Pass,
	})
	rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	sys.R.Cache = rdb
	return func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}, nil
}

// NewRelic starts the agent, the returned func shuts it down
func NewRelic() (*newrelic.Application, func(), error) {
	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
		return nil, nil, err
	}
	return nrApp, func() {
		nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)
	}, nil
}
