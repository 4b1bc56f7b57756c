package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/mindful-notes/sys"
)

// Find returns the note id owned by userID, using the cache when it is configured.
// When no row matches an empty Row is returned.
func Find(ctx context.Context, userID, id string) (Row, error) {
	logger := sys.R.Log
	cache := sys.R.Cache

	key := fmt.Sprintf(noteKey, userID, id)

	if cache != nil {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer tcCancel()
		get, err := cache.Get(tcCtx, key).Result()
		if err != nil && err != redis.Nil {
			logger.Error("failure to get note ", id, " from cache: ", err.Error())
		}
		if get != "" {
			var row Row
			if err := json.Unmarshal([]byte(get), &row); err != nil {
				logger.Errorf("error parsing cached response for key %s: %s", key, err)
			} else {
				return row, nil
			}
		}
	}

	row, err := findRow(ctx, userID, id)
	if err != nil || row.ID == "" {
		return row, err
	}

	if cache != nil {
		if data, err := json.Marshal(row); err != nil {
			logger.Errorf("error parsing data to cache for key %s: %s", key, err)
		} else {
			tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
			defer tcCancel()

			if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
				logger.Error("failure to set note ", id, " into cache: ", err.Error())
			}
		}
	}

	return row, nil
}

// evict drops the cached copy of a note after it changed
func evict(ctx context.Context, userID, id string) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Del(tcCtx, fmt.Sprintf(noteKey, userID, id)).Err(); err != nil {
		sys.R.Log.Error("failure to evict note ", id, " from cache: ", err.Error())
	}
}
