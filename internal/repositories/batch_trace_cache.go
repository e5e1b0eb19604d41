package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
)

var errStaleTrace = errors.New("trace version changed")

// BatchTraceCacheRepository caches public batch traces in Redis.
//
// Every code has a version counter next to its trace. Delete bumps the
// counter, and Set only writes when the counter still matches the version
// the caller read, so a trace loaded before an invalidation is never stored
// after it.
type BatchTraceCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewBatchTraceCacheRepository(client *redis.Client, expiration time.Duration) *BatchTraceCacheRepository {
	return &BatchTraceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func traceKey(code string) string {
	return "batch_trace:" + code
}

func traceVersionKey(code string) string {
	return "batch_trace_ver:" + code
}

// Get returns the cached trace for code together with the current version.
// On a miss it returns ErrCacheMiss and the version to pass to Set.
func (r *BatchTraceCacheRepository) Get(ctx context.Context, code string) (*models.BatchTrace, int64, error) {
	key := traceKey(code)

	var traceCmd, verCmd *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		traceCmd = pipe.Get(ctx, key)
		verCmd = pipe.Get(ctx, traceVersionKey(code))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Infow("cache get", "key", key, "hit", false, "error", err)
		return nil, 0, err
	}

	version, err := verCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, err
	}

	val, err := traceCmd.Bytes()
	logger.Log.Infow("cache get", "key", key, "hit", err == nil, "version", version)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, version, ErrCacheMiss
		}
		return nil, version, err
	}

	var trace models.BatchTrace
	if err := json.Unmarshal(val, &trace); err != nil {
		return nil, version, err
	}
	return &trace, version, nil
}

// Set stores trace under code for the configured expiration if the version
// of code is still version. A stale write is skipped without error.
func (r *BatchTraceCacheRepository) Set(ctx context.Context, code string, version int64, trace *models.BatchTrace) error {
	key := traceKey(code)
	verKey := traceVersionKey(code)

	data, err := json.Marshal(trace)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, verKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleTrace
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}, verKey)
	if errors.Is(err, errStaleTrace) || errors.Is(err, redis.TxFailedErr) {
		logger.Log.Infow("cache set skipped", "key", key, "version", version)
		return nil
	}

	logger.Log.Infow("cache set", "key", key, "bytes", len(data), "version", version, "error", err)
	return err
}

// Delete drops the cached trace for code and bumps its version.
func (r *BatchTraceCacheRepository) Delete(ctx context.Context, code string) error {
	key := traceKey(code)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, traceVersionKey(code))
		pipe.Del(ctx, key)
		return nil
	})
	logger.Log.Infow("cache delete", "key", key, "deleted", err == nil, "error", err)
	return err
}
