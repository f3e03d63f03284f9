package runstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/bricklayer/pkg/errors"
)

const redisKeyPrefix = "bricklayer:run:"

// RedisStore persists runs in Redis for serve mode, where several instances
// share one history. Runs are stored as JSON values under
// bricklayer:run:{id} and indexed by a sorted set on creation time.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to Redis and verifies connectivity.
func NewRedisStore(ctx context.Context, opts *redis.Options) (*RedisStore, error) {
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis at %s", opts.Addr)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Save(ctx context.Context, run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal run")
	}
	key := redisKeyPrefix + run.ID.String()
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write run to redis")
	}
	member := redis.Z{Score: float64(run.CreatedAt.UnixMilli()), Member: run.ID.String()}
	if err := s.rdb.ZAdd(ctx, redisKeyPrefix+"index", member).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "index run in redis")
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return Run{}, notFound(id)
	}
	if err != nil {
		return Run{}, errors.Wrap(errors.ErrCodeInternal, err, "read run from redis")
	}
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, errors.Wrap(errors.ErrCodeInternal, err, "parse run %s", id)
	}
	return run, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Run, error) {
	ids, err := s.rdb.ZRevRange(ctx, redisKeyPrefix+"index", 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list runs from redis")
	}
	out := make([]Run, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		run, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, errors.ErrCodeNotFound) {
				continue // index entry outlived the value
			}
			return nil, err
		}
		out = append(out, run)
	}
	return out, nil
}

func (s *RedisStore) Close() error { return s.rdb.Close() }

var _ Store = (*RedisStore)(nil)
