package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const usernameCacheTTL = 10 * time.Minute

// UsernameLookup resolves a single user id to a display name. ErrNotFound
// marks an id with no user behind it.
type UsernameLookup interface {
	UsernameByID(ctx context.Context, id uint) (string, error)
}

// UsernameResolver batches author-name lookups: given the author ids of a
// quiz's tips it returns one id-to-username mapping, deduplicating before it
// touches the store and fanning the remaining lookups out in parallel. A
// redis read-through cache keeps renames cheap without denormalizing names
// onto tips.
type UsernameResolver struct {
	lookup UsernameLookup
	redis  *redis.Client
	logger *zap.Logger
}

func NewUsernameResolver(lookup UsernameLookup, redisClient *redis.Client, logger *zap.Logger) *UsernameResolver {
	return &UsernameResolver{
		lookup: lookup,
		redis:  redisClient,
		logger: logger,
	}
}

// Resolve maps each distinct id to its username. Ids that resolve to no
// user (including zero, the "no author" sentinel) are simply absent from the
// result. Lookups for distinct ids run concurrently and all of them must
// finish before Resolve returns; a store failure on any id fails the whole
// resolution rather than surfacing a partial mapping.
func (r *UsernameResolver) Resolve(ctx context.Context, authorIDs []uint) (map[uint]string, error) {
	unique := make([]uint, 0, len(authorIDs))
	seen := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	usernames := make(map[uint]string, len(unique))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range unique {
		id := id
		g.Go(func() error {
			if name, ok := r.fromCache(ctx, id); ok {
				mu.Lock()
				usernames[id] = name
				mu.Unlock()
				return nil
			}

			name, err := r.lookup.UsernameByID(ctx, id)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			r.toCache(ctx, id, name)
			mu.Lock()
			usernames[id] = name
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return usernames, nil
}

// Cache misses and cache errors both fall through to the store; the cache
// can only speed resolution up, never fail it.
func (r *UsernameResolver) fromCache(ctx context.Context, id uint) (string, bool) {
	if r.redis == nil {
		return "", false
	}
	name, err := r.redis.Get(ctx, usernameCacheKey(id)).Result()
	if err != nil {
		if err != redis.Nil && r.logger != nil {
			r.logger.Warn("username cache read failed", zap.Uint("author_id", id), zap.Error(err))
		}
		return "", false
	}
	return name, true
}

func (r *UsernameResolver) toCache(ctx context.Context, id uint, name string) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Set(ctx, usernameCacheKey(id), name, usernameCacheTTL).Err(); err != nil && r.logger != nil {
		r.logger.Warn("username cache write failed", zap.Uint("author_id", id), zap.Error(err))
	}
}

// Forget drops a cached username, used when a user renames or is deleted.
func (r *UsernameResolver) Forget(ctx context.Context, id uint) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, usernameCacheKey(id)).Err(); err != nil && r.logger != nil {
		r.logger.Warn("username cache delete failed", zap.Uint("author_id", id), zap.Error(err))
	}
}

func usernameCacheKey(id uint) string {
	return "username:" + strconv.FormatUint(uint64(id), 10)
}
