package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"hairnote/internal/report/corpus"
)

// StringGetter is the slice of the redis client the source needs.
type StringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource reads notes from redis keys "<prefix><note id>". Missing keys
// leave the note absent; the chain treats the source as incomplete.
type RedisSource struct {
	client StringGetter
	prefix string
}

func NewRedisSource(client StringGetter, prefix string) *RedisSource {
	if prefix == "" {
		prefix = "notes:"
	}
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) Name() string { return "redis" }

func (s *RedisSource) Fetch(ctx context.Context) (map[corpus.NoteID]string, error) {
	var (
		mu    sync.Mutex
		notes = make(map[corpus.NoteID]string)
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range corpus.AllNotes {
		id := id
		g.Go(func() error {
			val, err := s.client.Get(ctx, s.prefix+string(id)).Result()
			if errors.Is(err, redis.Nil) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("get %s%s: %w", s.prefix, id, err)
			}
			mu.Lock()
			notes[id] = val
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return notes, nil
}
