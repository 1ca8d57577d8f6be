package stats

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/quickquiz/internal/config"
	"github.com/abhisek/quickquiz/internal/store"
)

// Open returns the Store selected by cfg and a func that releases it.
func Open(ctx context.Context, cfg config.Config) (Store, func() error, error) {
	switch cfg.Stats.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case config.BackendRedis:
		rc := cfg.Stats.Redis
		client := redis.NewClient(&redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", rc.Addr, err)
		}
		return NewRedisStore(client, rc.Prefix), client.Close, nil

	case config.BackendSQLite, "":
		path := cfg.DBPath
		if path == "" {
			p, err := store.DefaultDBPath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve database path: %w", err)
			}
			path = p
		} else if err := store.EnsureDir(path); err != nil {
			return nil, nil, fmt.Errorf("create database dir: %w", err)
		}
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return NewPrefsStore(st.PrefsRepo()), st.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown stats backend: %q", cfg.Stats.Backend)
	}
}
