package app

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/eerste-dingen/internal/data/db"
	"github.com/yungbote/eerste-dingen/internal/data/repos"
)

type Repos struct {
	ClientPreference repos.ClientPreferenceRepo
}

// wireRepos opens the configured preference store. sqlite and postgres go
// through gorm; redis keeps one hash per client.
func (a *App) wireRepos() (Repos, error) {
	a.Log.Info("Wiring repos...", "preference_store", a.Cfg.PreferenceStore)
	switch a.Cfg.PreferenceStore {
	case StoreMemory:
		return Repos{ClientPreference: repos.NewMemoryClientPreferenceRepo()}, nil

	case StoreRedis:
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     a.Cfg.Redis.Addr,
			Password: a.Cfg.Redis.Password,
			DB:       a.Cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return Repos{}, fmt.Errorf("connect redis: %w", err)
		}
		a.Redis = rdb
		return Repos{ClientPreference: repos.NewRedisClientPreferenceRepo(rdb, a.Cfg.Redis.TTL, a.Log)}, nil

	default:
		conn, err := db.Open(a.Cfg.dbConfig(), a.Log)
		if err != nil {
			return Repos{}, fmt.Errorf("open %s: %w", a.Cfg.PreferenceStore, err)
		}
		a.DB = conn
		if err := db.AutoMigrateAll(conn); err != nil {
			return Repos{}, fmt.Errorf("automigrate: %w", err)
		}
		return Repos{ClientPreference: repos.NewClientPreferenceRepo(conn, a.Log)}, nil
	}
}
