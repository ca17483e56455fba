package repos

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/eerste-dingen/internal/data/repos/learner"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

type ClientPreferenceRepo = learner.ClientPreferenceRepo

func NewClientPreferenceRepo(db *gorm.DB, log *logger.Logger) ClientPreferenceRepo {
	return learner.NewClientPreferenceRepo(db, log)
}

func NewRedisClientPreferenceRepo(rdb *goredis.Client, ttl time.Duration, log *logger.Logger) ClientPreferenceRepo {
	return learner.NewRedisClientPreferenceRepo(rdb, ttl, log)
}

func NewMemoryClientPreferenceRepo() ClientPreferenceRepo {
	return learner.NewMemoryClientPreferenceRepo()
}
