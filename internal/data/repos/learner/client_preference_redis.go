package learner

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/eerste-dingen/internal/domain"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

const (
	redisKeyPrefix = "eerste-dingen:client:"

	fieldID           = "id"
	fieldLastLessonID = "last_lesson_id"
	fieldCreatedAt    = "created_at"
	fieldUpdatedAt    = "updated_at"
)

type redisClientPreferenceRepo struct {
	rdb *goredis.Client
	ttl time.Duration
	log *logger.Logger
}

// NewRedisClientPreferenceRepo stores each client as a hash. A positive ttl
// expires clients that stop visiting.
func NewRedisClientPreferenceRepo(rdb *goredis.Client, ttl time.Duration, baseLog *logger.Logger) ClientPreferenceRepo {
	return &redisClientPreferenceRepo{rdb: rdb, ttl: ttl, log: baseLog.With("repo", "RedisClientPreferenceRepo")}
}

func redisKey(clientID uuid.UUID) string { return redisKeyPrefix + clientID.String() }

func (r *redisClientPreferenceRepo) GetByClientID(dbc dbctx.Context, clientID uuid.UUID) (*types.ClientPreference, error) {
	if clientID == uuid.Nil {
		return nil, nil
	}
	vals, err := r.rdb.HGetAll(dbc.Ctx, redisKey(clientID)).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	row := &types.ClientPreference{ClientID: clientID}
	if row.ID, err = uuid.Parse(vals[fieldID]); err != nil {
		return nil, errors.New("redis client preference: malformed id")
	}
	if row.LastLessonID, err = strconv.Atoi(vals[fieldLastLessonID]); err != nil {
		return nil, errors.New("redis client preference: malformed last_lesson_id")
	}
	row.CreatedAt, _ = time.Parse(time.RFC3339Nano, vals[fieldCreatedAt])
	row.UpdatedAt, _ = time.Parse(time.RFC3339Nano, vals[fieldUpdatedAt])
	return row, nil
}

func (r *redisClientPreferenceRepo) Upsert(dbc dbctx.Context, row *types.ClientPreference) error {
	if row == nil || row.ClientID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	now := time.Now().UTC()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now

	key := redisKey(row.ClientID)
	_, err := r.rdb.TxPipelined(dbc.Ctx, func(p goredis.Pipeliner) error {
		// The first writer's id and created_at win.
		p.HSetNX(dbc.Ctx, key, fieldID, row.ID.String())
		p.HSetNX(dbc.Ctx, key, fieldCreatedAt, row.CreatedAt.Format(time.RFC3339Nano))
		p.HSet(dbc.Ctx, key,
			fieldLastLessonID, strconv.Itoa(row.LastLessonID),
			fieldUpdatedAt, row.UpdatedAt.Format(time.RFC3339Nano),
		)
		if r.ttl > 0 {
			p.Expire(dbc.Ctx, key, r.ttl)
		}
		return nil
	})
	return err
}
