package learner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/eerste-dingen/internal/domain"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

// ClientPreferenceRepo persists one ClientPreference per client id.
// GetByClientID returns (nil, nil) when the client has no row yet.
type ClientPreferenceRepo interface {
	GetByClientID(dbc dbctx.Context, clientID uuid.UUID) (*types.ClientPreference, error)
	Upsert(dbc dbctx.Context, row *types.ClientPreference) error
}

type clientPreferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClientPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) ClientPreferenceRepo {
	return &clientPreferenceRepo{db: db, log: baseLog.With("repo", "ClientPreferenceRepo")}
}

func (r *clientPreferenceRepo) GetByClientID(dbc dbctx.Context, clientID uuid.UUID) (*types.ClientPreference, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if clientID == uuid.Nil {
		return nil, nil
	}
	var row types.ClientPreference
	if err := t.WithContext(dbc.Ctx).Where("client_id = ?", clientID).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *clientPreferenceRepo) Upsert(dbc dbctx.Context, row *types.ClientPreference) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
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
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "client_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"last_lesson_id",
				"updated_at",
			}),
		}).
		Create(row).Error
}
