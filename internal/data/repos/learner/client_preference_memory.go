package learner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/eerste-dingen/internal/domain"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
)

type memoryClientPreferenceRepo struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]types.ClientPreference
}

// NewMemoryClientPreferenceRepo keeps preferences in process memory. State
// is lost on restart.
func NewMemoryClientPreferenceRepo() ClientPreferenceRepo {
	return &memoryClientPreferenceRepo{rows: map[uuid.UUID]types.ClientPreference{}}
}

func (r *memoryClientPreferenceRepo) GetByClientID(_ dbctx.Context, clientID uuid.UUID) (*types.ClientPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[clientID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memoryClientPreferenceRepo) Upsert(_ dbctx.Context, row *types.ClientPreference) error {
	if row == nil || row.ClientID == uuid.Nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if prev, ok := r.rows[row.ClientID]; ok {
		row.ID = prev.ID
		row.CreatedAt = prev.CreatedAt
	} else {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	r.rows[row.ClientID] = *row
	return nil
}
