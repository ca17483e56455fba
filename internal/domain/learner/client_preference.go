package learner

import (
	"time"

	"github.com/google/uuid"
)

// ClientPreference is the persisted navigation state of one browser client,
// identified by the opaque id in its identity cookie.
type ClientPreference struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"client_id"`

	// LastLessonID is zero until the client views a lesson.
	LastLessonID int `gorm:"column:last_lesson_id;not null;default:0" json:"last_lesson_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updated_at"`
}

func (ClientPreference) TableName() string { return "client_preferences" }
