package services

import (
	"errors"
	"fmt"

	"github.com/yungbote/eerste-dingen/internal/data/repos"
	types "github.com/yungbote/eerste-dingen/internal/domain"
	"github.com/yungbote/eerste-dingen/internal/platform/apierr"
	"github.com/yungbote/eerste-dingen/internal/platform/ctxutil"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

var errMissingClient = errors.New("missing client identity")

// PreferenceService reads and writes the last viewed lesson of the client
// identified in the request context.
type PreferenceService interface {
	// LastLesson reports the stored lesson id when it still exists in the
	// course.
	LastLesson(dbc dbctx.Context) (int, bool, error)
	SetLastLesson(dbc dbctx.Context, lessonID int) error
}

type preferenceService struct {
	log    *logger.Logger
	repo   repos.ClientPreferenceRepo
	course CourseService
}

func NewPreferenceService(baseLog *logger.Logger, repo repos.ClientPreferenceRepo, course CourseService) PreferenceService {
	return &preferenceService{
		log:    baseLog.With("service", "PreferenceService"),
		repo:   repo,
		course: course,
	}
}

func (s *preferenceService) LastLesson(dbc dbctx.Context) (int, bool, error) {
	clientID, ok := ctxutil.GetClientID(dbc.Ctx)
	if !ok {
		return 0, false, apierr.BadRequest("missing_client", errMissingClient)
	}
	row, err := s.repo.GetByClientID(dbc, clientID)
	if err != nil {
		return 0, false, fmt.Errorf("load preference: %w", err)
	}
	if row == nil || row.LastLessonID == 0 {
		return 0, false, nil
	}
	if _, found := s.course.Course().Lesson(row.LastLessonID); !found {
		s.log.Debug("Stored lesson no longer exists", "client_id", clientID, "lesson_id", row.LastLessonID)
		return 0, false, nil
	}
	return row.LastLessonID, true, nil
}

func (s *preferenceService) SetLastLesson(dbc dbctx.Context, lessonID int) error {
	clientID, ok := ctxutil.GetClientID(dbc.Ctx)
	if !ok {
		return apierr.BadRequest("missing_client", errMissingClient)
	}
	if _, found := s.course.Course().Lesson(lessonID); !found {
		return apierr.BadRequest("unknown_lesson", fmt.Errorf("lesson %d does not exist", lessonID))
	}
	if err := s.repo.Upsert(dbc, &types.ClientPreference{ClientID: clientID, LastLessonID: lessonID}); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}
