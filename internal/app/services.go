package app

import (
	"fmt"

	"github.com/yungbote/eerste-dingen/internal/modules/course/audio"
	"github.com/yungbote/eerste-dingen/internal/modules/course/content"
	"github.com/yungbote/eerste-dingen/internal/modules/course/render"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
	"github.com/yungbote/eerste-dingen/internal/services"
)

type Services struct {
	Course     services.CourseService
	Preference services.PreferenceService
}

func wireServices(log *logger.Logger, cfg Config, course *content.Course, reposet Repos) (Services, error) {
	log.Info("Wiring services...")
	renderer, err := render.New(audio.NewControls(cfg.Speech.Lang, cfg.Speech.Rate))
	if err != nil {
		return Services{}, fmt.Errorf("init renderer: %w", err)
	}
	courseSvc, err := services.NewCourseService(log, course, renderer)
	if err != nil {
		return Services{}, fmt.Errorf("init course service: %w", err)
	}
	return Services{
		Course:     courseSvc,
		Preference: services.NewPreferenceService(log, reposet.ClientPreference, courseSvc),
	}, nil
}
