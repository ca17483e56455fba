package app

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	apphttp "github.com/yungbote/eerste-dingen/internal/http"
	httpH "github.com/yungbote/eerste-dingen/internal/http/handlers"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	LessonPage *httpH.LessonPageHandler
	CourseAPI  *httpH.CourseAPIHandler
	Preference *httpH.PreferenceHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		LessonPage: httpH.NewLessonPageHandler(log, services.Course, services.Preference),
		CourseAPI:  httpH.NewCourseAPIHandler(services.Course),
		Preference: httpH.NewPreferenceHandler(services.Preference),
	}
}

func routerConfig(log *logger.Logger, cfg Config, handlers Handlers) apphttp.RouterConfig {
	rc := apphttp.RouterConfig{
		Log:               log,
		AllowedOrigins:    cfg.AllowedOrigins,
		SecureCookies:     cfg.SecureCookies,
		ImagesDir:         filepath.Join(cfg.DataDir, "images"),
		HealthHandler:     handlers.Health,
		LessonPageHandler: handlers.LessonPage,
		CourseAPIHandler:  handlers.CourseAPI,
		PreferenceHandler: handlers.Preference,
	}
	if cfg.Otel.Enabled {
		rc.ServiceName = serviceName
	}
	return rc
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) (*apphttp.Server, error) {
	log.Info("Wiring router...")
	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return apphttp.NewServer(routerConfig(log, cfg, handlers))
}
