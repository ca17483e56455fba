package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/eerste-dingen/internal/http/handlers"
	httpMW "github.com/yungbote/eerste-dingen/internal/http/middleware"
	"github.com/yungbote/eerste-dingen/internal/http/web"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	AllowedOrigins []string
	SecureCookies  bool
	// ImagesDir is served under /images when set.
	ImagesDir string

	LessonPageHandler *httpH.LessonPageHandler
	CourseAPIHandler  *httpH.CourseAPIHandler
	PreferenceHandler *httpH.PreferenceHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.AllowedOrigins))
	r.Use(httpMW.ClientIdentity(cfg.SecureCookies))
	r.Use(httpMW.RequestLogger(cfg.Log))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())
	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Course content
		if cfg.CourseAPIHandler != nil {
			api.GET("/course", cfg.CourseAPIHandler.GetCourse)
			api.GET("/lessons", cfg.CourseAPIHandler.ListLessons)
			api.GET("/lessons/:id", cfg.CourseAPIHandler.GetLesson)
		}

		// Navigation state
		if cfg.PreferenceHandler != nil {
			api.GET("/preferences", cfg.PreferenceHandler.GetPreferences)
			api.PUT("/preferences", cfg.PreferenceHandler.SetPreferences)
		}
	}

	// Pages
	if cfg.LessonPageHandler != nil {
		r.GET("/", cfg.LessonPageHandler.Index)
		r.GET("/select", cfg.LessonPageHandler.Select)
		r.GET("/lesson/:lessonId", cfg.LessonPageHandler.Lesson)
		r.NoRoute(cfg.LessonPageHandler.NotFound)
	}

	return r, nil
}
