package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	apphttp "github.com/yungbote/eerste-dingen/internal/http"
	"github.com/yungbote/eerste-dingen/internal/modules/course/content"
	"github.com/yungbote/eerste-dingen/internal/observability"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

const serviceName = "eerste-dingen"

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *gorm.DB
	Redis    *goredis.Client
	Course   *content.Course
	Repos    Repos
	Services Services
	Server   *apphttp.Server

	otelShutdown func(context.Context) error
}

func New(cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(context.Background(), log, cfg.otelConfig())

	log.Info("Loading course...", "dir", cfg.DataDir)
	course, err := content.LoadDir(cfg.DataDir)
	if err != nil {
		var le *content.LoadError
		if errors.As(err, &le) {
			for _, line := range le.Lines() {
				log.Error("Invalid course document", "issue", line)
			}
		}
		log.Sync()
		return nil, fmt.Errorf("load course: %w", err)
	}
	log.Info("Course loaded", "title", course.Title, "lessons", course.Len())

	a := &App{
		Log:          log,
		Cfg:          cfg,
		Course:       course,
		otelShutdown: otelShutdown,
	}

	a.Repos, err = a.wireRepos()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Services, err = wireServices(log, cfg, course, a.Repos)
	if err != nil {
		a.Close()
		return nil, err
	}

	handlerset := wireHandlers(log, a.Services)
	a.Server, err = wireServer(log, cfg, handlerset)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := ":" + a.Cfg.Port
	a.Log.Info("Server listening", "addr", addr, "preference_store", a.Cfg.PreferenceStore)
	return a.Server.Run(addr)
}

func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
		a.otelShutdown = nil
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
		a.Redis = nil
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		a.DB = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
