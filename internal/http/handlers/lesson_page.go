package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/eerste-dingen/internal/http/web"
	"github.com/yungbote/eerste-dingen/internal/modules/course/navigation"
	"github.com/yungbote/eerste-dingen/internal/platform/dbctx"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
	"github.com/yungbote/eerste-dingen/internal/services"
)

// LessonPageHandler serves the HTML lesson pages. Every page request lands on
// a lesson: unknown or malformed ids redirect to the first lesson.
type LessonPageHandler struct {
	log    *logger.Logger
	course services.CourseService
	prefs  services.PreferenceService
}

func NewLessonPageHandler(baseLog *logger.Logger, course services.CourseService, prefs services.PreferenceService) *LessonPageHandler {
	return &LessonPageHandler{
		log:    baseLog.With("handler", "LessonPageHandler"),
		course: course,
		prefs:  prefs,
	}
}

func wantsPronunciation(c *gin.Context) bool {
	return c.Query("pronunciation") == "true"
}

// GET /
func (h *LessonPageHandler) Index(c *gin.Context) {
	target := h.course.Course().First().ID
	if h.prefs != nil {
		id, ok, err := h.prefs.LastLesson(dbctx.Context{Ctx: c.Request.Context()})
		if err != nil {
			h.log.Warn("Load last lesson failed", "error", err)
		} else if ok {
			target = id
		}
	}
	c.Redirect(http.StatusFound, navigation.LessonPath(target, wantsPronunciation(c)))
}

// GET /select?id=N
func (h *LessonPageHandler) Select(c *gin.Context) {
	id, ok := navigation.ParseID(c.Query("id"))
	_, pos := h.course.Resolve(id, ok)
	c.Redirect(http.StatusFound, navigation.LessonPath(pos.ID, wantsPronunciation(c)))
}

// GET /lesson/:lessonId
func (h *LessonPageHandler) Lesson(c *gin.Context) {
	id, ok := navigation.ParseID(c.Param("lessonId"))
	lesson, pos := h.course.Resolve(id, ok)
	pronunciation := wantsPronunciation(c)
	if pos.Corrected {
		c.Redirect(http.StatusFound, navigation.LessonPath(pos.ID, pronunciation))
		return
	}

	body, err := h.course.RenderLesson(lesson)
	if err != nil {
		c.String(http.StatusInternalServerError, "no se pudo mostrar la lección")
		return
	}

	page := web.Page{
		SiteTitle:     web.SiteTitle,
		Course:        h.course.Course(),
		Lessons:       h.course.Course().Summaries(),
		Lesson:        lesson,
		Position:      pos,
		LessonHTML:    body,
		Pronunciation: pronunciation,
	}
	if pronunciation {
		page.GuideHTML = h.course.Pronunciation()
	}

	if h.prefs != nil {
		if err := h.prefs.SetLastLesson(dbctx.Context{Ctx: c.Request.Context()}, lesson.ID); err != nil {
			h.log.Warn("Save last lesson failed", "lesson_id", lesson.ID, "error", err)
		}
	}

	c.HTML(http.StatusOK, web.PageTemplate, page)
}

// NotFound sends any unmatched page path to the first lesson.
func (h *LessonPageHandler) NotFound(c *gin.Context) {
	c.Redirect(http.StatusFound, navigation.LessonPath(h.course.Course().First().ID, false))
}
