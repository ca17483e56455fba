package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/eerste-dingen/internal/http/response"
	"github.com/yungbote/eerste-dingen/internal/modules/course/navigation"
	"github.com/yungbote/eerste-dingen/internal/platform/apierr"
	"github.com/yungbote/eerste-dingen/internal/services"
)

type CourseAPIHandler struct {
	course services.CourseService
}

func NewCourseAPIHandler(course services.CourseService) *CourseAPIHandler {
	return &CourseAPIHandler{course: course}
}

// GET /api/course
func (h *CourseAPIHandler) GetCourse(c *gin.Context) {
	course := h.course.Course()
	response.RespondOK(c, gin.H{
		"course":  course,
		"lessons": course.Summaries(),
	})
}

// GET /api/lessons
func (h *CourseAPIHandler) ListLessons(c *gin.Context) {
	response.RespondOK(c, gin.H{"lessons": h.course.Course().Summaries()})
}

// GET /api/lessons/:id
func (h *CourseAPIHandler) GetLesson(c *gin.Context) {
	id, ok := navigation.ParseID(c.Param("id"))
	if !ok {
		response.RespondAPIError(c, apierr.BadRequest("invalid_lesson_id", errors.New("invalid lesson id")))
		return
	}
	lesson, pos, err := h.course.Lesson(id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"lesson":     lesson,
		"navigation": pos,
	})
}
