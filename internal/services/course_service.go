package services

import (
	"fmt"
	"html/template"

	"github.com/yungbote/eerste-dingen/internal/modules/course/content"
	"github.com/yungbote/eerste-dingen/internal/modules/course/navigation"
	"github.com/yungbote/eerste-dingen/internal/modules/course/render"
	"github.com/yungbote/eerste-dingen/internal/platform/apierr"
	"github.com/yungbote/eerste-dingen/internal/platform/logger"
)

// CourseService serves the course loaded at startup. The course is never
// modified, so the service is safe for concurrent use without locking.
type CourseService interface {
	Course() *content.Course
	// Lesson returns the lesson with id or a 404 apierr.
	Lesson(id int) (*content.Lesson, navigation.Position, error)
	// Resolve is the self-healing lookup used by pages: unknown ids fall
	// back to the first lesson with Position.Corrected set.
	Resolve(requested int, ok bool) (*content.Lesson, navigation.Position)
	RenderLesson(l *content.Lesson) (template.HTML, error)
	Pronunciation() template.HTML
}

type courseService struct {
	log           *logger.Logger
	course        *content.Course
	ids           []int
	renderer      *render.Renderer
	pronunciation template.HTML
}

func NewCourseService(baseLog *logger.Logger, course *content.Course, renderer *render.Renderer) (CourseService, error) {
	if course == nil || course.Len() == 0 {
		return nil, content.ErrNoLessons
	}
	guide, err := renderer.Pronunciation(course.Pronunciation)
	if err != nil {
		return nil, err
	}
	return &courseService{
		log:           baseLog.With("service", "CourseService"),
		course:        course,
		ids:           course.IDs(),
		renderer:      renderer,
		pronunciation: guide,
	}, nil
}

func (s *courseService) Course() *content.Course { return s.course }

func (s *courseService) Lesson(id int) (*content.Lesson, navigation.Position, error) {
	l, ok := s.course.Lesson(id)
	if !ok {
		return nil, navigation.Position{}, apierr.NotFound("lesson_not_found", fmt.Errorf("lesson %d not found", id))
	}
	return l, navigation.Resolve(s.ids, id, true), nil
}

func (s *courseService) Resolve(requested int, ok bool) (*content.Lesson, navigation.Position) {
	pos := navigation.Resolve(s.ids, requested, ok)
	l, _ := s.course.Lesson(pos.ID)
	return l, pos
}

func (s *courseService) RenderLesson(l *content.Lesson) (template.HTML, error) {
	out, err := s.renderer.Lesson(l)
	if err != nil {
		s.log.Error("Render lesson failed", "lesson_id", l.ID, "error", err)
		return "", err
	}
	return out, nil
}

func (s *courseService) Pronunciation() template.HTML { return s.pronunciation }
