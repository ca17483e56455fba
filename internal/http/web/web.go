// Package web holds the page shell and browser assets served around the
// rendered lesson markup.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/yungbote/eerste-dingen/internal/modules/course/content"
	"github.com/yungbote/eerste-dingen/internal/modules/course/navigation"
)

const (
	PageTemplate = "page.tmpl"
	SiteTitle    = "Eerste Dingen Eerst"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the data behind the lesson page shell.
type Page struct {
	SiteTitle     string
	Course        *content.Course
	Lessons       []content.LessonSummary
	Lesson        *content.Lesson
	Position      navigation.Position
	LessonHTML    template.HTML
	Pronunciation bool
	GuideHTML     template.HTML
}

func (p Page) PrevPath() string { return navigation.LessonPath(p.Position.PrevID, p.Pronunciation) + "#top" }
func (p Page) NextPath() string { return navigation.LessonPath(p.Position.NextID, p.Pronunciation) + "#top" }

// TogglePath flips the pronunciation panel while staying on the lesson.
func (p Page) TogglePath() string { return navigation.LessonPath(p.Lesson.ID, !p.Pronunciation) }

func Templates() (*template.Template, error) {
	return template.New("web").ParseFS(templateFS, "templates/*.tmpl")
}

func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
