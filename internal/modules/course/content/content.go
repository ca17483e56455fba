// Package content holds the typed course model and builds it from raw JSON
// documents validated by the schema package.
package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yungbote/eerste-dingen/internal/modules/course/content/schema"
)

type Issue = schema.Issue

// Issues is the full list of validation failures for one document.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, 0, len(is))
	for _, i := range is {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, "; ")
}

var ErrNoLessons = errors.New("no lesson documents")

// Document is one raw input file. Name is only used in error reports.
type Document struct {
	Name string
	Data []byte
}

type DocumentFailure struct {
	Document string
	Issues   Issues
}

// LoadError aggregates every document that failed validation. Any failure
// fails the whole load.
type LoadError struct {
	Failures []DocumentFailure
}

func (e *LoadError) Error() string {
	n := 0
	for _, f := range e.Failures {
		n += len(f.Issues)
	}
	return fmt.Sprintf("content: %d invalid document(s), %d issue(s):\n%s",
		len(e.Failures), n, strings.Join(e.Lines(), "\n"))
}

// Lines renders one "document: path: message" line per issue.
func (e *LoadError) Lines() []string {
	var out []string
	for _, f := range e.Failures {
		for _, is := range f.Issues {
			out = append(out, f.Document+": "+is.String())
		}
	}
	return out
}

type PronunciationTip struct {
	Letter      string   `json:"letter"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Spanish     string   `json:"spanish"`
}

type PronunciationGuide struct {
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Tips     []PronunciationTip `json:"tips"`
}

type Lesson struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Sections []Section `json:"sections"`
}

type LessonSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

func (l *Lesson) Summary() LessonSummary {
	return LessonSummary{ID: l.ID, Title: l.Title, Subtitle: l.Subtitle}
}

// Course is the immutable result of a successful load. Lessons are sorted by
// ascending id and there is always at least one.
type Course struct {
	Title         string             `json:"courseTitle"`
	Subtitle      string             `json:"courseSubtitle"`
	Pronunciation PronunciationGuide `json:"pronunciation"`

	lessons []*Lesson
	byID    map[int]*Lesson
}

func (c *Course) Lessons() []*Lesson {
	return append([]*Lesson(nil), c.lessons...)
}

func (c *Course) Lesson(id int) (*Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}

func (c *Course) First() *Lesson { return c.lessons[0] }

func (c *Course) Len() int { return len(c.lessons) }

// IDs returns lesson ids in navigation order.
func (c *Course) IDs() []int {
	ids := make([]int, len(c.lessons))
	for i, l := range c.lessons {
		ids[i] = l.ID
	}
	return ids
}

func (c *Course) Summaries() []LessonSummary {
	out := make([]LessonSummary, len(c.lessons))
	for i, l := range c.lessons {
		out[i] = l.Summary()
	}
	return out
}

// Index returns the zero-based position of id in navigation order.
func (c *Course) Index(id int) (int, bool) {
	i := sort.Search(len(c.lessons), func(i int) bool { return c.lessons[i].ID >= id })
	if i < len(c.lessons) && c.lessons[i].ID == id {
		return i, true
	}
	return 0, false
}
