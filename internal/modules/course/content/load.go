package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/eerste-dingen/internal/modules/course/content/schema"
)

const (
	CourseFile    = "course.json"
	LessonPattern = "lessons/lesson_*.json"
)

// Load validates the course document and every lesson document and builds
// the Course. Each document is validated independently; if any has issues
// the result is a *LoadError naming all of them and no Course is returned.
func Load(lessons []Document, course Document) (*Course, error) {
	if len(lessons) == 0 {
		return nil, ErrNoLessons
	}
	s, err := schema.Default()
	if err != nil {
		return nil, err
	}

	var failures []DocumentFailure
	fail := func(doc string, issues []Issue) {
		failures = append(failures, DocumentFailure{Document: doc, Issues: issues})
	}

	out := &Course{byID: make(map[int]*Lesson, len(lessons))}
	if raw, issues := s.Course(course.Name, course.Data); issues != nil {
		fail(course.Name, issues)
	} else if err := json.Unmarshal(raw, out); err != nil {
		fail(course.Name, []Issue{{Message: err.Error()}})
	}

	owner := map[int]string{}
	for _, doc := range lessons {
		l, issues := decodeLesson(s, doc)
		if issues != nil {
			fail(doc.Name, issues)
			continue
		}
		if prev, dup := owner[l.ID]; dup {
			fail(doc.Name, []Issue{{
				Path:    "id",
				Message: fmt.Sprintf("duplicate lesson id %d (also in %s)", l.ID, prev),
			}})
			continue
		}
		owner[l.ID] = doc.Name
		out.byID[l.ID] = l
		out.lessons = append(out.lessons, l)
	}
	if len(failures) > 0 {
		return nil, &LoadError{Failures: failures}
	}

	sort.Slice(out.lessons, func(i, j int) bool { return out.lessons[i].ID < out.lessons[j].ID })
	return out, nil
}

func decodeLesson(s *schema.Schema, doc Document) (*Lesson, []Issue) {
	ld, issues := s.Lesson(doc.Name, doc.Data)
	if issues != nil {
		return nil, issues
	}
	l := &Lesson{}
	if err := json.Unmarshal(ld.Header, l); err != nil {
		return nil, []Issue{{Message: err.Error()}}
	}
	l.Sections = make([]Section, 0, len(ld.Sections))
	for i, sd := range ld.Sections {
		sec, ok := newSection(SectionKind(sd.Kind))
		if !ok {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("sections.%d.type", i),
				Message: fmt.Sprintf("unknown section type %q", sd.Kind),
			})
			continue
		}
		if err := json.Unmarshal(sd.Data, sec); err != nil {
			issues = append(issues, Issue{Path: fmt.Sprintf("sections.%d", i), Message: err.Error()})
			continue
		}
		issues = append(issues, checkSection(i, sec)...)
		l.Sections = append(l.Sections, sec)
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return l, nil
}

// checkSection holds rules the schema cannot express.
func checkSection(i int, sec Section) []Issue {
	gt, ok := sec.(*GrammarTable)
	if !ok {
		return nil
	}
	var issues []Issue
	for r, row := range gt.Rows {
		if len(row) != len(gt.Columns) {
			issues = append(issues, Issue{
				Path:    fmt.Sprintf("sections.%d.rows.%d", i, r),
				Message: fmt.Sprintf("row has %d cells, want %d (one per column)", len(row), len(gt.Columns)),
			})
		}
	}
	return issues
}

// LoadFS reads course.json and lessons/lesson_*.json from fsys and loads
// them. Files are read concurrently; validation order follows file names.
func LoadFS(fsys fs.FS) (*Course, error) {
	courseData, err := fs.ReadFile(fsys, CourseFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", CourseFile, err)
	}
	names, err := fs.Glob(fsys, LessonPattern)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	sort.Strings(names)

	docs := make([]Document, len(names))
	var g errgroup.Group
	g.SetLimit(8)
	for i, name := range names {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			docs[i] = Document{Name: path.Base(name), Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Load(docs, Document{Name: CourseFile, Data: courseData})
}

// LoadDir is LoadFS over a directory on disk.
func LoadDir(dir string) (*Course, error) {
	return LoadFS(os.DirFS(dir))
}
